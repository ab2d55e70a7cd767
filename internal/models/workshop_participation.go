package models

import (
	"gorm.io/gorm"
)

// WorkshopParticipation stores a participant's qualification result for one
// workshop of the year they registered for.
type WorkshopParticipation struct {
	gorm.Model
	CampParticipationID uint              `json:"camp_participation_id" gorm:"uniqueIndex:idx_participation_workshop;not null"`
	CampParticipation   CampParticipation `json:"-" gorm:"foreignKey:CampParticipationID"`
	WorkshopID          uint              `json:"workshop_id" gorm:"uniqueIndex:idx_participation_workshop;not null"`
	Workshop            Workshop          `json:"workshop" gorm:"foreignKey:WorkshopID"`
	QualificationResult *float64          `json:"qualification_result"`
	Comment             string            `json:"comment"`
}
