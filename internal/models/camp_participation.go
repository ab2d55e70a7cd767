package models

import (
	"gorm.io/gorm"

	"github.com/gdg-garage/camp-profile-api/internal/qualification"
)

// CampParticipation is a participant's record of interest and qualification
// for one camp year.
type CampParticipation struct {
	gorm.Model
	UserID      uint                 `json:"user_id" gorm:"uniqueIndex:idx_user_year;not null"`
	User        User                 `json:"-" gorm:"foreignKey:UserID"`
	Year        int                  `json:"year" gorm:"uniqueIndex:idx_user_year;not null"`
	Status      qualification.Status `json:"status"`
	CoverLetter string               `json:"-"`

	WorkshopParticipations []WorkshopParticipation `json:"-" gorm:"foreignKey:CampParticipationID"`
}
