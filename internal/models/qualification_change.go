package models

import (
	"gorm.io/gorm"

	"github.com/gdg-garage/camp-profile-api/internal/qualification"
)

// QualificationChange is written alongside every status transition.
type QualificationChange struct {
	gorm.Model
	CampParticipationID uint                 `json:"camp_participation_id" gorm:"index"`
	UserID              uint                 `json:"user_id" gorm:"index"`
	Year                int                  `json:"year"`
	ActorID             uint                 `json:"actor_id"`
	Action              qualification.Action `json:"action"`
	OldStatus           qualification.Status `json:"old_status"`
	NewStatus           qualification.Status `json:"new_status"`
}
