package models

import (
	"gorm.io/gorm"
)

// WorkshopStatus is the lifecycle of a workshop proposal. The empty value
// means the proposal has not been reviewed yet.
type WorkshopStatus string

const (
	WorkshopProposed  WorkshopStatus = ""
	WorkshopAccepted  WorkshopStatus = "accepted"
	WorkshopRejected  WorkshopStatus = "rejected"
	WorkshopCancelled WorkshopStatus = "cancelled"
)

type Workshop struct {
	gorm.Model
	Year                   int            `json:"year" gorm:"uniqueIndex:idx_year_name;not null"`
	Name                   string         `json:"name" gorm:"uniqueIndex:idx_year_name;not null"`
	Title                  string         `json:"title"`
	LecturerID             uint           `json:"lecturer_id" gorm:"index"`
	Lecturer               User           `json:"-" gorm:"foreignKey:LecturerID"`
	Status                 WorkshopStatus `json:"status"`
	PageContent            string         `json:"-"`
	PageContentIsPublic    bool           `json:"page_content_is_public"`
	IsQualifying           bool           `json:"is_qualifying"`
	MaxPoints              *float64       `json:"max_points"`
	QualificationThreshold *float64       `json:"qualification_threshold"`
}

// IsPubliclyVisible is true once the workshop made it into the program,
// including when it was later cancelled.
func (w Workshop) IsPubliclyVisible() bool {
	return w.Status == WorkshopAccepted || w.Status == WorkshopCancelled
}
