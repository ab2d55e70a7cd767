package models

import (
	"gorm.io/gorm"
)

type Gender string

const (
	GenderMale        Gender = "M"
	GenderFemale      Gender = "F"
	GenderUnspecified Gender = ""
)

// Permission names granted to staff accounts.
const (
	PermSeeAllUsers           = "see_all_users"
	PermSeeAllWorkshops       = "see_all_workshops"
	PermChangeCampParticipant = "change_campparticipant"
	PermUseSecretNotes        = "use_secret_notes"
)

type User struct {
	gorm.Model
	FirstName         string
	LastName          string
	Email             string `gorm:"index"`
	Gender            Gender
	School            string
	MaturaExamYear    *int
	HowDoYouKnowAbout string
	ProfilePage       string
	SecretNotes       string
	IsAdmin           bool
	Permissions       []string `gorm:"serializer:json"`

	CampParticipations []CampParticipation `gorm:"foreignKey:UserID"`
	LecturerWorkshops  []Workshop          `gorm:"foreignKey:LecturerID"`
}

func (u User) HasPerm(name string) bool {
	if u.IsAdmin {
		return true
	}
	for _, p := range u.Permissions {
		if p == name {
			return true
		}
	}
	return false
}

func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
