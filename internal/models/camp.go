package models

import "time"

// Camp is one yearly edition.
type Camp struct {
	Year      int `gorm:"primaryKey;autoIncrement:false"`
	Name      string
	CreatedAt time.Time
}
