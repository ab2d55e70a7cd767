package database

import (
	"fmt"

	"github.com/gdg-garage/camp-profile-api/internal/config"
	"github.com/gdg-garage/camp-profile-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every table managed by AutoMigrate.
var Models = []any{
	&models.User{},
	&models.Camp{},
	&models.CampParticipation{},
	&models.Workshop{},
	&models.WorkshopParticipation{},
	&models.QualificationChange{},
}

func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := Open(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	if cfg.Env != "prod" {
		db.Logger = db.Logger.LogMode(logger.Warn)
	}
	return db, nil
}

// Open connects to a sqlite database and migrates the schema.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// Auto Migrate
	if err := db.AutoMigrate(Models...); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return db, nil
}
