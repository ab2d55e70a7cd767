// Package store holds the read-side queries behind profile pages.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gdg-garage/camp-profile-api/internal/apperr"
	"github.com/gdg-garage/camp-profile-api/internal/history"
	"github.com/gdg-garage/camp-profile-api/internal/models"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func notFound(what string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, apperr.ErrNotFound)
	}
	return fmt.Errorf("load %s: %w", what, err)
}

func (s *Store) User(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound("user", err)
	}
	return &user, nil
}

// CurrentYear returns configured when set, otherwise the newest camp year.
func (s *Store) CurrentYear(ctx context.Context, configured int) (int, error) {
	if configured > 0 {
		return configured, nil
	}
	var camp models.Camp
	if err := s.db.WithContext(ctx).Order("year desc").First(&camp).Error; err != nil {
		return 0, notFound("camp", err)
	}
	return camp.Year, nil
}

func (s *Store) Camp(ctx context.Context, year int) (*models.Camp, error) {
	var camp models.Camp
	if err := s.db.WithContext(ctx).First(&camp, "year = ?", year).Error; err != nil {
		return nil, notFound("camp", err)
	}
	return &camp, nil
}

// CampYears lists every camp year, newest first.
func (s *Store) CampYears(ctx context.Context) ([]int, error) {
	var years []int
	if err := s.db.WithContext(ctx).Model(&models.Camp{}).Order("year desc").Pluck("year", &years).Error; err != nil {
		return nil, fmt.Errorf("list camp years: %w", err)
	}
	return years, nil
}

// Participation returns the participation of userID in year.
func (s *Store) Participation(ctx context.Context, userID uint, year int) (*models.CampParticipation, error) {
	var cp models.CampParticipation
	err := s.db.WithContext(ctx).Where("user_id = ? AND year = ?", userID, year).First(&cp).Error
	if err != nil {
		return nil, notFound("participation", err)
	}
	return &cp, nil
}

// Participations loads every participation of userID together with its
// workshop results, in the order they were entered.
func (s *Store) Participations(ctx context.Context, userID uint) ([]models.CampParticipation, error) {
	var cps []models.CampParticipation
	err := s.db.WithContext(ctx).
		Preload("WorkshopParticipations", func(db *gorm.DB) *gorm.DB {
			return db.Order("workshop_participations.id")
		}).
		Preload("WorkshopParticipations.Workshop").
		Where("user_id = ?", userID).
		Order("year desc").
		Find(&cps).Error
	if err != nil {
		return nil, fmt.Errorf("load participations: %w", err)
	}
	return cps, nil
}

type topResult struct {
	WorkshopID uint
	Top        float64
}

// MaxEnteredResults returns the highest entered result per workshop.
func (s *Store) MaxEnteredResults(ctx context.Context, workshopIDs []uint) (map[uint]float64, error) {
	out := make(map[uint]float64, len(workshopIDs))
	if len(workshopIDs) == 0 {
		return out, nil
	}

	var rows []topResult
	err := s.db.WithContext(ctx).Model(&models.WorkshopParticipation{}).
		Select("workshop_id, MAX(qualification_result) AS top").
		Where("workshop_id IN ? AND qualification_result IS NOT NULL", workshopIDs).
		Group("workshop_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load max results: %w", err)
	}
	for _, r := range rows {
		out[r.WorkshopID] = r.Top
	}
	return out, nil
}

// LecturerWorkshops lists the workshops taught by userID, newest year first.
func (s *Store) LecturerWorkshops(ctx context.Context, userID uint) ([]models.Workshop, error) {
	var ws []models.Workshop
	err := s.db.WithContext(ctx).
		Where("lecturer_id = ?", userID).
		Order("year desc").Order("title").
		Find(&ws).Error
	if err != nil {
		return nil, fmt.Errorf("load lecturer workshops: %w", err)
	}
	return ws, nil
}

// History assembles the year summaries of userID over every camp year and
// every year the participant has records for. Workshops rejected by keep are
// left out of the results; a nil keep keeps everything.
func (s *Store) History(ctx context.Context, userID uint, keep func(models.Workshop) bool) (history.History, error) {
	cps, err := s.Participations(ctx, userID)
	if err != nil {
		return history.History{}, err
	}
	years, err := s.CampYears(ctx)
	if err != nil {
		return history.History{}, err
	}

	var workshopIDs []uint
	for _, cp := range cps {
		years = append(years, cp.Year)
		for _, wp := range cp.WorkshopParticipations {
			workshopIDs = append(workshopIDs, wp.WorkshopID)
		}
	}
	top, err := s.MaxEnteredResults(ctx, workshopIDs)
	if err != nil {
		return history.History{}, err
	}

	return history.Aggregate(years, history.NewRecords(cps, top, keep)), nil
}

// QualificationLog lists status changes of userID's participations, newest
// first.
func (s *Store) QualificationLog(ctx context.Context, userID uint) ([]models.QualificationChange, error) {
	var changes []models.QualificationChange
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&changes).Error
	if err != nil {
		return nil, fmt.Errorf("load qualification log: %w", err)
	}
	return changes, nil
}
