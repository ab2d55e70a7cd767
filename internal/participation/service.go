// Package participation owns every write to camp participations: status
// transitions, registration of interest, removal and owner-edited content.
package participation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gdg-garage/camp-profile-api/internal/apperr"
	"github.com/gdg-garage/camp-profile-api/internal/metrics"
	"github.com/gdg-garage/camp-profile-api/internal/models"
	"github.com/gdg-garage/camp-profile-api/internal/qualification"
	"github.com/gdg-garage/camp-profile-api/internal/richtext"
	"github.com/gdg-garage/camp-profile-api/internal/viewer"
)

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	sanitizer richtext.Sanitizer
}

func NewService(db *gorm.DB, log *zap.Logger, sanitizer richtext.Sanitizer) *Service {
	return &Service{db: db, log: log, sanitizer: sanitizer}
}

type TransitionRequest struct {
	ParticipantID uint
	Year          int
	Action        qualification.Action
	// Expected is the status the caller acted upon. When nil the stored
	// status is used.
	Expected *qualification.Status
}

type TransitionResult struct {
	Participation models.CampParticipation
	Previous      qualification.Status
	Available     []qualification.Action
}

// Transition applies one qualification action as a compare-and-swap on the
// participation's status. A write that finds a status other than the
// expected one fails with apperr.ErrConcurrentModification.
func (s *Service) Transition(ctx context.Context, caps viewer.Capabilities, actorID uint, req TransitionRequest) (*TransitionResult, error) {
	res, err := s.transition(ctx, caps, actorID, req)
	outcome := "ok"
	if err != nil {
		outcome = outcomeOf(err)
		s.log.Warn("qualification transition failed",
			zap.Uint("participant_id", req.ParticipantID),
			zap.Int("year", req.Year),
			zap.String("action", string(req.Action)),
			zap.Uint("actor_id", actorID),
			zap.Error(err),
		)
	} else {
		s.log.Info("qualification transition",
			zap.Uint("participant_id", req.ParticipantID),
			zap.Int("year", req.Year),
			zap.String("action", string(req.Action)),
			zap.Stringer("from", res.Previous),
			zap.Stringer("to", res.Participation.Status),
			zap.Uint("actor_id", actorID),
		)
	}
	metrics.ObserveTransition(string(req.Action), outcome)
	return res, err
}

func (s *Service) transition(ctx context.Context, caps viewer.Capabilities, actorID uint, req TransitionRequest) (*TransitionResult, error) {
	// 1. Authorize
	if !caps.CanManageQualification {
		return nil, fmt.Errorf("manage qualification: %w", apperr.ErrPermissionDenied)
	}

	// 2. Load participation
	var cp models.CampParticipation
	err := s.db.WithContext(ctx).Where("user_id = ? AND year = ?", req.ParticipantID, req.Year).First(&cp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("participation of user %d in %d: %w", req.ParticipantID, req.Year, apperr.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("load participation: %w", err)
	}

	// 3. Validate against the status the caller saw
	from := cp.Status
	if req.Expected != nil {
		from = *req.Expected
	}
	next, err := qualification.Apply(from, req.Action)
	if err != nil {
		return nil, err
	}

	// 4. Compare-and-swap with an audit row
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&models.CampParticipation{}).Where("id = ?", cp.ID)
		if code, ok := from.Code(); ok {
			q = q.Where("status = ?", code)
		} else {
			q = q.Where("status IS NULL")
		}
		res := q.Update("status", next)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("participation %d is no longer %s: %w", cp.ID, from, apperr.ErrConcurrentModification)
		}

		change := models.QualificationChange{
			CampParticipationID: cp.ID,
			UserID:              cp.UserID,
			Year:                cp.Year,
			ActorID:             actorID,
			Action:              req.Action,
			OldStatus:           from,
			NewStatus:           next,
		}
		return tx.Create(&change).Error
	})
	if err != nil {
		return nil, err
	}

	cp.Status = next
	return &TransitionResult{
		Participation: cp,
		Previous:      from,
		Available:     qualification.Available(next),
	}, nil
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, apperr.ErrPermissionDenied):
		return "denied"
	case errors.Is(err, apperr.ErrInvalidTransition):
		return "invalid"
	case errors.Is(err, apperr.ErrConcurrentModification):
		return "conflict"
	case errors.Is(err, apperr.ErrNotFound):
		return "not_found"
	}
	return "error"
}

// RegisterInterest creates the participation of userID for year with no
// decision. created is false when it already existed.
func (s *Service) RegisterInterest(ctx context.Context, userID uint, year int) (cp *models.CampParticipation, created bool, err error) {
	cp = &models.CampParticipation{}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Camp{}, "year = ?", year).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("camp %d: %w", year, apperr.ErrNotFound)
			}
			return err
		}

		if err := tx.Where(models.CampParticipation{UserID: userID, Year: year}).FirstOrInit(cp).Error; err != nil {
			return err
		}
		if cp.ID != 0 {
			return nil
		}
		created = true
		return tx.Create(cp).Error
	})
	if err != nil {
		return nil, false, err
	}
	if created {
		s.log.Info("registered interest", zap.Uint("user_id", userID), zap.Int("year", year))
	}
	return cp, created, nil
}

// Remove hard-deletes a participation. It refuses while workshop results
// still reference it.
func (s *Service) Remove(ctx context.Context, caps viewer.Capabilities, participantID uint, year int) error {
	if !caps.CanManageQualification {
		return fmt.Errorf("remove participation: %w", apperr.ErrPermissionDenied)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cp models.CampParticipation
		if err := tx.Where("user_id = ? AND year = ?", participantID, year).First(&cp).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("participation of user %d in %d: %w", participantID, year, apperr.ErrNotFound)
			}
			return err
		}

		var results int64
		if err := tx.Model(&models.WorkshopParticipation{}).Where("camp_participation_id = ?", cp.ID).Count(&results).Error; err != nil {
			return err
		}
		if results > 0 {
			return fmt.Errorf("participation %d has %d workshop results: %w", cp.ID, results, apperr.ErrConflict)
		}

		if err := tx.Unscoped().Delete(&cp).Error; err != nil {
			return err
		}
		s.log.Info("removed participation", zap.Uint("participant_id", participantID), zap.Int("year", year))
		return nil
	})
}

// UpdateCoverLetter stores the sanitized cover letter of userID for year.
func (s *Service) UpdateCoverLetter(ctx context.Context, userID uint, year int, raw string) (string, error) {
	clean := s.sanitizer.Sanitize(raw)
	res := s.db.WithContext(ctx).Model(&models.CampParticipation{}).
		Where("user_id = ? AND year = ?", userID, year).
		Update("cover_letter", clean)
	if res.Error != nil {
		return "", fmt.Errorf("update cover letter: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return "", fmt.Errorf("participation of user %d in %d: %w", userID, year, apperr.ErrNotFound)
	}
	return clean, nil
}

// UpdateProfilePage stores the sanitized public profile page of userID.
func (s *Service) UpdateProfilePage(ctx context.Context, userID uint, raw string) (string, error) {
	clean := s.sanitizer.Sanitize(raw)
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("profile_page", clean)
	if res.Error != nil {
		return "", fmt.Errorf("update profile page: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return "", fmt.Errorf("user %d: %w", userID, apperr.ErrNotFound)
	}
	return clean, nil
}

// UpdateSecretNotes replaces the administrative notes about participantID.
func (s *Service) UpdateSecretNotes(ctx context.Context, caps viewer.Capabilities, participantID uint, notes string) error {
	if !caps.CanSeeSecretNotes() {
		return fmt.Errorf("secret notes: %w", apperr.ErrPermissionDenied)
	}
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", participantID).
		Update("secret_notes", strings.TrimSpace(notes))
	if res.Error != nil {
		return fmt.Errorf("update secret notes: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %d: %w", participantID, apperr.ErrNotFound)
	}
	return nil
}
