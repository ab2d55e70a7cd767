package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/gdg-garage/camp-profile-api/internal/apperr"
	"github.com/gdg-garage/camp-profile-api/internal/i18n"
	"github.com/gdg-garage/camp-profile-api/internal/participation"
	"github.com/gdg-garage/camp-profile-api/internal/qualification"
)

type QualificationHandler struct {
	Deps
	service *participation.Service
}

func NewQualificationHandler(d Deps, service *participation.Service) *QualificationHandler {
	return &QualificationHandler{Deps: d, service: service}
}

type TransitionInput struct {
	UserID uint `path:"user_id"`
	Body   struct {
		Action         string `json:"action" enum:"accept,reject,cancel,undo_cancel,delete" doc:"Qualification action"`
		Year           int    `json:"year,omitempty" doc:"Camp year, defaults to the current camp"`
		ExpectedStatus string `json:"expected_status,omitempty" doc:"Status the action was chosen against (none, accepted, rejected, cancelled). Send it so that a concurrent change is reported as 409; without it the action is checked against the stored status and may fail with 422 instead."`
	}
}

type TransitionOutput struct {
	Body struct {
		Year        int      `json:"year"`
		Previous    string   `json:"previous"`
		Status      string   `json:"status"`
		StatusLabel string   `json:"status_label"`
		Available   []string `json:"available"`
	}
}

// HandleTransition applies one qualification action. Clients should send the
// status they displayed as expected_status: a change made by someone else in
// the meantime then answers 409 and the client can reload and retry.
func (h *QualificationHandler) HandleTransition(ctx context.Context, input *TransitionInput) (*TransitionOutput, error) {
	// 1. Parse
	action, err := qualification.ParseAction(input.Body.Action)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}
	var expected *qualification.Status
	if input.Body.ExpectedStatus != "" {
		s, err := qualification.ParseStatus(input.Body.ExpectedStatus)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		expected = &s
	}

	// 2. Identify
	caps, actor, err := h.signedIn(ctx, input.UserID)
	if err != nil {
		return nil, h.fail("transition", err)
	}
	year, err := h.year(ctx, input.Body.Year)
	if err != nil {
		return nil, h.fail("transition", err)
	}

	// 3. Apply
	res, err := h.service.Transition(ctx, caps, actor.ID, participation.TransitionRequest{
		ParticipantID: input.UserID,
		Year:          year,
		Action:        action,
		Expected:      expected,
	})
	if err != nil {
		return nil, h.fail("transition", err)
	}

	participant, err := h.Store.User(ctx, input.UserID)
	if err != nil {
		return nil, h.fail("transition", err)
	}

	out := &TransitionOutput{}
	out.Body.Year = res.Participation.Year
	out.Body.Previous = res.Previous.String()
	out.Body.Status = res.Participation.Status.String()
	out.Body.StatusLabel = i18n.Status(res.Participation.Status, participant.Gender)
	out.Body.Available = []string{}
	for _, a := range res.Available {
		out.Body.Available = append(out.Body.Available, string(a))
	}
	return out, nil
}

type QualificationLogInput struct {
	UserID uint `path:"user_id"`
}

type QualificationLogEntry struct {
	ID        uint      `json:"id"`
	Year      int       `json:"year"`
	Action    string    `json:"action"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ActorID   uint      `json:"actor_id"`
	CreatedAt time.Time `json:"created_at"`
}

type QualificationLogOutput struct {
	Body []QualificationLogEntry
}

func (h *QualificationHandler) HandleLog(ctx context.Context, input *QualificationLogInput) (*QualificationLogOutput, error) {
	caps, _, err := h.signedIn(ctx, input.UserID)
	if err != nil {
		return nil, h.fail("qualification log", err)
	}
	if !caps.CanManageQualification {
		return nil, h.fail("qualification log", fmt.Errorf("qualification log: %w", apperr.ErrPermissionDenied))
	}

	changes, err := h.Store.QualificationLog(ctx, input.UserID)
	if err != nil {
		return nil, h.fail("qualification log", err)
	}

	out := &QualificationLogOutput{Body: []QualificationLogEntry{}}
	for _, c := range changes {
		out.Body = append(out.Body, QualificationLogEntry{
			ID:        c.ID,
			Year:      c.Year,
			Action:    string(c.Action),
			OldStatus: c.OldStatus.String(),
			NewStatus: c.NewStatus.String(),
			ActorID:   c.ActorID,
			CreatedAt: c.CreatedAt,
		})
	}
	return out, nil
}

type RemoveParticipationInput struct {
	UserID uint `path:"user_id"`
	Year   int  `path:"year"`
}

type RemoveParticipationOutput struct{}

func (h *QualificationHandler) HandleRemove(ctx context.Context, input *RemoveParticipationInput) (*RemoveParticipationOutput, error) {
	caps, _, err := h.signedIn(ctx, input.UserID)
	if err != nil {
		return nil, h.fail("remove participation", err)
	}
	if err := h.service.Remove(ctx, caps, input.UserID, input.Year); err != nil {
		return nil, h.fail("remove participation", err)
	}
	return &RemoveParticipationOutput{}, nil
}

type SecretNotesInput struct {
	UserID uint `path:"user_id"`
	Body   struct {
		Notes string `json:"notes" maxLength:"10000"`
	}
}

type SecretNotesOutput struct{}

func (h *QualificationHandler) HandleSecretNotes(ctx context.Context, input *SecretNotesInput) (*SecretNotesOutput, error) {
	caps, _, err := h.signedIn(ctx, input.UserID)
	if err != nil {
		return nil, h.fail("secret notes", err)
	}
	if err := h.service.UpdateSecretNotes(ctx, caps, input.UserID, input.Body.Notes); err != nil {
		return nil, h.fail("secret notes", err)
	}
	return &SecretNotesOutput{}, nil
}
