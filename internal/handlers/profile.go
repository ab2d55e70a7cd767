package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gdg-garage/camp-profile-api/internal/apperr"
	"github.com/gdg-garage/camp-profile-api/internal/export"
	"github.com/gdg-garage/camp-profile-api/internal/metrics"
	"github.com/gdg-garage/camp-profile-api/internal/profile"
)

type ProfileHandler struct {
	Deps
	assembler *profile.Assembler
}

func NewProfileHandler(d Deps, assembler *profile.Assembler) *ProfileHandler {
	return &ProfileHandler{Deps: d, assembler: assembler}
}

type ProfileInput struct {
	UserID uint `path:"user_id" doc:"Participant whose profile is shown"`
	Year   int  `query:"year" doc:"Camp year treated as current, defaults to the newest camp"`
}

type ProfileOutput struct {
	Body *profile.View
}

func (h *ProfileHandler) HandleGet(ctx context.Context, input *ProfileInput) (*ProfileOutput, error) {
	start := time.Now()

	caps, _, err := h.capabilities(ctx, input.UserID)
	if err != nil {
		return nil, h.fail("get profile", err)
	}
	year, err := h.year(ctx, input.Year)
	if err != nil {
		return nil, h.fail("get profile", err)
	}

	view, err := h.assembler.Assemble(ctx, input.UserID, caps, year)
	if err != nil {
		return nil, h.fail("get profile", err)
	}

	metrics.ObserveProfile(caps.Kind(), time.Since(start))
	return &ProfileOutput{Body: view}, nil
}

type MyStatusInput struct {
	Year int `query:"year" doc:"Camp year treated as current, defaults to the newest camp"`
}

type MyStatusOutput struct {
	Body *profile.StatusView
}

func (h *ProfileHandler) HandleMyStatus(ctx context.Context, input *MyStatusInput) (*MyStatusOutput, error) {
	user, err := h.Auth.RequireUser(ctx)
	if err != nil {
		return nil, h.fail("my status", err)
	}
	year, err := h.year(ctx, input.Year)
	if err != nil {
		return nil, h.fail("my status", err)
	}

	view, err := h.assembler.Status(ctx, user.ID, year)
	if err != nil {
		return nil, h.fail("my status", err)
	}
	return &MyStatusOutput{Body: view}, nil
}

type ExportHistoryInput struct {
	UserID uint `path:"user_id"`
}

type ExportHistoryOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

func (h *ProfileHandler) HandleExportHistory(ctx context.Context, input *ExportHistoryInput) (*ExportHistoryOutput, error) {
	caps, _, err := h.signedIn(ctx, input.UserID)
	if err != nil {
		return nil, h.fail("export history", err)
	}
	if !caps.CanSeeHistory() {
		return nil, h.fail("export history", fmt.Errorf("history of user %d: %w", input.UserID, apperr.ErrPermissionDenied))
	}

	user, err := h.Store.User(ctx, input.UserID)
	if err != nil {
		return nil, h.fail("export history", err)
	}
	hist, err := h.Store.History(ctx, user.ID, profile.HistoryFilter(caps))
	if err != nil {
		return nil, h.fail("export history", err)
	}

	data, err := export.HistoryXLSX(*user, hist.Summaries())
	if err != nil {
		return nil, h.fail("export history", err)
	}

	return &ExportHistoryOutput{
		ContentType:        "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		ContentDisposition: fmt.Sprintf(`attachment; filename="history-%d.xlsx"`, user.ID),
		Body:               data,
	}, nil
}
