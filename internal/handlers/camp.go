package handlers

import (
	"context"

	"github.com/gdg-garage/camp-profile-api/internal/participation"
)

type CampHandler struct {
	Deps
	service *participation.Service
}

func NewCampHandler(d Deps, service *participation.Service) *CampHandler {
	return &CampHandler{Deps: d, service: service}
}

type RegisterInterestInput struct {
	Year int `path:"year"`
}

type RegisterInterestOutput struct {
	Body struct {
		Year    int    `json:"year"`
		Status  string `json:"status"`
		Created bool   `json:"created" doc:"False when the participation already existed"`
	}
}

func (h *CampHandler) HandleRegisterInterest(ctx context.Context, input *RegisterInterestInput) (*RegisterInterestOutput, error) {
	user, err := h.Auth.RequireUser(ctx)
	if err != nil {
		return nil, h.fail("register interest", err)
	}

	cp, created, err := h.service.RegisterInterest(ctx, user.ID, input.Year)
	if err != nil {
		return nil, h.fail("register interest", err)
	}

	out := &RegisterInterestOutput{}
	out.Body.Year = cp.Year
	out.Body.Status = cp.Status.String()
	out.Body.Created = created
	return out, nil
}

type CoverLetterInput struct {
	Body struct {
		CoverLetter string `json:"cover_letter" maxLength:"50000"`
		Year        int    `json:"year,omitempty" doc:"Camp year, defaults to the current camp"`
	}
}

type RichTextOutput struct {
	Body struct {
		Content string `json:"content" doc:"Stored content after sanitizing"`
	}
}

func (h *CampHandler) HandleCoverLetter(ctx context.Context, input *CoverLetterInput) (*RichTextOutput, error) {
	user, err := h.Auth.RequireUser(ctx)
	if err != nil {
		return nil, h.fail("cover letter", err)
	}
	year, err := h.year(ctx, input.Body.Year)
	if err != nil {
		return nil, h.fail("cover letter", err)
	}

	clean, err := h.service.UpdateCoverLetter(ctx, user.ID, year, input.Body.CoverLetter)
	if err != nil {
		return nil, h.fail("cover letter", err)
	}

	out := &RichTextOutput{}
	out.Body.Content = clean
	return out, nil
}

type ProfilePageInput struct {
	Body struct {
		ProfilePage string `json:"profile_page" maxLength:"50000"`
	}
}

func (h *CampHandler) HandleProfilePage(ctx context.Context, input *ProfilePageInput) (*RichTextOutput, error) {
	user, err := h.Auth.RequireUser(ctx)
	if err != nil {
		return nil, h.fail("profile page", err)
	}

	clean, err := h.service.UpdateProfilePage(ctx, user.ID, input.Body.ProfilePage)
	if err != nil {
		return nil, h.fail("profile page", err)
	}

	out := &RichTextOutput{}
	out.Body.Content = clean
	return out, nil
}
