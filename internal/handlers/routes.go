package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gdg-garage/camp-profile-api/internal/auth"
	"github.com/gdg-garage/camp-profile-api/internal/metrics"
)

type Handlers struct {
	Profile       *ProfileHandler
	Qualification *QualificationHandler
	Camp          *CampHandler
}

func RegisterRoutes(r *chi.Mux, authHandler *auth.AuthHandler, h Handlers, enableMetrics bool) huma.API {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	// Identity is optional; operations decide what an anonymous caller gets.
	r.Use(authHandler.AuthMiddleware)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	if enableMetrics {
		r.Handle("/metrics", metrics.Handler())
	}

	// Initialize Huma API
	config := huma.DefaultConfig("Camp Profile API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: auth.CookieName,
		},
	}
	api := humachi.New(r, config)

	secured := func(o *huma.Operation) {
		o.Security = []map[string][]string{{"cookieAuth": {}}}
	}

	// Profiles
	huma.Get(api, "/profiles/{user_id}", h.Profile.HandleGet)
	huma.Get(api, "/profiles/{user_id}/history.xlsx", h.Profile.HandleExportHistory, secured)
	huma.Get(api, "/me/status", h.Profile.HandleMyStatus, secured)

	// Qualification
	huma.Post(api, "/profiles/{user_id}/qualification", h.Qualification.HandleTransition, secured)
	huma.Get(api, "/profiles/{user_id}/qualification/log", h.Qualification.HandleLog, secured)
	huma.Delete(api, "/profiles/{user_id}/participations/{year}", h.Qualification.HandleRemove, secured)
	huma.Put(api, "/profiles/{user_id}/notes", h.Qualification.HandleSecretNotes, secured)

	// Own data
	huma.Post(api, "/camps/{year}/register", h.Camp.HandleRegisterInterest, secured)
	huma.Put(api, "/me/cover-letter", h.Camp.HandleCoverLetter, secured)
	huma.Put(api, "/me/profile-page", h.Camp.HandleProfilePage, secured)

	return api
}
