package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/gdg-garage/camp-profile-api/internal/auth"
	"github.com/gdg-garage/camp-profile-api/internal/config"
	"github.com/gdg-garage/camp-profile-api/internal/database"
	"github.com/gdg-garage/camp-profile-api/internal/handlers"
	"github.com/gdg-garage/camp-profile-api/internal/links"
	"github.com/gdg-garage/camp-profile-api/internal/logging"
	"github.com/gdg-garage/camp-profile-api/internal/observability"
	"github.com/gdg-garage/camp-profile-api/internal/participation"
	"github.com/gdg-garage/camp-profile-api/internal/profile"
	"github.com/gdg-garage/camp-profile-api/internal/richtext"
	"github.com/gdg-garage/camp-profile-api/internal/store"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Env)
	if err != nil {
		logger.Warn("sentry not initialized", zap.Error(err))
	}
	defer flush()

	// Connect to Database
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("path", cfg.DatabasePath), zap.Error(err))
	}

	// Initialize Handlers
	st := store.New(db)
	sanitizer := richtext.New()
	service := participation.NewService(db, logger.Named("participation"), sanitizer)
	assembler := profile.NewAssembler(st, links.NewSite(cfg.PublicBaseURL), sanitizer)

	authHandler := auth.NewAuthHandler(cfg, db)
	deps := handlers.Deps{
		Auth:        authHandler,
		Store:       st,
		Log:         logger.Named("http"),
		CurrentYear: cfg.CurrentYear,
	}

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, authHandler, handlers.Handlers{
		Profile:       handlers.NewProfileHandler(deps, assembler),
		Qualification: handlers.NewQualificationHandler(deps, service),
		Camp:          handlers.NewCampHandler(deps, service),
	}, cfg.EnableMetrics)

	// Start Server
	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
