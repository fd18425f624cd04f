package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "github.com/lovemage/rentloop-plateforme-sub000/internal/api/http"
	"github.com/lovemage/rentloop-plateforme-sub000/internal/config"
	"github.com/lovemage/rentloop-plateforme-sub000/internal/logger"
	"github.com/lovemage/rentloop-plateforme-sub000/internal/repository/postgres"
	"github.com/lovemage/rentloop-plateforme-sub000/internal/security"
	"github.com/lovemage/rentloop-plateforme-sub000/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rentloop booking engine...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromName, cfg.Email.From)
	bookingSvc := service.NewBookingService(store, emailSvc, cfg.Booking.SweepAfterDays)
	availabilitySvc := service.NewAvailabilityService(store)
	reviewSvc := service.NewReviewService(store)
	noteSvc := service.NewNotificationService(store)

	// Initialize Handlers
	bookingHandler := httpapi.NewBookingHandler(bookingSvc, availabilitySvc)
	reviewHandler := httpapi.NewReviewHandler(reviewSvc)
	noteHandler := httpapi.NewNotificationHandler(noteSvc)

	router := httpapi.NewRouter(tokenManager, bookingHandler, reviewHandler, noteHandler)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
