package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	api "dogwalk-backend/internal/api/http"
	"dogwalk-backend/internal/config"
	"dogwalk-backend/internal/logger"
	"dogwalk-backend/internal/repository/postgres"
	"dogwalk-backend/internal/security"
	"dogwalk-backend/internal/service"

	_ "github.com/lib/pq"
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
	logger.Info("Starting Dog Walk Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Initialize Email Service
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)

	// Initialize Services
	cooldown := time.Duration(cfg.Walk.CooldownDays) * 24 * time.Hour
	sessionSvc := service.NewSessionService(
		store.SessionRepository,
		store.AssignmentRepository,
		store.ReportRepository,
		store.DogRepository,
		cfg.Walk.SessionCapacity,
	)
	reportSvc := service.NewReportService(store.ReportRepository)
	roleSvc := service.NewRoleRequestService(store.RoleRequestRepository, store.UserRepository, emailSvc, cooldown)
	adoptionSvc := service.NewAdoptionService(store.AdoptionRequestRepository, store.DogRepository, store.UserRepository, emailSvc, cooldown)
	dogSvc := service.NewDogService(store.DogRepository)

	// Set up HTTP server
	router := api.NewRouter(tokenManager, sessionSvc, reportSvc, roleSvc, adoptionSvc, dogSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
