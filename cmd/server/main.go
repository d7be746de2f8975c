package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "car-rental-backend/internal/api/http"
	"car-rental-backend/internal/config"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/repository/postgres"
	"car-rental-backend/internal/security"
	"car-rental-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	migrate := flag.Bool("migrate", false, "Create database tables before serving")
	seed := flag.Bool("seed", false, "Seed sample fleet and admin account before serving")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Car Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	ctx := context.Background()
	if *migrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			logger.Error("Migration failed", "error", err)
			log.Fatalf("Migration failed: %v", err)
		}
		logger.Info("Database schema is up to date")
	}
	if *seed {
		if cfg.Seed.AdminPassword == "" {
			log.Fatalf("Seeding requires seed.admin_password (or SEED_ADMIN_PASSWORD)")
		}
		if err := postgres.Seed(ctx, db, cfg.Seed.AdminUsername, cfg.Seed.AdminPassword); err != nil {
			logger.Error("Seeding failed", "error", err)
			log.Fatalf("Seeding failed: %v", err)
		}
		logger.Info("Sample fleet and admin account seeded")
	}

	store := postgres.NewStore(db)
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	fleetSvc := service.NewFleetService(store.CarRepository)
	bookingSvc := service.NewBookingService(store.BookingRepository, store.CarRepository)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.CarRepository)

	r := httpapi.NewRouter(
		tokenManager,
		httpapi.NewAuthHandler(authSvc),
		httpapi.NewFleetHandler(fleetSvc),
		httpapi.NewBookingHandler(bookingSvc),
		httpapi.NewRentalHandler(rentalSvc),
	)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), r); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
