package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	apihttp "rentflow-backend/internal/api/http"
	"rentflow-backend/internal/config"
	"rentflow-backend/internal/jobs"
	"rentflow-backend/internal/logger"
	"rentflow-backend/internal/repository/postgres"
	"rentflow-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rentflow Job Trigger Server...", "log_level", cfg.Log.Level)

	if cfg.Cron.Secret == "" {
		log.Fatal("Cron secret is required to run the trigger server")
	}

	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	var emailService service.EmailService
	if cfg.Email.Enabled {
		emailService = service.NewEmailService(
			cfg.Email.SendGridKey,
			cfg.Email.From,
			cfg.Email.FromName,
			cfg.Email.OperatorEmail,
		)
	}

	jobRunner := jobs.NewJobRunner(
		store.BookingRepository,
		store.RentPaymentRepository,
		store.TripRepository,
		emailService,
		cfg,
	)

	router := mux.NewRouter()
	jobsHandler := apihttp.NewJobsHandler(jobRunner, store.BookingRepository, cfg.Cron.Secret)
	jobsHandler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: time.Duration(cfg.Jobs.JobDeadlineMinutes+1) * time.Minute,
	}

	go func() {
		logger.Info("HTTP trigger server listening", "addr", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down HTTP trigger server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
