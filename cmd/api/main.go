package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/benefix/card-service/internal/config"
	"github.com/benefix/card-service/internal/handler"
	"github.com/benefix/card-service/internal/jobs"
	"github.com/benefix/card-service/internal/middleware"
	"github.com/benefix/card-service/internal/repository"
	"github.com/benefix/card-service/internal/service"
	"github.com/benefix/card-service/internal/utils"
	"github.com/benefix/card-service/internal/utils/email"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment variables")
	}
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	cards := repository.NewCards(db)
	recharges := repository.NewRecharges(db)
	purchases := repository.NewPurchases(db)
	employees := repository.NewEmployees(db)
	companies := repository.NewCompanies(db)

	hasher := utils.BcryptHasher{}
	cardSvc := service.NewCardService(cards, recharges, purchases, employees, hasher, utils.CardGenerator{}, logger)
	rechargeSvc := service.NewRechargeService(cardSvc, recharges, logger)
	purchaseSvc := service.NewPurchaseService(cardSvc, purchases, hasher, logger)
	authSvc := service.NewAuthService(companies)
	h := handler.NewHandler(cardSvc, rechargeSvc, purchaseSvc, logger)

	// Setup router
	r := mux.NewRouter()
	// Employee-facing routes
	r.HandleFunc("/cards/{id}/activate", h.ActivateCard).Methods("POST")
	r.HandleFunc("/cards/{id}/balance", h.GetBalance).Methods("GET")
	r.HandleFunc("/cards/{id}/purchases", h.Purchase).Methods("POST")
	// Company routes, behind the partner API key
	companyRouter := r.PathPrefix("/").Subrouter()
	companyRouter.Use(middleware.AuthMiddleware(authSvc, logger))
	companyRouter.HandleFunc("/cards", h.CreateCard).Methods("POST")
	companyRouter.HandleFunc("/cards/{id}/recharges", h.Recharge).Methods("POST")

	// Expiring-card reminder sweep
	if cfg.SMTPConfigured() {
		sender := email.NewSender(cfg, logger)
		reminder := jobs.NewExpiryReminder(cards, employees, sender, logger)
		c := cron.New()
		if _, err := c.AddJob(cfg.ReminderSchedule, reminder); err != nil {
			logger.Fatalf("Failed to schedule expiry reminder: %v", err)
		}
		c.Start()
		defer c.Stop()
	} else {
		logger.Info("SMTP not configured, expiry reminders disabled")
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
