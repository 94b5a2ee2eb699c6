package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fulloncrypto.backend/internal/config"
	"fulloncrypto.backend/internal/infrastructure/models"
	"fulloncrypto.backend/internal/infrastructure/repositories"
	"fulloncrypto.backend/internal/interfaces/http/handlers"
	"fulloncrypto.backend/internal/interfaces/http/middleware"
	"fulloncrypto.backend/internal/usecases"
	"fulloncrypto.backend/pkg/logger"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			TranslateError: true,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
		if err := db.AutoMigrate(&models.User{}, &models.PaymentRequest{}, &models.UpiIndex{}); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	paymentRequestRepo := repositories.NewPaymentRequestRepository(db)
	upiIndexRepo := repositories.NewUpiIndexRepository(db)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo)
	paymentRequestUsecase := usecases.NewPaymentRequestUsecase(paymentRequestRepo, upiIndexRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	paymentRequestHandler := handlers.NewPaymentRequestHandler(paymentRequestUsecase)
	systemHandler := handlers.NewSystemHandler(db)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerMetricsRoute(r)
	registerAPIRoutes(r, routeDeps{
		authHandler:           authHandler,
		paymentRequestHandler: paymentRequestHandler,
		systemHandler:         systemHandler,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Start server
	log.Printf("🚀 FullOnCrypto Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/api/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
