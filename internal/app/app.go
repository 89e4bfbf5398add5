package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gstippagol/habit/internal/config"
	"github.com/gstippagol/habit/internal/infrastructure/cron"
	"github.com/gstippagol/habit/internal/infrastructure/db"
	"github.com/gstippagol/habit/internal/infrastructure/kafka"
	"github.com/gstippagol/habit/internal/infrastructure/pdf"
	"github.com/gstippagol/habit/internal/infrastructure/postgres"
	"github.com/gstippagol/habit/internal/infrastructure/redis"
	"github.com/gstippagol/habit/internal/infrastructure/smtp"
	"github.com/gstippagol/habit/internal/service"
	"github.com/gstippagol/habit/internal/transport/http/handler"
	"github.com/gstippagol/habit/internal/transport/http/middleware"
	pkgjwt "github.com/gstippagol/habit/pkg/jwt"
)

type App struct {
	cfg *config.Config
}

// New creates a new application instance
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &App{
		cfg: cfg,
	}, nil
}

// Run starts the application
func (a *App) Run() error {
	ctx := context.Background()

	// Initialize PostgreSQL
	log.Println("Connecting to PostgreSQL...")
	pool, err := db.NewPostgresPool(ctx, &a.cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pool.Close()
	log.Println("Connected to PostgreSQL")

	// Initialize Redis
	log.Println("Connecting to Redis...")
	redisClient, err := redis.NewClient(ctx, &a.cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Initialize SMTP client
	smtpClient, err := smtp.NewClient(&a.cfg.SMTP, &a.cfg.Email)
	if err != nil {
		return fmt.Errorf("failed to initialize SMTP client: %w", err)
	}

	// Initialize repositories
	habitRepo := postgres.NewHabitRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)

	// Initialize token manager and Redis-backed storages
	tokenManager := pkgjwt.NewTokenManager(
		a.cfg.JWT.Secret,
		a.cfg.JWT.AccessTokenTTL,
		a.cfg.JWT.RefreshTokenTTL,
		a.cfg.JWT.Issuer,
	)
	sessionStorage := redis.NewSessionStorage(redisClient, a.cfg.JWT.RefreshTokenTTL)
	verificationTokens := redis.NewVerificationTokenStorage(redisClient)

	// Initialize Kafka producer
	producer := kafka.NewProducer(&a.cfg.Kafka)
	defer func() {
		if err := producer.Close(); err != nil {
			log.Printf("Error closing Kafka producer: %v", err)
		}
	}()

	// Initialize services
	habitService := service.NewHabitService(habitRepo)
	authService := service.NewAuthService(userRepo, sessionStorage, verificationTokens, tokenManager, producer)
	reminderService := service.NewReminderService(userRepo, habitRepo, notificationRepo, smtpClient)
	reportService := service.NewReportService(userRepo, habitRepo, notificationRepo, pdf.NewLedgerRenderer(), smtpClient)

	// Initialize Kafka consumer
	consumer := kafka.NewConsumer(&a.cfg.Kafka, notificationRepo, smtpClient)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Start Kafka consumer in goroutine
	consumerErrChan := make(chan error, 1)
	go func() {
		if err := consumer.Start(ctx); err != nil {
			consumerErrChan <- err
		}
	}()

	// Start cron scheduler
	var scheduler *cron.Scheduler
	if a.cfg.Scheduler.Enabled {
		scheduler = cron.NewScheduler(reminderService, reportService)
		if err := scheduler.Start(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
		log.Println("Scheduler started")
	}

	// Initialize HTTP server
	authMiddleware := middleware.NewAuthMiddleware(authService)
	router := handler.NewRouter(
		handler.NewAuthHandler(authService),
		handler.NewHabitHandler(habitService),
		authMiddleware,
	)
	limiter := middleware.NewRateLimiter(a.cfg.HTTP.RequestsPerMinute)
	defer limiter.Stop()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", a.cfg.HTTP.Port),
		Handler:      router.Setup(limiter),
		ReadTimeout:  a.cfg.HTTP.ReadTimeout,
		WriteTimeout: a.cfg.HTTP.WriteTimeout,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("Habit service started successfully")

	select {
	case err := <-serverErrChan:
		return fmt.Errorf("HTTP server error: %w", err)
	case err := <-consumerErrChan:
		log.Printf("Kafka consumer error: %v", err)
		return err
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
	}

	// Graceful shutdown
	log.Println("Shutting down gracefully...")
	cancel()

	if scheduler != nil {
		scheduler.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	}

	log.Println("Application stopped")
	return nil
}
