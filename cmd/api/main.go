package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-interview-backend/config"
	_ "go-interview-backend/docs" // Important for Swagger
	"go-interview-backend/internal/delivery/http/middleware"
	v1 "go-interview-backend/internal/delivery/http/v1"
	"go-interview-backend/internal/domain"
	"go-interview-backend/internal/realtime"
	"go-interview-backend/internal/repository/memory"
	"go-interview-backend/internal/usecase"
	"go-interview-backend/pkg/antivirus"
	"go-interview-backend/pkg/email"
	"go-interview-backend/pkg/logger"
	"go-interview-backend/pkg/pdf"
	"go-interview-backend/pkg/redis"
	"go-interview-backend/pkg/storage"
	"go-interview-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// @title           HaRry AI HR API
// @version         1.0
// @description     Demo backend for the AI-assisted interview dashboard: candidates, interviews, vacancies, reports and a live interview stream.
// @host            localhost:8000
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting interview backend", "port", cfg.Port, "api_prefix", cfg.APIPrefix)
	if logger.ParseLevel(cfg.LogLevel) != slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// 3. Setup Fixture Store
	store, err := memory.NewStore(memory.DefaultFixtures(time.Now()))
	if err != nil {
		logger.Log.Error("Invalid fixture data", "error", err)
		os.Exit(1)
	}

	// 4. Setup Repositories
	candidateRepo := memory.NewCandidateRepository(store)
	interviewRepo := memory.NewInterviewRepository(store)
	vacancyRepo := memory.NewVacancyRepository(store)
	reportRepo := memory.NewReportRepository(store)

	// 5. Setup Resume Storage
	resumes, err := newResumeStorage(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to configure resume storage", "error", err)
		os.Exit(1)
	}

	// 6. Setup Redis (optional)
	var redisClient *goredis.Client
	var redisPing usecase.Pinger
	redisClient, err = redis.Connect(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
	switch {
	case errors.Is(err, redis.ErrNotConfigured):
		logger.Log.Info("Redis disabled, rate limiting is in-memory")
	case err != nil:
		logger.Log.Warn("Redis unavailable, rate limiting is in-memory", "error", err)
		redisClient = nil
	default:
		defer redisClient.Close()
		redisPing = func(ctx context.Context) error { return redis.HealthCheck(ctx, redisClient) }
		logger.Log.Info("Redis connected")
	}

	// 7. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - notifications are acknowledged without delivery")
	}

	// 8. Setup Realtime
	hub := realtime.NewHub(cfg.WSWriteTimeout)
	simulator := realtime.NewSimulator(hub, interviewRepo, cfg.SimulatorTick)
	hub.OnEmpty(simulator.Cancel)

	// 9. Setup UseCases
	validate := validation.New()
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, vacancyRepo, resumes, validate)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo)
	vacancyUC := usecase.NewVacancyUsecase(vacancyRepo, validate)
	reportUC := usecase.NewReportUsecase(reportRepo, pdf.NewPlaceholderRenderer())
	notificationUC := usecase.NewNotificationUsecase(candidateRepo, emailService, validate)
	healthUC := usecase.NewHealthUsecase(store, hub, redisPing)

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CandidateUC:    candidateUC,
		InterviewUC:    interviewUC,
		VacancyUC:      vacancyUC,
		ReportUC:       reportUC,
		NotificationUC: notificationUC,
		HealthUC:       healthUC,
		Hub:            hub,
		Simulator:      simulator,
		RateLimiter:    middleware.NewRateLimiter(redisClient),
		Config:         cfg,
	})

	// 11. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := simulator.Shutdown(shutdownCtx); err != nil {
		logger.Log.Warn("Simulations did not stop in time", "error", err)
	}
	// hijacked WebSocket connections are not closed by srv.Shutdown
	hub.CloseAll("server shutting down")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// newResumeStorage uses S3 when RESUME_BUCKET is set and process memory
// otherwise. With CLAMAV_ADDRESS set every upload is scanned first.
func newResumeStorage(ctx context.Context, cfg *config.Config) (domain.ResumeStorage, error) {
	store, err := newObjectStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.ClamAVAddress == "" {
		return store, nil
	}

	scanner := antivirus.NewClamAVScanner(cfg.ClamAVAddress, cfg.ClamAVTimeout)
	if err := scanner.Ping(ctx); err != nil {
		// uploads fail closed until clamd comes up
		logger.Log.Warn("ClamAV not reachable", "address", cfg.ClamAVAddress, "error", err)
	} else {
		logger.Log.Info("Resume scanning enabled", "address", cfg.ClamAVAddress)
	}
	return antivirus.NewGuardedStorage(store, scanner), nil
}

func newObjectStorage(ctx context.Context, cfg *config.Config) (domain.ResumeStorage, error) {
	if cfg.ResumeBucket == "" {
		logger.Log.Warn("RESUME_BUCKET not set - resumes are kept in memory")
		return storage.NewMemoryStore(), nil
	}

	client, err := storage.NewS3Client(ctx, storage.S3Config{
		Provider:        storage.S3Provider(cfg.S3Provider),
		Endpoint:        cfg.S3Endpoint,
		Region:          cfg.S3Region,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Bucket:          cfg.ResumeBucket,
	})
	if err != nil {
		return nil, err
	}
	logger.Log.Info("Resume storage configured", "provider", cfg.S3Provider, "bucket", cfg.ResumeBucket)
	return storage.NewS3Store(client, cfg.ResumeBucket), nil
}
