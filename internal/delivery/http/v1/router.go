package v1

import (
	"net/http"
	"time"

	"go-interview-backend/config"
	"go-interview-backend/internal/delivery/http/middleware"
	"go-interview-backend/internal/delivery/http/response"
	"go-interview-backend/internal/domain"
	"go-interview-backend/internal/realtime"
	"go-interview-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const banner = "HaRry AI HR API is running"

type RouterDeps struct {
	CandidateUC    domain.CandidateUsecase
	InterviewUC    domain.InterviewUsecase
	VacancyUC      domain.VacancyUsecase
	ReportUC       domain.ReportUsecase
	NotificationUC domain.NotificationUsecase
	HealthUC       usecase.HealthUsecase
	Hub            *realtime.Hub
	Simulator      *realtime.Simulator
	RateLimiter    *middleware.RateLimiter
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	cfg := deps.Config

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	limiter := deps.RateLimiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(nil)
	}
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	if window <= 0 {
		window = time.Minute
	}
	writeLimit := limiter.Middleware(middleware.WriteRateLimitConfig(cfg.RateLimitWriteThreshold, window))

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found")
	})

	r.GET("/", func(c *gin.Context) {
		response.Success(c, http.StatusOK, banner, nil)
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// WebSocket lives outside the API prefix and the HTTP rate limit
	NewInterviewStreamHandler(r, deps.Hub, deps.Simulator, cfg.AllowedOrigins())

	api := r.Group(cfg.APIPrefix)
	api.Use(limiter.Middleware(middleware.DefaultRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c))
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewCandidateHandler(api, deps.CandidateUC, int64(cfg.MaxResumeSizeMB)<<20, writeLimit)
	NewInterviewHandler(api, deps.InterviewUC)
	NewVacancyHandler(api, deps.VacancyUC, writeLimit)
	NewReportHandler(api, deps.ReportUC)
	NewNotificationHandler(api, deps.NotificationUC, writeLimit)

	return r
}
