package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	APIPrefix   string
	LogLevel    string
	FrontendURL string
	// Extra origins allowed by CORS and the WebSocket handshake (comma separated)
	CORSAllowedOrigins []string
	// Interview simulation pacing
	SimulatorTick  time.Duration
	WSWriteTimeout time.Duration
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitWriteThreshold  int
	// Resume storage (S3 compatible). Empty bucket keeps resumes in memory.
	S3Provider        string
	S3Endpoint        string
	S3Region          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	ResumeBucket      string
	MaxResumeSizeMB   int
	// clamd address for resume scanning. Empty disables scanning.
	ClamAVAddress string
	ClamAVTimeout time.Duration
	// SMTP Configuration for candidate notifications
	SMTPHost        string
	SMTPPort        string
	SMTPUsername    string
	SMTPPassword    string
	NotifyFromEmail string
}

func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8000"),
		APIPrefix: "/" + strings.Trim(getEnv("API_PREFIX", "/api"), "/"),
		LogLevel:  getEnv("LOG_LEVEL", "debug"),
		// Vite dev server of the HR dashboard
		FrontendURL:        strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),
		SimulatorTick:      getEnvDuration("SIM_TICK", time.Second),
		WSWriteTimeout:     getEnvDuration("WS_WRITE_TIMEOUT", 5*time.Second),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 300),
		RateLimitWriteThreshold:  getEnvInt("RATE_LIMIT_WRITE_THRESHOLD", 30),
		// Resume storage
		S3Provider:        getEnv("S3_PROVIDER", "aws"),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		ResumeBucket:      getEnv("RESUME_BUCKET", ""),
		MaxResumeSizeMB:   getEnvInt("MAX_RESUME_SIZE_MB", 10),
		ClamAVAddress:     getEnv("CLAMAV_ADDRESS", ""),
		ClamAVTimeout:     getEnvDuration("CLAMAV_TIMEOUT", 30*time.Second),
		// SMTP Configuration
		SMTPHost:        getEnv("SMTP_HOST", ""),
		SMTPPort:        getEnv("SMTP_PORT", "587"),
		SMTPUsername:    getEnv("SMTP_USERNAME", ""),
		SMTPPassword:    getEnv("SMTP_PASSWORD", ""),
		NotifyFromEmail: getEnv("NOTIFY_FROM_EMAIL", "noreply@harry-hr.local"),
	}

	if cfg.SimulatorTick <= 0 {
		log.Println("WARNING: SIM_TICK must be positive, using 1s")
		cfg.SimulatorTick = time.Second
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// AllowedOrigins is the full CORS whitelist: the dashboard URL, the local
// Vite defaults and anything listed in CORS_ALLOWED_ORIGINS.
func (c *Config) AllowedOrigins() []string {
	seen := make(map[string]bool)
	var origins []string
	add := func(o string) {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" || seen[o] {
			return
		}
		seen[o] = true
		origins = append(origins, o)
	}
	add(c.FrontendURL)
	add("http://localhost:5173")
	add("http://127.0.0.1:5173")
	for _, o := range c.CORSAllowedOrigins {
		add(o)
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration strings ("500ms", "2s")
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
