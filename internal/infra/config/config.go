package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the API process.
type AppConfig struct {
	DatabaseURL string
	Port        string

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	RabbitUser string
	RabbitPass string
	RabbitHost string
	RabbitPort string

	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string

	LogLevel    string
	Environment string

	// CronSpecReminderSweep controls how often due follow-ups are swept
	// into the reminder queue.
	CronSpecReminderSweep string
	// ReconcileInterval controls how often the pipeline reconciliation
	// worker runs, in minutes.
	ReconcileIntervalMin int

	AllowedOrigins []string
}

// Load reads configuration from environment variables and a .env file when
// present. godotenv never overrides variables already set in the process.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	cfg.JWTIssuer = getEnv("JWT_ISSUER", "studiously")
	cfg.JWTAudience = getEnv("JWT_AUDIENCE", "studiously-api")

	cfg.Port = getEnv("PORT", "8080")

	cfg.RabbitUser = getEnv("RABBITMQ_USER", "guest")
	cfg.RabbitPass = getEnv("RABBITMQ_PASS", "guest")
	cfg.RabbitHost = getEnv("RABBITMQ_HOST", "localhost")
	cfg.RabbitPort = getEnv("RABBITMQ_PORT", "5672")

	cfg.MailHost = os.Getenv("MAIL_HOST")
	cfg.MailUser = os.Getenv("MAIL_USER")
	cfg.MailPass = os.Getenv("MAIL_PASS")
	cfg.MailFrom = getEnv("MAIL_FROM", "reminders@studiously.app")

	mailPortStr := getEnv("MAIL_PORT", "587")
	mailPort, err := strconv.Atoi(mailPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid MAIL_PORT: %w", err)
	}
	cfg.MailPort = mailPort

	cfg.LogLevel = strings.ToLower(getEnv("LOG_LEVEL", "info"))
	cfg.Environment = strings.ToLower(getEnv("ENVIRONMENT", "development"))

	cfg.CronSpecReminderSweep = getEnv("CRON_SPEC_REMINDER_SWEEP", "*/15 * * * *")

	reconcileStr := getEnv("RECONCILE_INTERVAL_MIN", "10")
	reconcile, err := strconv.Atoi(reconcileStr)
	if err != nil {
		return nil, fmt.Errorf("invalid RECONCILE_INTERVAL_MIN: %w", err)
	}
	cfg.ReconcileIntervalMin = reconcile

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:5173")
	cfg.AllowedOrigins = strings.Split(origins, ",")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
