package core

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config is the environment-driven server configuration.
type Config struct {
	ListenAddr    string
	SessionSecret string
	SessionTTL    time.Duration
	OTPTTL        time.Duration

	MongoURI string
	MongoDB  string

	// RedisAddr is optional; when empty the OTP store and rate limiter fall
	// back to in-process memory (single-instance only).
	RedisAddr     string
	RedisPassword string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	// S3Endpoint overrides the AWS endpoint for MinIO-compatible stores.
	S3Endpoint string
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (*Config, error) {
	c := &Config{
		ListenAddr:    envOr("BGAZE_LISTEN_ADDR", ":8080"),
		SessionSecret: strings.TrimSpace(os.Getenv("BGAZE_SESSION_SECRET")),
		SessionTTL:    envDuration("BGAZE_SESSION_TTL", 7*24*time.Hour),
		OTPTTL:        envDuration("BGAZE_OTP_TTL", 5*time.Minute),
		MongoURI:      firstEnv("MONGO_URI", "MONGODB_URI"),
		MongoDB:       envOr("MONGO_DB", "bgaze"),
		RedisAddr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		SMTPHost:      strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPPort:      envOr("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:      strings.TrimSpace(os.Getenv("SMTP_FROM")),
		S3Region:      envOr("S3_REGION", "us-east-1"),
		S3Bucket:      strings.TrimSpace(os.Getenv("S3_BUCKET")),
		S3AccessKey:   os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:   os.Getenv("S3_SECRET_KEY"),
		S3Endpoint:    strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
	}
	if c.SessionSecret == "" {
		return nil, fmt.Errorf("BGAZE_SESSION_SECRET is required")
	}
	if c.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI (or MONGODB_URI) is required")
	}
	if c.S3Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required")
	}
	return c, nil
}

// IsDevEnvironment reports whether the current ENV/APP_ENV/ENVIRONMENT is
// non-production. Session cookies are only marked Secure in production.
func IsDevEnvironment() bool {
	env := strings.ToLower(firstEnv("ENV", "APP_ENV", "ENVIRONMENT"))
	switch env {
	case "", "dev", "development", "local", "test":
		return true
	}
	return false
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
