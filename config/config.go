package config

import (
	"os"
	"time"
)

type Config struct {
	Addr string

	MongoURI string
	MongoDB  string

	// MySQL holds the reporting tables (monthly_reports, user_summaries).
	MySQLDSN string

	JWTSecret string
	TokenTTL  time.Duration

	FrontendURL string
}

func Load() *Config {
	return &Config{
		Addr:        ":" + getEnv("PORT", "5000"),
		MongoURI:    getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGODB_NAME", "finance_tracker"),
		MySQLDSN:    getEnv("MYSQL_DSN", "root:1234@/finance_reports?parseTime=true"),
		JWTSecret:   getEnv("JWT_SECRET", "fallback-secret"),
		TokenTTL:    getEnvDuration("JWT_EXPIRES_IN", 7*24*time.Hour),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
