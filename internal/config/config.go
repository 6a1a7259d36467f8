package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	PostgresDSN     string
	MongoURI        string
	TrackingDBName  string
	JWTSecret       string
	AdminEmails     map[string]struct{}
	RequestTimeout  time.Duration
	DefaultPageSize int64
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		PostgresDSN:     getEnvOrDefault("POSTGRES_DSN", "host=localhost port=5432 user=postgres dbname=partsmarket sslmode=disable"),
		MongoURI:        getEnvOrDefault("MONGO_URI", ""),
		TrackingDBName:  getEnvOrDefault("TRACKING_DB_NAME", "partsmarket_tracking"),
		JWTSecret:       getEnvOrDefault("JWT_SECRET", ""),
		AdminEmails:     getStringSetEnv("ADMIN_EMAILS"),
		RequestTimeout:  getDurationEnv("REQUEST_TIMEOUT", 5, time.Second),
		DefaultPageSize: getInt64Env("DEFAULT_PAGE_SIZE", 20),
	}
}

// IsAdminEmail reports whether the email is on the configured allow-list.
// Admin identity is an email allow-list, not a stored role flag.
func (c Config) IsAdminEmail(email string) bool {
	_, ok := c.AdminEmails[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getStringSetEnv(key string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, entry := range strings.Split(os.Getenv(key), ",") {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry != "" {
			set[entry] = struct{}{}
		}
	}
	return set
}
