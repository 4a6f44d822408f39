package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	AppEnv     string
	ServerPort string
	LogLevel   string

	RedisAddr string
	RedisDB   int
	RedisPass string

	StorageBackend string
	SessionTTL     time.Duration

	CatalogSource string
	DBDriver      string
	DatabaseDSN   string

	JWTSecret      string
	ClientTokenTTL time.Duration

	AuthEmail        string
	AuthPassword     string
	AuthPasswordHash string
	AuthOTP          string
	AuthLoginDelay   time.Duration

	ProfileName     string
	ProfileRole     string
	ProfileAvatar   string
	ProfileLocation string

	EmptyAverage string
	CacheTTL     time.Duration

	SwaggerHost string
}

const (
	StorageRedis  = "redis"
	StorageMemory = "memory"

	CatalogStatic   = "static"
	CatalogDatabase = "database"
)

// Load builds Config from environment with sensible defaults. A .env file in the working
// directory is read first; variables already set in the environment win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppEnv:     getEnv("APP_ENV", "development"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   os.Getenv("LOG_LEVEL"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:   getEnvInt("REDIS_DB", 0),
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		StorageBackend: getEnv("STORAGE_BACKEND", StorageRedis),
		SessionTTL:     getEnvDuration("SESSION_TTL", 7*24*time.Hour),

		CatalogSource: getEnv("CATALOG_SOURCE", CatalogStatic),
		DBDriver:      getEnv("DB_DRIVER", "mysql"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "user:password@tcp(localhost:3306)/saaransh?charset=utf8mb4&parseTime=True&loc=Local"),

		JWTSecret:      getEnv("JWT_SECRET", "change-me"),
		ClientTokenTTL: getEnvDuration("CLIENT_TOKEN_TTL", 30*24*time.Hour),

		AuthEmail:        strings.TrimSpace(getEnv("AUTH_EMAIL", "ishaan.saxena@mca.gov.in")),
		AuthPassword:     getEnv("AUTH_PASSWORD", "password"),
		AuthPasswordHash: os.Getenv("AUTH_PASSWORD_HASH"),
		AuthOTP:          getEnv("AUTH_OTP", "123456"),
		AuthLoginDelay:   getEnvDuration("AUTH_LOGIN_DELAY", 0),

		ProfileName:     getEnv("PROFILE_NAME", "Ishaan Saxena"),
		ProfileRole:     getEnv("PROFILE_ROLE", "Policy Analyst"),
		ProfileAvatar:   getEnv("PROFILE_AVATAR", "https://placehold.co/40x40/E2E8F0/475569?text=I"),
		ProfileLocation: getEnv("PROFILE_LOCATION", "Delhi, India"),

		EmptyAverage: getEnv("ANALYTICS_EMPTY_AVERAGE", "zero"),
		CacheTTL:     getEnvDuration("CACHE_TTL", 5*time.Minute),

		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
