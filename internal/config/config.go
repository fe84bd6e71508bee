package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	OAuth    OAuthConfig
	AI       AIConfig
	Jobs     JobsConfig
	Redis    RedisConfig
	Admin    AdminConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	BaseURL     string
}

type DatabaseConfig struct {
	Driver string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	SQLitePath string
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type OAuthConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
}

type AIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type JobsConfig struct {
	AdzunaAppID  string
	AdzunaAppKey string
	BaseURL      string
	Country      string
	PageSize     int
	Timeout      time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type AdminConfig struct {
	Email string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "career-compass"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    opt("HTTP_PORT", "8080"),
		BaseURL:     opt("APP_BASE_URL", "http://localhost:8080"),
	}

	cfg.Database = DatabaseConfig{
		Driver:     opt("DB_DRIVER", ""),
		DBHost:     opt("DB_HOST", ""),
		DBPort:     opt("DB_PORT", "5432"),
		DBName:     opt("DB_NAME", ""),
		DBUser:     opt("DB_USER", ""),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE", "disable"),
		SQLitePath: opt("SQLITE_PATH", "database.db"),
	}
	if cfg.Database.Driver == "" {
		// Same startup choice the hosted deployment makes: Postgres when a
		// database host is configured, local SQLite file otherwise.
		if cfg.Database.DBHost != "" {
			cfg.Database.Driver = DriverPostgres
		} else {
			cfg.Database.Driver = DriverSQLite
		}
	}
	if cfg.Database.Driver != DriverPostgres && cfg.Database.Driver != DriverSQLite {
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  optDuration("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
		RefreshExpiresIn: optDuration("JWT_REFRESH_EXPIRES_IN", 168*time.Hour),
	}

	cfg.OAuth = OAuthConfig{
		GoogleClientID:     req("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: req("GOOGLE_CLIENT_SECRET"),
	}

	cfg.AI = AIConfig{
		APIKey:  req("AI_API_KEY"),
		BaseURL: opt("AI_BASE_URL", "https://api.groq.com/openai/v1"),
		Model:   opt("AI_MODEL", "llama-3.1-8b-instant"),
		Timeout: optDuration("AI_TIMEOUT", 60*time.Second),
	}

	cfg.Jobs = JobsConfig{
		AdzunaAppID:  req("ADZUNA_APP_ID"),
		AdzunaAppKey: req("ADZUNA_APP_KEY"),
		BaseURL:      opt("ADZUNA_BASE_URL", "https://api.adzuna.com/v1/api"),
		Country:      opt("ADZUNA_COUNTRY", "in"),
		PageSize:     optInt("ADZUNA_PAGE_SIZE", 10),
		Timeout:      optDuration("ADZUNA_TIMEOUT", 10*time.Second),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", ""),
		Port:     opt("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	cfg.Admin = AdminConfig{
		Email: strings.ToLower(opt("ADMIN_EMAIL", "")),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func optInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
