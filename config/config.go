package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the immutable process configuration, loaded once at startup.
type Config struct {
	App    AppConfig
	Store  StoreConfig
	Engine EngineConfig
	CORS   CORSConfig
}

type AppConfig struct {
	Port      int
	Env       string
	StaticDir string
}

type StoreConfig struct {
	Path string
}

// EngineConfig carries the reconciliation defaults applied when a request
// does not override them.
type EngineConfig struct {
	DefaultUF        string
	ExpectedHours    float64
	ToleranceMinutes int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from the environment, with a .env file merged in
// when present.
func Load() (*Config, error) {
	// Missing .env is fine; the environment alone is a valid source.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("HTTP_PORT", "8000"))
	if err != nil {
		return nil, err
	}
	expected, err := strconv.ParseFloat(getEnv("EXPECTED_HOURS", "8.0"), 64)
	if err != nil {
		return nil, err
	}
	tolerance, err := strconv.Atoi(getEnv("TOLERANCE_MINUTES", "2"))
	if err != nil {
		return nil, err
	}

	return &Config{
		App: AppConfig{
			Port:      port,
			Env:       getEnv("APP_ENV", "development"),
			StaticDir: getEnv("STATIC_DIR", "./frontend"),
		},
		Store: StoreConfig{
			Path: getEnv("DB_PATH", "apontamento.db"),
		},
		Engine: EngineConfig{
			DefaultUF:        getEnv("DEFAULT_UF", "SP"),
			ExpectedHours:    expected,
			ToleranceMinutes: tolerance,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
