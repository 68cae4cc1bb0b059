package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	AllowedOrigin string
	// Database probe (diagnostic endpoint only)
	DatabaseURL  string
	DatabaseName string
	// Optional YAML file overriding the built-in firm profile
	FirmProfileFile string
}

func Load() Config {
	_ = godotenv.Load()
	return Config{
		Port:            getEnvDefault("PORT", "8000"),
		AllowedOrigin:   getEnvDefault("ALLOWED_ORIGIN", "*"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DatabaseName:    os.Getenv("DATABASE_NAME"),
		FirmProfileFile: os.Getenv("FIRM_PROFILE_FILE"),
	}
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
