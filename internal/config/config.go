package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	PokeAPI  PokeAPIConfig
}

type AppConfig struct {
	Env      string
	HTTPAddr string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type PokeAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		App: AppConfig{
			Env:      getEnv("APP_ENV", "development"),
			HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "poketeam"),
			Password: getEnv("DB_PASSWORD", "poketeam"),
			DBName:   getEnv("DB_NAME", "poketeam"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		PokeAPI: PokeAPIConfig{
			BaseURL: getEnv("POKEAPI_URL", "https://pokeapi.co/api/v2"),
			Timeout: getEnvDuration("POKEAPI_TIMEOUT", 10*time.Second),
		},
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
