package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	ActivityTopic      string
	ListCacheTTL       time.Duration
}

type DatabaseConfig struct {
	// Connection holds the DSN without a database name, e.g.
	// "host=localhost user=panel password=panel port=5432 sslmode=disable".
	Connection string
	Name       string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			ActivityTopic:      getEnv("SUBJECT_ACTIVITY_TOPIC_NAME", "SUBJECT_ACTIVITY"),
			ListCacheTTL:       time.Duration(getEnvAsInt("SUBJECT_LIST_CACHE_TTL_SECONDS", 30)) * time.Second,
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
			Name:       getEnv("DB_NAME", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
