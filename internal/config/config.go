package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	JobSearch JobSearchConfig
	Keywords  KeywordsConfig
	Session   SessionConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type StorageConfig struct {
	TempDir     string
	MaxFileSize int64
}

type JobSearchConfig struct {
	URL     string
	Host    string
	APIKey  string
	Timeout time.Duration
}

type KeywordsConfig struct {
	TopN int
}

type SessionConfig struct {
	Expiration time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Storage: StorageConfig{
			TempDir:     getEnv("TEMP_DIR", os.TempDir()),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		JobSearch: JobSearchConfig{
			URL:     getEnv("JOBS_API_URL", "https://jobs-search-api.p.rapidapi.com/getjobs"),
			Host:    getEnv("JOBS_API_HOST", "jobs-search-api.p.rapidapi.com"),
			APIKey:  getEnv("RAPIDAPI_KEY", ""),
			Timeout: getEnvAsDuration("JOBS_API_TIMEOUT", "30s"),
		},
		Keywords: KeywordsConfig{
			TopN: getEnvAsInt("KEYWORDS_TOP_N", 30),
		},
		Session: SessionConfig{
			Expiration: getEnvAsDuration("SESSION_EXPIRATION", "30m"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
