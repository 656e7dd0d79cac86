package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds application configuration loaded from environment variables
// and an optional .env file.
type AppConfig struct {
	// Database config
	DBHost string
	DBPort int
	DBUser string
	DBPass string
	DBName string

	// Hub (permission authority) config
	HubBaseURL string
	HubTimeout time.Duration

	// Logging config
	LogLevel      string
	LogFile       string
	LogMaxSize    int // MB
	LogMaxBackups int
	LogMaxAge     int // days
	LogCompress   bool

	// HTTP config
	Port string
}

// Cfg is the global application configuration instance.
var Cfg AppConfig

// LoadConfig loads application configuration from .env and the environment.
func LoadConfig() error {
	if err := godotenv.Load(); err != nil {
		// Standard log here since the logger is not initialized yet.
		log.Printf("[WARN] .env file not found or cannot be loaded: %v", err)
	}

	Cfg.DBHost = getEnv("DB_HOST", "127.0.0.1")
	Cfg.DBPort = getEnvInt("DB_PORT", 3306)
	Cfg.DBUser = getEnv("DB_USER", "root")
	Cfg.DBPass = getEnv("DB_PASS", "")
	Cfg.DBName = getEnv("DB_NAME", "prestige")

	Cfg.HubBaseURL = getEnv("HUB_BASE_URL", "http://localhost:3030")
	Cfg.HubTimeout = time.Duration(getEnvInt("HUB_TIMEOUT", 10)) * time.Second

	Cfg.LogLevel = getEnv("LOG_LEVEL", "INFO")
	Cfg.LogFile = getEnv("LOG_FILE", "/var/log/prestige/prestigeapi.log")
	Cfg.LogMaxSize = getEnvInt("LOG_MAX_SIZE", 10)
	Cfg.LogMaxBackups = getEnvInt("LOG_MAX_BACKUPS", 3)
	Cfg.LogMaxAge = getEnvInt("LOG_MAX_AGE", 28)
	Cfg.LogCompress = getEnvBool("LOG_COMPRESS", true)

	Cfg.Port = getEnv("PORT", "3000")

	log.Printf("[INFO] Config loaded - DB: %s@%s:%d/%s, Hub: %s, LogLevel: %s",
		Cfg.DBUser, Cfg.DBHost, Cfg.DBPort, Cfg.DBName, Cfg.HubBaseURL, Cfg.LogLevel)

	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if boolVal, err := strconv.ParseBool(val); err == nil {
			return boolVal
		}
	}
	return defaultVal
}
