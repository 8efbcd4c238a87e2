package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AppConfig holds application configuration loaded from environment variables and .env file.
type AppConfig struct {
	// Database config. DBProvider selects the target engine (oracle, sqlserver,
	// mysql) and doubles as the provider identity string the key generation
	// registry matches against.
	DBProvider string
	DBHost     string
	DBPort     int
	DBUser     string
	DBPass     string
	DBName     string
	// DBService is the Oracle service name. Ignored by other providers.
	DBService string
	// DBDsn overrides the DSN assembled from the fields above when set.
	DBDsn string

	// Logging config
	LogLevel      string
	LogFile       string
	LogMaxSize    int // MB
	LogMaxBackups int
	LogMaxAge     int // days
	LogCompress   bool

	// HTTP server port
	ServerPort string
}

// Cfg is the global application configuration instance.
var Cfg AppConfig

// LoadConfig loads and validates application configuration from .env file and environment variables.
func LoadConfig() error {
	err := godotenv.Load()
	if err != nil {
		// Use standard log here since logger is not initialized yet
		log.Printf("[WARN] .env file not found or cannot be loaded: %v", err)
	} else {
		log.Printf("[INFO] .env file loaded successfully")
	}

	Cfg.DBProvider = getEnv("DB_PROVIDER", "oracle")
	Cfg.DBHost = getEnv("DB_HOST", "127.0.0.1")
	Cfg.DBUser = getEnv("DB_USER", "nextpark")
	Cfg.DBPass = getEnv("DB_PASS", "")
	Cfg.DBName = getEnv("DB_NAME", "nextpark")
	Cfg.DBService = getEnv("DB_SERVICE", "ORCL")
	Cfg.DBDsn = getEnv("DB_DSN", "")
	Cfg.DBPort = getEnvInt("DB_PORT", 1521)

	Cfg.LogLevel = getEnv("LOG_LEVEL", "INFO")
	Cfg.LogFile = getEnv("LOG_FILE", "/var/log/nextpark/nextparkapi.log")
	Cfg.LogMaxSize = getEnvInt("LOG_MAX_SIZE", 10)
	Cfg.LogMaxBackups = getEnvInt("LOG_MAX_BACKUPS", 3)
	Cfg.LogMaxAge = getEnvInt("LOG_MAX_AGE", 28)
	Cfg.LogCompress = getEnvBool("LOG_COMPRESS", true)

	Cfg.ServerPort = getEnv("PORT", "8080")

	if Cfg.DBProvider == "" {
		return fmt.Errorf("DB_PROVIDER must not be empty")
	}
	if Cfg.DBDsn == "" && Cfg.DBHost == "" {
		return fmt.Errorf("database connection is not configured: set DB_DSN or DB_HOST")
	}

	log.Printf("[INFO] Config loaded - Provider: %s, DB: %s@%s:%d/%s, LogLevel: %s",
		Cfg.DBProvider, Cfg.DBUser, Cfg.DBHost, Cfg.DBPort, Cfg.DBName, Cfg.LogLevel)

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
