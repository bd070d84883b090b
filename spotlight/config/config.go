package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DBDriver   string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBPath     string
	// DBAutoMigrate creates missing tables and columns on connect. The
	// collections belong to the upstream pipeline, so this is for local stores only.
	DBAutoMigrate bool
	AdminAPIKey   string
	Port          string
	LogDir        string
	StaticDir     string
}

// LoadConfig reads the process environment. A .env file in the working
// directory is merged in first when present; real env vars win.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		DBDriver:      getEnv("DB_DRIVER", DriverPostgres),
		DBUser:        getEnv("DB_USER", ""),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_NAME", ""),
		DBPath:        getEnv("DB_PATH", "spotlight.db"),
		DBAutoMigrate: getEnvBool("DB_AUTO_MIGRATE", false),
		AdminAPIKey:   getEnv("ADMIN_API_KEY", ""),
		Port:          getEnv("PORT", "3001"),
		LogDir:        getEnv("LOG_DIR", "./logs"),
		StaticDir:     getEnv("STATIC_DIR", ""),
	}
}

// DSN builds the driver-specific connection string.
func (c Config) DSN() (string, error) {
	switch c.DBDriver {
	case DriverPostgres:
		if c.DBName == "" {
			return "", fmt.Errorf("DB_NAME is not defined in environment variables")
		}
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			c.DBHost,
			c.DBPort,
			c.DBUser,
			c.DBPassword,
			c.DBName,
		), nil
	case DriverSQLite:
		if c.DBPath == "" {
			return "", fmt.Errorf("DB_PATH is not defined in environment variables")
		}
		return c.DBPath, nil
	default:
		return "", fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnvBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}
