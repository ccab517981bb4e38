package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvProduction = "production"
	EnvLocal      = "local"

	DefaultLocalOrigin = "http://127.0.0.1:5173"
)

type Config struct {
	Env         string
	Port        string
	DBPath      string
	LocalOrigin string

	// Log configuration
	LogLevel      string
	LogFilename   string
	LogMaxSize    int
	LogMaxBackups int
	LogMaxAge     int
	LogCompress   bool
}

// IsProduction reports whether the production CORS policy applies.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		// Ignore error if .env file is not found
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return &Config{
		Env:         getEnv("ENV", EnvLocal),
		Port:        getEnv("PORT", "8080"),
		DBPath:      getEnv("DB_PATH", "data/prompts.db"),
		LocalOrigin: getEnv("CORS_LOCAL_ORIGIN", DefaultLocalOrigin),

		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		LogFilename:   getEnv("LOG_FILENAME", "logs/app.log"),
		LogMaxSize:    getEnvAsInt("LOG_MAX_SIZE", 100),
		LogMaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
		LogMaxAge:     getEnvAsInt("LOG_MAX_AGE", 28),
		LogCompress:   getEnvAsBool("LOG_COMPRESS", true),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}
