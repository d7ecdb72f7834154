// Env loader
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv     string
	Port       string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSchema   string
	// GeminiAPIKey may be empty; generation then serves the bundled
	// fallback devotion instead of calling the model.
	GeminiAPIKey string
	GenAIModel   string
	// Anchor for the daily chapter rotation.
	StartChapter int
	StartDate    string
}

// LoadConfig loads environment variables from the .env file
func LoadConfig() *Config {

	appEnv := os.Getenv("APP_ENV")

	switch appEnv {
	case "production":
		if err := godotenv.Load(".env.production"); err == nil {
			fmt.Println("Loaded .env.production")
		}
	default:
		if err := godotenv.Load(".env.development"); err == nil {
			fmt.Println("Loaded .env.development")
		}
	}

	cfg := &Config{
		AppEnv:       getEnv("APP_ENV", "development"),
		Port:         getEnv("PORT", "8080"),
		DBHost:       getEnv("DB_HOST", ""),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBName:       getEnv("DB_DATABASE", "church_companion"),
		DBUser:       getEnv("DB_USERNAME", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", ""),
		DBSchema:     getEnv("DB_SCHEMA", "public"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GenAIModel:   getEnv("GENAI_MODEL", "gemini-2.0-flash"),
		StartChapter: 67,
		StartDate:    getEnv("DEVOTION_START_DATE", "2025-07-18"),
	}

	return cfg
}

// HasDatabase reports whether storage credentials were configured.
// The app still runs without them: generation works, persistence
// endpoints answer with a configuration error.
func (c *Config) HasDatabase() bool {
	return c.DBHost != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetAppEnv() string {
	if value, exists := os.LookupEnv("APP_ENV"); exists {
		return value
	}
	return "development"
}
