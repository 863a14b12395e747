package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	JWTSecret   string
	MongoURI    string
	DBName      string
	SkipAuth    bool
	Environment string
	AppId       string

	// WarehouseDSN enables the Postgres mirror of transition history when set.
	WarehouseDSN string
	// SideEffectRetrySchedule is the cron spec for re-driving failed side effects.
	SideEffectRetrySchedule string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	return &Config{
		Port:                    getEnv("PORT", "8080"),
		JWTSecret:               getEnv("JWT_SECRET", "secret"),
		MongoURI:                getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:                  getEnv("DB_NAME", "go-legal"),
		SkipAuth:                getEnv("SKIP_AUTH", "false") == "true",
		Environment:             getEnv("ENVIRONMENT", "development"),
		AppId:                   getEnv("APP_ID", "go-legal"),
		WarehouseDSN:            getEnv("WAREHOUSE_DSN", ""),
		SideEffectRetrySchedule: getEnv("SIDE_EFFECT_RETRY_SCHEDULE", "@every 5m"),
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
