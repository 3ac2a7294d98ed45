package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string

	// Remote persistence is optional; absence of the URL disables it.
	DatabaseURL string

	RedisURL string

	// HubSpot is optional; both identifiers must be present to submit.
	HubSpotPortalID string
	HubSpotFormGUID string

	// External resource opened by the results page's recommendations action.
	RecommendationsURL string

	Events EventConfig
}

func LoadConfig() (*Config, error) {
	// .env is optional outside development
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379"),
		HubSpotPortalID: getEnv("HUBSPOT_PORTAL_ID", ""),
		HubSpotFormGUID: getEnv("HUBSPOT_FORM_GUID", ""),
		RecommendationsURL: getEnv("RECOMMENDATIONS_URL",
			"https://www.ndevr.io/website-fragility-audit/?utm_term=manufacturing&utm_source=landing&utm_content=readiness-assessment-quiz&utm_campaign=mdf-august-2025"),
		Events: EventConfig{
			Enabled:      getEnv("EVENTS_ENABLED", "false") == "true",
			Publisher:    getEnv("EVENTS_PUBLISHER", "kafka"),
			KafkaBrokers: getEnv("KAFKA_BROKERS", "localhost:9092"),
			Topic:        getEnv("EVENTS_TOPIC", "assessment-events"),
		},
	}, nil
}

// RemoteStoreEnabled reports whether the relational backend is configured.
func (c *Config) RemoteStoreEnabled() bool {
	return c.DatabaseURL != ""
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
