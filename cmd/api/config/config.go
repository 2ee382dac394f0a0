package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	Environment    string
	SiteName       string
	SiteBaseURL    string
	ExportDir      string
	CORSMaxAge     time.Duration
}

// NewConfig reads the environment, falling back to the local defaults.
func NewConfig() *Config {
	return &Config{
		Port:           getEnv("PORT", "3000"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
		Environment:    getEnv("APP_ENV", "production"),
		SiteName:       getEnv("SITE_NAME", "vLLM Semantic Router"),
		SiteBaseURL:    os.Getenv("SITE_BASE_URL"),
		ExportDir:      getEnv("EXPORT_DIR", "build"),
		CORSMaxAge:     12 * time.Hour,
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
