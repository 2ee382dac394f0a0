package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ALLOWED_ORIGINS", "APP_ENV", "SITE_NAME", "SITE_BASE_URL", "EXPORT_DIR"} {
		t.Setenv(key, "")
	}

	cfg := NewConfig()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, "production", cfg.Environment)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "vLLM Semantic Router", cfg.SiteName)
	assert.Empty(t, cfg.SiteBaseURL)
	assert.Equal(t, "build", cfg.ExportDir)
	assert.Equal(t, 12*time.Hour, cfg.CORSMaxAge)
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("APP_ENV", "development")
	t.Setenv("SITE_BASE_URL", "https://vllm-semantic-router.com")

	cfg := NewConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "https://vllm-semantic-router.com", cfg.SiteBaseURL)
}
