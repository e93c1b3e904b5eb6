package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("STRIPE_CURRENCY", "USD")
	t.Setenv("CLIENT_URL", "https://smart-home.example.com/")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, "smart_home_db", cfg.DatabaseName)
	assert.Equal(t, "usd", cfg.StripeCurrency)
	assert.Equal(t, "https://smart-home.example.com", cfg.ClientURL)
	assert.Equal(t, 10*time.Minute, cfg.ServiceCacheTTL)
	assert.True(t, cfg.AuditEnabled)
	assert.Equal(t, cfg.AppPort, AppConfig.AppPort)
}

func TestOrigins(t *testing.T) {
	cfg := &Config{AllowedOrigins: "https://a.example.com, https://b.example.com,"}
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Origins())

	empty := &Config{}
	assert.Equal(t, []string{"*"}, empty.Origins())
}
