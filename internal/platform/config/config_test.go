package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/ccl")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("CODE_MAX_ATTEMPTS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/ccl", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "SAR", cfg.DefaultCurrency)
	assert.Equal(t, 5, cfg.CodeMaxAttempts)
	assert.True(t, cfg.PreventNegativeTreasury)
	assert.True(t, cfg.PreventNegativeBank)
	assert.False(t, cfg.PayrollUnapproveReverses)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://erp.example.com, http://localhost:3000")
	t.Setenv("CODE_MAX_ATTEMPTS", "0")
	t.Setenv("DEFAULT_CURRENCY", "usd")
	t.Setenv("PREVENT_NEGATIVE_BANK", "false")
	t.Setenv("PAYROLL_UNAPPROVE_REVERSES", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://erp.example.com", "http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 5, cfg.CodeMaxAttempts)
	assert.Equal(t, "USD", cfg.DefaultCurrency)
	assert.False(t, cfg.PreventNegativeBank)
	assert.True(t, cfg.PayrollUnapproveReverses)
}
