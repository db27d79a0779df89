package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wisley56/Apontamento-de-Horas/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.App.Port)
	assert.Equal(t, "apontamento.db", cfg.Store.Path)
	assert.Equal(t, "SP", cfg.Engine.DefaultUF)
	assert.Equal(t, 8.0, cfg.Engine.ExpectedHours)
	assert.Equal(t, 2, cfg.Engine.ToleranceMinutes)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("EXPECTED_HOURS", "6.5")
	t.Setenv("TOLERANCE_MINUTES", "5")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, http://localhost:5173")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, 6.5, cfg.Engine.ExpectedHours)
	assert.Equal(t, 5, cfg.Engine.ToleranceMinutes)
	assert.Equal(t,
		[]string{"http://localhost:3000", "http://localhost:5173"},
		cfg.CORS.AllowedOrigins)
}

func TestLoad_InvalidNumbersError(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	_, err := config.Load()
	assert.Error(t, err)
}
