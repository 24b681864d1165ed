package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViperDefaults(t *testing.T) {
	cfg, err := FromViper(NewViper())
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, DefaultGeminiModel, cfg.GeminiModel)
	assert.True(t, cfg.AllowAllOrigins())
}

func TestFromViperOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("API_TOKEN", "s3cret")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:5173, https://portal.example.edu")

	cfg, err := FromViper(NewViper())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "s3cret", cfg.APIToken)
	assert.Equal(t, []string{"http://localhost:5173", "https://portal.example.edu"}, cfg.CORSOrigins)
	assert.False(t, cfg.AllowAllOrigins())
}

func TestFromViperRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	_, err := FromViper(NewViper())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
