package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadForTest(t *testing.T) *Config {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	return cfg
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := loadForTest(t)

	assert.Equal(t, "5000", cfg.App.HTTPPort)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 72, cfg.Auth.TokenTTLHrs)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, 300, cfg.Redis.CacheTTL)
	assert.Equal(t, "notes-service", cfg.Logger.ServiceName)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("DB_NAME", "notes_test")
	t.Setenv("JWT_SECRET", "supersecret")

	cfg := loadForTest(t)

	assert.Equal(t, "8081", cfg.App.HTTPPort)
	assert.Equal(t, "notes_test", cfg.DB.Name)
	assert.Equal(t, "supersecret", cfg.Auth.JWTSecret)
}

func TestValidate_RequiresSecretInProduction(t *testing.T) {
	cfg := loadForTest(t)
	cfg.App.Environment = "production"
	cfg.Auth.JWTSecret = ""

	assert.Error(t, cfg.Validate())
}

func TestValidate_DevFallbackSecret(t *testing.T) {
	cfg := loadForTest(t)
	cfg.Auth.JWTSecret = ""

	require.NoError(t, cfg.Validate())
	assert.NotEmpty(t, cfg.Auth.JWTSecret)
}

func TestValidate_RejectsBadTTL(t *testing.T) {
	cfg := loadForTest(t)
	cfg.Auth.TokenTTLHrs = 0

	assert.Error(t, cfg.Validate())
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{
		Host: "db", Port: "5432", User: "u", Password: "p", Name: "notes", SSLMode: "disable",
	}
	assert.Equal(t, "host=db user=u password=p dbname=notes port=5432 sslmode=disable", db.DSN())
}
