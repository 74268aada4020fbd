package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Aviodata Traffic API", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.App.Port)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "airtraffic", cfg.Database.Name)

	assert.Contains(t, cfg.Dataset.ResourceURL, "data.gouv.fr")
	assert.True(t, cfg.Dataset.RefreshEnabled)
	assert.Equal(t, "0 30 4 * * *", cfg.Dataset.RefreshCron)
	assert.Equal(t, 24, cfg.Dataset.StaleMaxAge)
	assert.Equal(t, 2019, cfg.Dataset.BaselineYear)

	assert.Equal(t, "local", cfg.Storage.Mode)
	assert.Equal(t, "./snapshots", cfg.Storage.LocalBasePath)

	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 120, cfg.RateLimit.RequestsPerMinute)
	assert.Contains(t, cfg.RateLimit.WhitelistPaths, "/health")

	assert.True(t, cfg.Server.EnableSwagger)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENVIRONMENT", "staging")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATASET_RESOURCE_URL", "https://example.org/other.zip")
	t.Setenv("ADMIN_API_KEY", "test-admin-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "staging", cfg.App.Environment)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "https://example.org/other.zip", cfg.Dataset.ResourceURL)
	assert.Equal(t, "test-admin-key", cfg.ApiKey.Value)
}

func TestDatabaseConfig_ConnectionString(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "svc",
		Password: "secret",
		Name:     "airtraffic",
		SSLMode:  "require",
	}

	want := "host=db.internal port=5433 user=svc password=secret dbname=airtraffic sslmode=require"
	assert.Equal(t, want, d.ConnectionString())
}

func TestDurationHelpers(t *testing.T) {
	s := ServerConfig{ReadTimeout: 30, WriteTimeout: 45, RequestTimeout: 60}
	assert.Equal(t, 30*time.Second, s.ReadTimeoutDuration())
	assert.Equal(t, 45*time.Second, s.WriteTimeoutDuration())
	assert.Equal(t, 60*time.Second, s.RequestTimeoutDuration())

	d := DatasetConfig{FetchTimeout: 30, RefreshTimeout: 600, StaleMaxAge: 24}
	assert.Equal(t, 30*time.Second, d.FetchTimeoutDuration())
	assert.Equal(t, 10*time.Minute, d.RefreshTimeoutDuration())
	assert.Equal(t, 24*time.Hour, d.StaleMaxAgeDuration())
}
