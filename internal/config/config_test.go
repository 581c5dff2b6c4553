package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-roi/internal/config/configs"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(5000), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, configs.SourceFile, cfg.Dataset.Source)
	assert.Equal(t, "data-1.csv", cfg.Dataset.SalesPath)
	assert.Equal(t, "data-2.csv", cfg.Dataset.CampaignsPath)
	assert.Equal(t, uint64(42), cfg.Seed.Value)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("DATASET_SOURCE", " Postgres ")
	t.Setenv("DATASET_SALES_PATH", "/data/sales.xlsx")
	t.Setenv("PSQL_MAX_CONNS", "8")
	t.Setenv("SEED_SALES", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8081), cfg.HTTP.Port)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, configs.SourcePostgres, cfg.Dataset.Source)
	assert.Equal(t, "/data/sales.xlsx", cfg.Dataset.SalesPath)
	assert.Equal(t, int32(8), cfg.Psql.MaxConns)
	assert.Equal(t, 50, cfg.Seed.Sales)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("source", func(t *testing.T) {
		t.Setenv("DATASET_SOURCE", "s3")
		_, err := Load()
		require.Error(t, err)
	})
	t.Run("port", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "not-a-port")
		_, err := Load()
		require.Error(t, err)
	})
}
