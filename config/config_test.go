package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowfinance/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, config.CacheMemory, cfg.Cache.Driver)
	assert.Equal(t, time.Hour, cfg.Cache.Redis.TTL)
	assert.Equal(t, 0.16, cfg.Note.RetentionRate)
	assert.Equal(t, []float64{75, 5}, cfg.Note.InitialFees)
	assert.Equal(t, []float64{80, 70, 62.35}, cfg.Note.DelayFees)
	assert.Equal(t, 120.0, cfg.Note.DelayRateDays)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
server:
  addr: ":9090"
cache:
  driver: redis
  redis:
    addr: "redis:6379"
    ttl: 5m
note:
  retentionRate: 0.1
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flowfinance.yaml"), yaml, 0o600))
	t.Setenv("FLOWFINANCE_SERVER_ADDR", ":7070")

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, config.CacheRedis, cfg.Cache.Driver)
	assert.Equal(t, "redis:6379", cfg.Cache.Redis.Addr)
	assert.Equal(t, 5*time.Minute, cfg.Cache.Redis.TTL)
	assert.Equal(t, 0.1, cfg.Note.RetentionRate)
	assert.Equal(t, []float64{30, 7}, cfg.Note.FinalFees)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flowfinance.yaml"), []byte("cache:\n  driver: memcached\n"), 0o600))

	_, err := config.LoadConfig(dir)
	assert.ErrorContains(t, err, "unknown cache driver")
}
