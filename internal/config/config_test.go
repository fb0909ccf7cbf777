package config

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "SESSION_STORE", "SESSION_TTL", "DEFAULT_LANGUAGE",
		"ASSISTANT_SEED", "CORS_ALLOWED_ORIGINS", "DATABASE_URL", "PG_DSN",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, StoreMemory, cfg.Session.Store)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "fr", cfg.Assistant.Language)
	assert.Zero(t, cfg.Assistant.Seed)
	assert.Empty(t, cfg.Warnings)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_STORE", "Redis")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("ASSISTANT_SEED", "42")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://immo.example ,")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, StoreRedis, cfg.Session.Store)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, int64(42), cfg.Assistant.Seed)
	assert.Equal(t, []string{"http://localhost:3000", "https://immo.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoadInvalidValues(t *testing.T) {
	t.Setenv("SESSION_STORE", "")
	t.Setenv("SERVER_PORT", "eighty")
	t.Setenv("SESSION_TTL", "forever")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Len(t, cfg.Warnings, 2)
}

func TestLoadUnknownStore(t *testing.T) {
	t.Setenv("SESSION_STORE", "mongo")

	_, err := Load()
	assert.ErrorContains(t, err, "unknown SESSION_STORE")
}

func TestGetPostgreSQLDSN(t *testing.T) {
	cfg := &Config{PostgreSQL: PostgreSQLConfig{
		Host: "db", Port: 5432, User: "immo", Password: "secret", Database: "assistant", SSLMode: "disable",
	}}
	assert.Equal(t, "host='db' port='5432' user='immo' password='secret' dbname='assistant' sslmode='disable'", cfg.GetPostgreSQLDSN())

	cfg.PostgreSQL.Password = ""
	assert.Contains(t, cfg.GetPostgreSQLDSN(), "password='' dbname='assistant'")

	cfg.PostgreSQL.Password = `it's a \ secret`
	assert.Contains(t, cfg.GetPostgreSQLDSN(), `password='it\'s a \\ secret'`)
	assert.NotContains(t, cfg.GetPostgreSQLDSN(), "?")

	_, err := pq.NewConnector(cfg.GetPostgreSQLDSN())
	assert.NoError(t, err)

	cfg.PostgreSQL.DSN = "postgres://immo@db/assistant"
	assert.Equal(t, "postgres://immo@db/assistant", cfg.GetPostgreSQLDSN())
}
