package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "DB_HOST", "DB_PORT", "PORT", "LOG_DIR", "ADMIN_API_KEY", "DB_PATH", "DB_AUTO_MIGRATE"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "./logs", cfg.LogDir)
	assert.Equal(t, "", cfg.AdminAPIKey)
	assert.False(t, cfg.DBAutoMigrate)
	assert.Equal(t, ":3001", cfg.Addr())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "secret")
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", DriverSQLite)
	t.Setenv("DB_PATH", "/tmp/x.db")
	t.Setenv("DB_AUTO_MIGRATE", "true")

	cfg := LoadConfig()
	assert.Equal(t, "secret", cfg.AdminAPIKey)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.True(t, cfg.DBAutoMigrate)

	dsn, err := cfg.DSN()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", dsn)
}

func TestDSN(t *testing.T) {
	cfg := Config{DBDriver: DriverPostgres, DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "spotlight"}
	dsn, err := cfg.DSN()
	require.NoError(t, err)
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=spotlight sslmode=disable", dsn)

	_, err = Config{DBDriver: DriverPostgres}.DSN()
	assert.Error(t, err)

	_, err = Config{DBDriver: "mongo"}.DSN()
	assert.Error(t, err)
}
