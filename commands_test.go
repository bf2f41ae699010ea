package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCommandSQLite(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "agent.db") + "?mode=rwc"
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", dsn)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "console")

	require.NoError(t, runMigrate(migrateCmd, nil))
}

func TestMigrateCommandUnknownDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "cassandra")
	t.Setenv("LOG_LEVEL", "error")

	assert.Error(t, runMigrate(migrateCmd, nil))
}

func TestSetupRejectsBadLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")

	_, err := setup()
	assert.Error(t, err)
}

func TestRootCommandWiring(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
}
