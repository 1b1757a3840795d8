package config_test

import (
	"log/slog"
	"testing"

	"github.com/mfarghaly/bankbook/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(slog.Default(), "nonexistent.env")
	require.NoError(t, err)
	assert.Equal(t, "bankbook.db", cfg.DB.Path)
	assert.Equal(t, "2000", cfg.Bank.MinInitialBalance)
	assert.Equal(t, 12, cfg.Bank.BcryptCost)
	assert.Equal(t, "[bankbook]", cfg.Log.Prefix)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("BANKBOOK_DB_PATH", "/tmp/test.db")
	t.Setenv("BANKBOOK_BANK_MIN_INITIAL_BALANCE", "5000")

	cfg, err := config.Load(slog.Default(), "nonexistent.env")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", cfg.DB.Path)
	assert.Equal(t, "5000", cfg.Bank.MinInitialBalance)
}
