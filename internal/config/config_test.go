package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "default", cfg.ProfileID)
	assert.Equal(t, []string{"ark.mainnet", "ark.devnet"}, cfg.EnabledNetworks)
	assert.Equal(t, 8, cfg.AmountDecimals)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("WALLET_PROFILE_ID", "p-1")
	t.Setenv("WALLET_ENABLED_NETWORKS", "ark.devnet")
	t.Setenv("WALLET_WALLETS", "ARK:ark.devnet:D61mfSggzbvQgTUe6JhYKH2doHaqJ3Dyib")
	t.Setenv("WALLET_LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "p-1", cfg.ProfileID)
	assert.Equal(t, []string{"ark.devnet"}, cfg.EnabledNetworks)
	assert.Equal(t, "en", cfg.Locale)

	wallets, err := cfg.ParseWallets()
	require.NoError(t, err)
	require.Len(t, wallets, 1)
	assert.Equal(t, WalletEntry{Coin: "ARK", Network: "ark.devnet", Address: "D61mfSggzbvQgTUe6JhYKH2doHaqJ3Dyib"}, wallets[0])

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestFromEnv_InvalidValue(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("WALLET_AMOUNT_DECIMALS", "eight")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestParseWallets_Invalid(t *testing.T) {
	cfg := Default()
	cfg.Wallets = []string{"ARK:ark.devnet"}
	_, err := cfg.ParseWallets()
	assert.Error(t, err)
}

func TestSlogLevel_Invalid(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "loud"
	_, err := cfg.SlogLevel()
	assert.Error(t, err)
}
