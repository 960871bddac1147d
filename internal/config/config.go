package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces all environment variables, e.g. WALLET_PROFILE_ID.
const envPrefix = "wallet"

// Config holds all configurable parameters for the deep link resolver.
type Config struct {
	// Profile the navigation paths are built for
	ProfileID string `envconfig:"PROFILE_ID"`

	// Networks switched on in the profile (ids from the known network table)
	EnabledNetworks []string `envconfig:"ENABLED_NETWORKS"`

	// Wallets held by the profile, as COIN:network:address triples
	Wallets []string `envconfig:"WALLETS"`

	// Optional TOML file seeding the delegate registry
	DelegatesFile string `envconfig:"DELEGATES_FILE"`

	// Locale used for validation messages
	Locale string `envconfig:"LOCALE"`

	// Log level: debug, info, warn, error
	LogLevel string `envconfig:"LOG_LEVEL"`

	// Fractional digits of the coin's base unit
	AmountDecimals int `envconfig:"AMOUNT_DECIMALS"`
}

// WalletEntry is one parsed Wallets item.
type WalletEntry struct {
	Coin    string
	Network string
	Address string
}

// Default returns a Config populated with default values.
func Default() Config {
	return Config{
		ProfileID:       "default",
		EnabledNetworks: []string{"ark.mainnet", "ark.devnet"},
		Locale:          "en",
		LogLevel:        "info",
		AmountDecimals:  8,
	}
}

// FromEnv returns a Config populated from environment variables (and a .env
// file in the working directory, if present), falling back to defaults for
// unset values.
func FromEnv() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	return cfg, nil
}

// ParseWallets splits the Wallets entries.
func (c Config) ParseWallets() ([]WalletEntry, error) {
	entries := make([]WalletEntry, 0, len(c.Wallets))
	for _, w := range c.Wallets {
		parts := strings.Split(strings.TrimSpace(w), ":")
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return nil, fmt.Errorf("invalid wallet entry %q, want COIN:network:address", w)
		}
		entries = append(entries, WalletEntry{Coin: parts[0], Network: parts[1], Address: parts[2]})
	}
	return entries, nil
}

// SlogLevel returns the configured log level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
