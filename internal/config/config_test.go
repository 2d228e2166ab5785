package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads all config from env", func(t *testing.T) {
		t.Setenv("EXPENSE_API_URL", "https://expenses.example.com")
		t.Setenv("HTTP_TIMEOUT_SECONDS", "5")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("DISPLAY_CURRENCY", "IDR")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "https://expenses.example.com", cfg.APIBaseURL)
		require.Equal(t, 5*time.Second, cfg.HTTPTimeout())
		require.Equal(t, "debug", cfg.LogLevel)
		require.Equal(t, "IDR", cfg.DisplayCurrency)
	})

	t.Run("defaults to the local development endpoint", func(t *testing.T) {
		t.Setenv("EXPENSE_API_URL", "")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "http://localhost:8004", cfg.APIBaseURL)
		require.Equal(t, 10*time.Second, cfg.HTTPTimeout())
		require.Equal(t, "USD", cfg.DisplayCurrency)
	})

	t.Run("normalizes the display currency", func(t *testing.T) {
		t.Setenv("DISPLAY_CURRENCY", "  idr ")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "IDR", cfg.DisplayCurrency)
	})

	t.Run("falls back to USD for unsupported currency", func(t *testing.T) {
		t.Setenv("DISPLAY_CURRENCY", "DOGE")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "USD", cfg.DisplayCurrency)
	})

	t.Run("rejects an unparseable base URL", func(t *testing.T) {
		t.Setenv("EXPENSE_API_URL", "not a url")

		_, err := Load()
		require.Error(t, err)
		require.Contains(t, err.Error(), "EXPENSE_API_URL")
	})

	t.Run("rejects a non-positive timeout", func(t *testing.T) {
		t.Setenv("HTTP_TIMEOUT_SECONDS", "0")

		_, err := Load()
		require.Error(t, err)
		require.Contains(t, err.Error(), "HTTP_TIMEOUT_SECONDS")
	})
}
