package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestExpense(t *testing.T) {
	t.Parallel()

	t.Run("decodes server payload", func(t *testing.T) {
		t.Parallel()
		payload := `{"id":"9f1c2a","description":"Coffee","amount":5.5,"date":"2026-08-01"}`

		var exp Expense
		require.NoError(t, json.Unmarshal([]byte(payload), &exp))
		require.Equal(t, "9f1c2a", exp.ID)
		require.Equal(t, "Coffee", exp.Description)
		require.Equal(t, decimal.RequireFromString("5.5"), exp.Amount)
		require.Equal(t, "2026-08-01", exp.Date)
	})
}

func TestCurrencyByCode(t *testing.T) {
	t.Parallel()

	t.Run("returns matching entry", func(t *testing.T) {
		t.Parallel()
		c := CurrencyByCode("IDR")
		require.Equal(t, "Rp", c.Symbol)
		require.True(t, c.Grouped)
	})

	t.Run("falls back to first entry for unknown code", func(t *testing.T) {
		t.Parallel()
		c := CurrencyByCode("XXX")
		require.Equal(t, Currencies[0], c)
		require.Equal(t, "USD", c.Code)
	})

	t.Run("default code has a table entry", func(t *testing.T) {
		t.Parallel()
		require.True(t, IsSupportedCurrency(DefaultCurrencyCode))
		require.False(t, IsSupportedCurrency("sgd"))
	})
}
