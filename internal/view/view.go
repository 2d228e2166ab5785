// Package view computes display projections from the expense collection.
// Everything here is a pure function of its arguments, recomputed on every
// call: there is no cache to invalidate.
package view

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/setiawand/expensebuddy/internal/models"
)

var groupedPrinter = message.NewPrinter(language.English)

// Count returns the number of records in the collection.
func Count(expenses []models.Expense) int {
	return len(expenses)
}

// Total returns the arithmetic sum of all amounts; zero for an empty
// collection.
func Total(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, exp := range expenses {
		total = total.Add(exp.Amount)
	}
	return total
}

// Format renders an amount under the given display currency. Grouped
// currencies get the symbol, a space and a thousands-grouped whole amount;
// decimal currencies get the symbol immediately followed by the amount
// fixed to two fractional digits. Unrecognized codes use the table's
// fallback entry.
func Format(amount decimal.Decimal, code string) string {
	c := models.CurrencyByCode(code)
	if c.Grouped {
		return c.Symbol + " " + groupedPrinter.Sprintf("%d", amount.Round(0).IntPart())
	}
	return c.Symbol + amount.StringFixed(2)
}

// Line renders one expense as a display row.
func Line(exp models.Expense, code string) string {
	return fmt.Sprintf("%s - %s", exp.Description, Format(exp.Amount, code))
}

// Summary renders the running count and total for the collection.
func Summary(expenses []models.Expense, code string) string {
	return fmt.Sprintf("%d expenses, total %s", Count(expenses), Format(Total(expenses), code))
}
