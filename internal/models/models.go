// Package models defines the domain entities for the ExpenseBuddy client.
package models

import (
	"github.com/shopspring/decimal"
)

// DefaultCurrencyCode is the display currency used when none is configured.
const DefaultCurrencyCode = "USD"

// Currency describes how amounts are rendered for one currency code.
// Grouped currencies have no meaningful fractional subunit and are shown
// with thousands grouping instead of two forced decimals.
type Currency struct {
	Code    string
	Symbol  string
	Grouped bool
}

// Currencies lists the supported display currencies. Order matters: the
// first entry is the fallback for unrecognized codes.
var Currencies = []Currency{
	{Code: "USD", Symbol: "$"},
	{Code: "EUR", Symbol: "€"},
	{Code: "GBP", Symbol: "£"},
	{Code: "SGD", Symbol: "S$"},
	{Code: "AUD", Symbol: "A$"},
	{Code: "INR", Symbol: "₹"},
	{Code: "JPY", Symbol: "¥", Grouped: true},
	{Code: "KRW", Symbol: "₩", Grouped: true},
	{Code: "IDR", Symbol: "Rp", Grouped: true},
	{Code: "VND", Symbol: "₫", Grouped: true},
}

// CurrencyByCode returns the display entry for code, falling back to the
// first table entry when the code is not recognized.
func CurrencyByCode(code string) Currency {
	for _, c := range Currencies {
		if c.Code == code {
			return c
		}
	}
	return Currencies[0]
}

// IsSupportedCurrency reports whether code has its own table entry.
func IsSupportedCurrency(code string) bool {
	for _, c := range Currencies {
		if c.Code == code {
			return true
		}
	}
	return false
}

// Expense represents a single expense entry as held by the remote store.
// ID and Date are assigned by the server at creation; an Expense is never
// mutated in place after it enters the local collection. The display
// currency is deliberately not part of the entity: amounts are stored as
// unitless numbers and re-labeled at render time.
type Expense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
}
