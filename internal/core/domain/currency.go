package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/trackmint/transaction_tracker/internal/apperrors"
)

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary key (e.g., "USD")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
}

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// CurrencyRegistry is the immutable whitelist of supported currencies.
// It is built once at process start and passed into the components that
// need it; there is no mutable global state.
type CurrencyRegistry struct {
	currencies map[string]Currency
}

// NewCurrencyRegistry builds a registry from the given currency set.
func NewCurrencyRegistry(currencies []Currency) *CurrencyRegistry {
	byCode := make(map[string]Currency, len(currencies))
	for _, c := range currencies {
		byCode[c.CurrencyCode] = c
	}
	return &CurrencyRegistry{currencies: byCode}
}

// Normalize trims surrounding whitespace and uppercases a currency code.
func (r *CurrencyRegistry) Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate normalizes a currency code and checks it against the
// registry. The shape check (exactly three ASCII letters) always runs
// before the membership check, so malformed input never produces a
// misleading "unsupported" error.
func (r *CurrencyRegistry) Validate(code string) (string, error) {
	normalized := r.Normalize(code)
	if !currencyCodePattern.MatchString(normalized) {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidCurrencyFormat, code)
	}
	if _, ok := r.currencies[normalized]; !ok {
		return "", fmt.Errorf("%w: %s", apperrors.ErrUnsupportedCurrency, normalized)
	}
	return normalized, nil
}

// Contains reports whether the normalized code is in the registry.
func (r *CurrencyRegistry) Contains(code string) bool {
	_, ok := r.currencies[r.Normalize(code)]
	return ok
}

// List returns all supported currencies ordered by currency code.
func (r *CurrencyRegistry) List() []Currency {
	out := make([]Currency, 0, len(r.currencies))
	for _, c := range r.currencies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CurrencyCode < out[j].CurrencyCode })
	return out
}

// DefaultCurrencies returns the built-in currency whitelist. Only
// currencies with a conventional 2-decimal minor unit are included;
// the fixed storage scale assumes decimal subdivision.
func DefaultCurrencies() []Currency {
	return []Currency{
		{CurrencyCode: "AUD", Symbol: "A$", Name: "Australian Dollar"},
		{CurrencyCode: "BRL", Symbol: "R$", Name: "Brazilian Real"},
		{CurrencyCode: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
		{CurrencyCode: "CHF", Symbol: "Fr", Name: "Swiss Franc"},
		{CurrencyCode: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
		{CurrencyCode: "DKK", Symbol: "kr", Name: "Danish Krone"},
		{CurrencyCode: "EUR", Symbol: "€", Name: "Euro"},
		{CurrencyCode: "GBP", Symbol: "£", Name: "Pound Sterling"},
		{CurrencyCode: "HKD", Symbol: "HK$", Name: "Hong Kong Dollar"},
		{CurrencyCode: "INR", Symbol: "₹", Name: "Indian Rupee"},
		{CurrencyCode: "MXN", Symbol: "Mex$", Name: "Mexican Peso"},
		{CurrencyCode: "NOK", Symbol: "kr", Name: "Norwegian Krone"},
		{CurrencyCode: "NZD", Symbol: "NZ$", Name: "New Zealand Dollar"},
		{CurrencyCode: "PLN", Symbol: "zł", Name: "Polish Złoty"},
		{CurrencyCode: "SEK", Symbol: "kr", Name: "Swedish Krona"},
		{CurrencyCode: "SGD", Symbol: "S$", Name: "Singapore Dollar"},
		{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar"},
		{CurrencyCode: "ZAR", Symbol: "R", Name: "South African Rand"},
	}
}
