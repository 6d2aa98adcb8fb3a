package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackmint/transaction_tracker/internal/apperrors"
	"github.com/trackmint/transaction_tracker/internal/core/domain"
)

func TestNewMoney_ScalesToUnits(t *testing.T) {
	testCases := []struct {
		name          string
		amount        string
		expectedUnits int64
	}{
		{name: "whole amount", amount: "100", expectedUnits: 1_000_000},
		{name: "two decimals", amount: "10.99", expectedUnits: 109_900},
		{name: "one decimal", amount: "5.5", expectedUnits: 55_000},
		{name: "smallest amount", amount: "0.01", expectedUnits: 100},
		{name: "rounds half away from zero", amount: "10.995", expectedUnits: 110_000},
		{name: "rounds down below half", amount: "10.994", expectedUnits: 109_900},
		{name: "large amount", amount: "922337203685477.58", expectedUnits: 9_223_372_036_854_775_800},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			money, err := domain.NewMoney(decimal.RequireFromString(tc.amount), "USD")
			require.NoError(t, err)
			assert.Equal(t, tc.expectedUnits, money.Amount)
			assert.Equal(t, "USD", money.Currency)
		})
	}
}

func TestNewMoney_RejectsNonPositive(t *testing.T) {
	for _, amount := range []string{"0", "-0.01", "-100"} {
		t.Run(amount, func(t *testing.T) {
			_, err := domain.NewMoney(decimal.RequireFromString(amount), "USD")
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidAmount))
		})
	}
}

func TestNewMoney_RejectsAmountBeyondInt64Range(t *testing.T) {
	// 1e19 scaled by 10^4 overflows int64; the constructor must reject
	// it rather than store a wrapped value.
	for _, amount := range []string{"10000000000000000000", "922337203685477.59", "1e30"} {
		t.Run(amount, func(t *testing.T) {
			_, err := domain.NewMoney(decimal.RequireFromString(amount), "USD")
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidAmount))
		})
	}
}

func TestMoney_ToDecimal_RoundTripsExactly(t *testing.T) {
	// Parsing and formatting must be lossless for 2-decimal amounts;
	// no binary floating point is involved anywhere.
	for _, amount := range []string{"10.99", "0.01", "100", "33333.33"} {
		t.Run(amount, func(t *testing.T) {
			money, err := domain.NewMoney(decimal.RequireFromString(amount), "EUR")
			require.NoError(t, err)
			assert.True(t, money.ToDecimal().Equal(decimal.RequireFromString(amount)),
				"expected %s, got %s", amount, money.ToDecimal())
		})
	}
}

func TestMoney_Add_SumsExactly(t *testing.T) {
	// The classic float trap: 10.99 + 20.01 + 5.50 + 3.50 must be
	// exactly 40.00, not 40.000000000000004.
	amounts := []string{"10.99", "20.01", "5.50", "3.50"}

	total := domain.MoneyFromUnits(0, "USD")
	for _, a := range amounts {
		money, err := domain.NewMoney(decimal.RequireFromString(a), "USD")
		require.NoError(t, err)
		total, err = total.Add(money)
		require.NoError(t, err)
	}

	assert.Equal(t, int64(400_000), total.Amount)
	assert.True(t, total.ToDecimal().Equal(decimal.RequireFromString("40.00")))
}

func TestMoney_Add_RejectsMixedCurrencies(t *testing.T) {
	usd, err := domain.NewMoney(decimal.RequireFromString("10"), "USD")
	require.NoError(t, err)
	eur, err := domain.NewMoney(decimal.RequireFromString("10"), "EUR")
	require.NoError(t, err)

	_, err = usd.Add(eur)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}
