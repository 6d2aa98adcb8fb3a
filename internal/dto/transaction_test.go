package dto_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackmint/transaction_tracker/internal/core/domain"
	"github.com/trackmint/transaction_tracker/internal/dto"
)

func makeTransactions(n int, currency string) []domain.Transaction {
	txns := make([]domain.Transaction, n)
	for i := range txns {
		txns[i] = domain.Transaction{
			TransactionID: uuid.NewString(),
			UserID:        "user-1",
			Money:         domain.MoneyFromUnits(int64((i+1)*10_000), currency),
			CreatedAt:     time.Now().UTC(),
		}
	}
	return txns
}

func TestToTransactionListResponse_TotalPages(t *testing.T) {
	testCases := []struct {
		name          string
		total         int64
		perPage       int
		expectedPages int
	}{
		{name: "exact fit", total: 20, perPage: 10, expectedPages: 2},
		{name: "partial last page", total: 15, perPage: 10, expectedPages: 2},
		{name: "single page", total: 3, perPage: 10, expectedPages: 1},
		{name: "no transactions", total: 0, perPage: 10, expectedPages: 0},
		{name: "one item", total: 1, perPage: 50, expectedPages: 1},
		{name: "zero perPage does not divide", total: 15, perPage: 0, expectedPages: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := dto.ToTransactionListResponse(nil, tc.total, 1, tc.perPage)
			assert.Equal(t, tc.expectedPages, resp.TotalPages)
			assert.Equal(t, tc.total, resp.Total)
			assert.Equal(t, tc.perPage, resp.PerPage)
		})
	}
}

func TestToTransactionListResponse_ConvertsItems(t *testing.T) {
	txns := makeTransactions(3, "USD")

	resp := dto.ToTransactionListResponse(txns, 3, 1, 10)

	require.Len(t, resp.Items, 3)
	assert.Equal(t, txns[0].TransactionID, resp.Items[0].ID)
	assert.True(t, resp.Items[0].Amount.Equal(decimal.RequireFromString("1")))
	assert.True(t, resp.Items[2].Amount.Equal(decimal.RequireFromString("3")))
}

func TestToTransactionResponse_ExactDecimalAmount(t *testing.T) {
	txn := &domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        "user-1",
		Money:         domain.MoneyFromUnits(109_900, "USD"),
		CreatedAt:     time.Now().UTC(),
	}

	resp := dto.ToTransactionResponse(txn)

	assert.Equal(t, "10.99", resp.Amount.String())
	assert.Equal(t, "USD", resp.Currency)
}

func TestToCurrencySummaryResponse_ScalesTotals(t *testing.T) {
	summaries := []domain.CurrencySummary{
		{Currency: "EUR", Total: 55_000},
		{Currency: "USD", Total: 400_000},
	}

	resp := dto.ToCurrencySummaryResponse(summaries)

	require.Len(t, resp, 2)
	assert.True(t, resp[0].Total.Equal(decimal.RequireFromString("5.50")))
	assert.True(t, resp[1].Total.Equal(decimal.RequireFromString("40.00")))
}
