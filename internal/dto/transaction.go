package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/trackmint/transaction_tracker/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to create a transaction.
// The currency tag runs the registered 3-letter shape validator at bind
// time; the whitelist check happens in the service.
type CreateTransactionRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Currency string          `json:"currency" binding:"required,currency"`
}

// ListTransactionsParams defines query parameters for listing
// transactions. The defaults fill in omitted parameters before
// validation runs, so an explicit zero is rejected rather than
// silently replaced.
type ListTransactionsParams struct {
	Page    int `form:"page,default=1" binding:"min=1"`
	PerPage int `form:"perPage,default=10" binding:"min=1,max=50"`
}

// TransactionResponse defines the data returned for a transaction. The
// amount is the exact fixed-point decimal in major units.
type TransactionResponse struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"createdAt"`
}

// TransactionListResponse is one page of a user's transactions.
type TransactionListResponse struct {
	Items      []TransactionResponse `json:"items"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	PerPage    int                   `json:"perPage"`
	TotalPages int                   `json:"totalPages"`
}

// CurrencySummaryResponse is the aggregated total for one currency.
type CurrencySummaryResponse struct {
	Currency string          `json:"currency"`
	Total    decimal.Decimal `json:"total"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        txn.TransactionID,
		Amount:    txn.ToDecimal(),
		Currency:  txn.Currency,
		CreatedAt: txn.CreatedAt,
	}
}

// ToConversionResponse converts a domain.ConversionResult to a
// TransactionResponse carrying the original id and timestamp with the
// converted amount.
func ToConversionResponse(res *domain.ConversionResult) TransactionResponse {
	return TransactionResponse{
		ID:        res.TransactionID,
		Amount:    res.ToDecimal(),
		Currency:  res.Currency,
		CreatedAt: res.CreatedAt,
	}
}

// ToTransactionListResponse assembles one page of transactions.
// totalPages is ceil(total/perPage), or 0 when the user has no
// transactions at all. perPage has already passed validation by the
// time this runs; the guard keeps a bad caller from dividing by zero.
func ToTransactionListResponse(items []domain.Transaction, total int64, page, perPage int) TransactionListResponse {
	responses := make([]TransactionResponse, len(items))
	for i := range items {
		responses[i] = ToTransactionResponse(&items[i])
	}
	totalPages := 0
	if total > 0 && perPage > 0 {
		totalPages = int((total + int64(perPage) - 1) / int64(perPage))
	}
	return TransactionListResponse{
		Items:      responses,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}

// ToCurrencySummaryResponse converts the integer per-currency totals to
// their decimal representation.
func ToCurrencySummaryResponse(summaries []domain.CurrencySummary) []CurrencySummaryResponse {
	responses := make([]CurrencySummaryResponse, len(summaries))
	for i, s := range summaries {
		responses[i] = CurrencySummaryResponse{
			Currency: s.Currency,
			Total:    decimal.New(s.Total, -domain.UnitExponent),
		}
	}
	return responses
}
