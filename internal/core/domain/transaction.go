package domain

import "time"

// Transaction is a single monetary transaction owned by one user.
// A transaction is never updated after creation.
type Transaction struct {
	TransactionID string `json:"transactionID"` // Primary key (UUID)
	UserID        string `json:"userID"`        // FK -> User.userID
	Money
	CreatedAt time.Time `json:"createdAt"` // Server-assigned at creation
}

// ConversionResult is the transient outcome of converting a
// transaction's amount into another currency. It carries the original
// transaction's id and creation timestamp with the converted amount;
// it is built fresh per request and never persisted.
type ConversionResult struct {
	TransactionID string
	Money
	CreatedAt time.Time
}

// CurrencySummary is the aggregated total of one user's transactions in
// a single currency. Total is in scale units, summed with integer
// arithmetic.
type CurrencySummary struct {
	Currency string `json:"currency"`
	Total    int64  `json:"total"`
}
