package models

import (
	"time"
)

// Transaction is the persisted trace of a successfully processed payment
type Transaction struct {
	ID             string    `json:"id"`
	RecipientEmail string    `json:"recipientEmail"`
	Amount         float64   `json:"amount"`
	Currency       Currency  `json:"currency"`
	Timestamp      time.Time `json:"timestamp"`
}

// TransactionRecord is the raw stored row. Currency and timestamp stay
// serialized so the listing flow can substitute defaults when a stored
// value no longer parses.
type TransactionRecord struct {
	ID             string  `db:"id"`
	RecipientEmail string  `db:"recipient_email"`
	Amount         float64 `db:"amount"`
	Currency       string  `db:"currency"`
	Timestamp      string  `db:"timestamp"`
}

// TransactionListResponse represents the GET /transactions response body
type TransactionListResponse struct {
	Success      bool          `json:"success"`
	Transactions []Transaction `json:"transactions"`
	Error        string        `json:"error,omitempty"`
}

// ToTransaction maps a stored record to the domain transaction,
// substituting the default currency and an epoch-zero timestamp when the
// stored values fail to parse. Corrupt records are included with
// defaults rather than dropped.
func (r TransactionRecord) ToTransaction() Transaction {
	ts, err := time.Parse(time.RFC3339Nano, r.Timestamp)
	if err != nil {
		ts = time.Unix(0, 0).UTC()
	}
	return Transaction{
		ID:             r.ID,
		RecipientEmail: r.RecipientEmail,
		Amount:         r.Amount,
		Currency:       CurrencyFromCodeOrDefault(r.Currency),
		Timestamp:      ts,
	}
}
