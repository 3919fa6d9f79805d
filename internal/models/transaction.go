package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persisted shape of a spend record.
type Transaction struct {
	TransactionID string          `db:"transaction_id"` // Primary Key (UUID)
	Amount        decimal.Decimal `db:"amount"`         // CHECK (amount > 0)
	Description   string          `db:"description"`    // At most 255 characters
	Date          time.Time       `db:"date"`           // Stored in UTC
	Category      string          `db:"category"`       // CHECK category IN (...)
	AuditFields
}
