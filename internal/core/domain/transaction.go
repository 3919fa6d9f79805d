package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// AmountPlaces is the number of decimal places an amount may carry.
const AmountPlaces = 2

// hasCentPrecision reports whether d needs no more than AmountPlaces decimals.
func hasCentPrecision(d decimal.Decimal) bool {
	return d.Equal(d.Round(AmountPlaces))
}

// MaxDescriptionLength is the longest description a transaction may carry.
const MaxDescriptionLength = 255

// Transaction is a single spend record.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Amount        decimal.Decimal `json:"amount"` // Positive spend magnitude
	Description   string          `json:"description" validate:"required,max=255"`
	Date          time.Time       `json:"date"`
	Category      Category        `json:"category" validate:"required,category"`
	AuditFields
}

// TimePrecision is the finest time resolution the stores keep.
const TimePrecision = time.Microsecond

// Normalize trims the description and moves the date to UTC at TimePrecision.
func (t *Transaction) Normalize() {
	t.Description = strings.TrimSpace(t.Description)
	t.Date = t.Date.UTC().Truncate(TimePrecision)
}

// Validate checks the invariants every stored transaction must satisfy.
func (t Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return apperrors.NewValidationError("amount must be greater than 0")
	}
	if !hasCentPrecision(t.Amount) {
		return apperrors.NewValidationError("amount must have at most %d decimal places", AmountPlaces)
	}
	if t.Date.IsZero() {
		return apperrors.NewValidationError("date is required")
	}
	return validateStruct(t)
}

// MaxPageSize caps a single page of listed transactions.
const MaxPageSize = 500

// TransactionCursor is the position of a transaction in the newest-first listing order.
type TransactionCursor struct {
	Date          time.Time
	CreatedAt     time.Time
	TransactionID string
}

// CursorOf returns the listing position of t.
func CursorOf(t Transaction) TransactionCursor {
	return TransactionCursor{Date: t.Date, CreatedAt: t.CreatedAt, TransactionID: t.TransactionID}
}

// TransactionFilter narrows FindTransactions. Nil fields do not filter.
// From and To are both inclusive. After resumes the listing strictly past a
// cursor and Limit > 0 caps the number of rows.
type TransactionFilter struct {
	From     *time.Time
	To       *time.Time
	Category *Category
	After    *TransactionCursor
	Limit    int
}

// MonthFilter returns a filter covering every instant of m.
func MonthFilter(m Month) TransactionFilter {
	from, to := m.Start(), m.End()
	return TransactionFilter{From: &from, To: &to}
}
