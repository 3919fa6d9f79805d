package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeToken creates an opaque token from a transaction's listing position.
func EncodeToken(cursor domain.TransactionCursor) string {
	tokenStr := strings.Join([]string{
		cursor.Date.UTC().Format(timeFormat),
		cursor.CreatedAt.UTC().Format(timeFormat),
		cursor.TransactionID,
	}, "|")
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token produced by EncodeToken. Malformed tokens are
// validation errors since they come from the client.
func DecodeToken(token string) (domain.TransactionCursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return domain.TransactionCursor{}, invalid("base64 decode", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 3)
	if len(parts) != 3 || parts[2] == "" {
		return domain.TransactionCursor{}, invalid("split", nil)
	}

	date, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return domain.TransactionCursor{}, invalid("date parse", err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return domain.TransactionCursor{}, invalid("created_at parse", err)
	}

	return domain.TransactionCursor{
		Date:          date.UTC(),
		CreatedAt:     createdAt.UTC(),
		TransactionID: parts[2],
	}, nil
}

func invalid(stage string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: invalid pagination token (%s)", apperrors.ErrValidation, stage)
	}
	return fmt.Errorf("%w: invalid pagination token (%s): %v", apperrors.ErrValidation, stage, cause)
}
