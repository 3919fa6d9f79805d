package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	cursor := domain.TransactionCursor{
		Date:          time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:     time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC),
		TransactionID: "6f1c2a4e-0000-4000-8000-000000000001",
	}

	token := EncodeToken(cursor)
	assert.NotEmpty(t, token, "Token should not be empty")

	decoded, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, cursor, decoded)
}

func TestEncodeToken_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	local := time.Date(2024, 3, 1, 1, 0, 0, 0, loc)

	decoded, err := DecodeToken(EncodeToken(domain.TransactionCursor{Date: local, CreatedAt: local, TransactionID: "x"}))
	require.NoError(t, err)
	assert.True(t, decoded.Date.Equal(local))
	assert.Equal(t, time.UTC, decoded.Date.Location())
}

func TestDecodeTokenError(t *testing.T) {
	encode := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }

	cases := map[string]struct {
		token   string
		message string
	}{
		"not base64":       {"this is not base64!", "base64 decode"},
		"missing fields":   {encode("2023-05-15T00:00:00Z"), "split"},
		"empty id":         {encode("2023-05-15T00:00:00Z|2023-05-15T00:00:00Z|"), "split"},
		"bad date":         {encode("notadate|2023-05-15T00:00:00Z|id"), "date parse"},
		"bad created time": {encode("2023-05-15T00:00:00Z|notatime|id"), "created_at parse"},
	}
	for name, tc := range cases {
		_, err := DecodeToken(tc.token)
		assert.ErrorIs(t, err, apperrors.ErrValidation, name)
		assert.ErrorContains(t, err, tc.message, name)
	}
}
