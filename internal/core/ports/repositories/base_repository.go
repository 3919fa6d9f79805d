package repositories

import (
	"context"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	// Ping returns apperrors.ErrStorageUnavailable when the store cannot be reached.
	Ping(ctx context.Context) error
}
