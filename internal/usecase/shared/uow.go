package shared

import (
	"context"

	"stayhub/internal/infra/db"
)

// UnitOfWork scopes a read-check-write sequence to one database
// transaction. Booking creation relies on it to serialize the
// availability check and the insert for a listing.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}
