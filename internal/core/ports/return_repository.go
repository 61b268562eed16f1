package ports

import (
	"context"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/orderreturn"
)

// ReturnRepository defines the persistence contract for return aggregates.
// The repository owns the return's item collection: saving a return
// cascades to its items.
type ReturnRepository interface {
	// Add persists a new return aggregate with its items.
	Add(ctx context.Context, aggregate *orderreturn.Return) error

	// Update persists changes to an existing return aggregate, replacing
	// its item collection with the aggregate's current one.
	Update(ctx context.Context, aggregate *orderreturn.Return) error

	// Get retrieves a return by its unique identifier, items included.
	// Fails with an object-not-found error when no record exists.
	Get(ctx context.Context, id kernel.UUID) (*orderreturn.Return, error)

	// GetBySwap retrieves the return originated by the given swap.
	// Fails with an object-not-found error when no record exists.
	GetBySwap(ctx context.Context, swapID kernel.UUID) (*orderreturn.Return, error)
}
