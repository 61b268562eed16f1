package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Every repository
// obtained from it is bound to the same transaction, so all reads and
// writes of one return operation commit or roll back atomically.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ReturnRepository returns a ReturnRepository bound to the current transaction.
	ReturnRepository() ReturnRepository

	// OrderReader returns an OrderReader bound to the current transaction.
	OrderReader() OrderReader

	// LineItemRepository returns a LineItemRepository bound to the current transaction.
	LineItemRepository() LineItemRepository

	// ShippingRepository returns a ShippingRepository bound to the current transaction.
	ShippingRepository() ShippingRepository

	// InventoryRepository returns an InventoryRepository bound to the current transaction.
	InventoryRepository() InventoryRepository
}
