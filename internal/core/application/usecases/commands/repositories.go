// Package commands contains business operations that modify return state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence. Every operation's reads and writes share one transaction
// that commits or rolls back as a whole.
package commands

import (
	"context"

	"returns/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each command depends only on the repositories it actually touches, so the
// narrow interfaces keep handler tests to small mocks.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ReturnRepoFactory provides access to the return repository within a transaction.
	ReturnRepoFactory interface {
		ReturnRepository() ports.ReturnRepository
	}

	// OrderReaderFactory provides access to the order reader within a transaction.
	OrderReaderFactory interface {
		OrderReader() ports.OrderReader
	}

	// LineItemRepoFactory provides access to the line item repository within a transaction.
	LineItemRepoFactory interface {
		LineItemRepository() ports.LineItemRepository
	}

	// ShippingRepoFactory provides access to the shipping repository within a transaction.
	ShippingRepoFactory interface {
		ShippingRepository() ports.ShippingRepository
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// ReturnUoW manages transactions for return-only operations (cancel, update).
	ReturnUoW interface {
		TxManager
		ReturnRepoFactory
	}

	// ReturnUoWFactory creates new return unit of work instances.
	ReturnUoWFactory interface {
		Create() ReturnUoW
	}

	// CreateReturnUoW manages transactions for return creation, which reads
	// line items and order context and may record a shipping method.
	CreateReturnUoW interface {
		TxManager
		ReturnRepoFactory
		OrderReaderFactory
		LineItemRepoFactory
		ShippingRepoFactory
	}

	// CreateReturnUoWFactory creates unit of work instances for return creation.
	CreateReturnUoWFactory interface {
		Create() CreateReturnUoW
	}

	// FulfillReturnUoW manages transactions for return fulfillment, which
	// resolves the return's shipping method and underlying line items.
	FulfillReturnUoW interface {
		TxManager
		ReturnRepoFactory
		LineItemRepoFactory
		ShippingRepoFactory
	}

	// FulfillReturnUoWFactory creates unit of work instances for return fulfillment.
	FulfillReturnUoWFactory interface {
		Create() FulfillReturnUoW
	}

	// ReceiveReturnUoW manages transactions for receiving a return, which
	// reconciles items, writes line item accounting, and adjusts inventory.
	ReceiveReturnUoW interface {
		TxManager
		ReturnRepoFactory
		OrderReaderFactory
		LineItemRepoFactory
		InventoryRepoFactory
	}

	// ReceiveReturnUoWFactory creates unit of work instances for receiving returns.
	ReceiveReturnUoWFactory interface {
		Create() ReceiveReturnUoW
	}
)
