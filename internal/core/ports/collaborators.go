// Package ports defines the contracts between the return lifecycle core
// and its adapters: the return repository, the unit of work, and the
// capability interfaces of the collaborator services (orders, line items,
// shipping, fulfillment, inventory). The core never reaches past these
// interfaces; adapters implement them against the database or external
// providers.
package ports

import (
	"context"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/sales"
)

// OrderReader retrieves the order context a return is validated against:
// totals, tax rate, own items, and swaps with their additional items.
type OrderReader interface {
	// Get retrieves the order with its full item pool.
	Get(ctx context.Context, id kernel.UUID) (sales.Order, error)

	// GetBySwap resolves the order owning the given swap and retrieves it.
	// Used for swap-originated returns that carry no direct order reference.
	GetBySwap(ctx context.Context, swapID kernel.UUID) (sales.Order, error)
}

// LineItemRepository reads order/swap line items with their owning
// cancellation context and writes back the returned-quantity accounting.
type LineItemRepository interface {
	// Get retrieves a line item including the canceled-at timestamps of
	// its owning order, swap, or claim.
	Get(ctx context.Context, id kernel.UUID) (sales.LineItem, error)

	// ListByIDs retrieves the line items for the given ids in one query.
	ListByIDs(ctx context.Context, ids []kernel.UUID) ([]sales.LineItem, error)

	// SetReturnedQuantity overwrites the line item's returned quantity.
	// Callers read the current value first and write back the sum.
	SetReturnedQuantity(ctx context.Context, id kernel.UUID, quantity int) error
}

// ShippingRepository resolves return-shipping options and records
// shipping methods created for returns.
type ShippingRepository interface {
	// GetOption retrieves a shipping option, exposing its price.
	GetOption(ctx context.Context, id kernel.UUID) (sales.ShippingOption, error)

	// GetMethodByReturn retrieves the shipping method tagged to a return,
	// nil when the return has none.
	GetMethodByReturn(ctx context.Context, returnID kernel.UUID) (*sales.ShippingMethod, error)

	// AddMethod persists a shipping method record.
	AddMethod(ctx context.Context, method sales.ShippingMethod) error
}

// InventoryRepository adjusts variant stock when returned items are
// received back into the warehouse.
type InventoryRepository interface {
	// AdjustVariant adds quantity (may be negative) to the variant's
	// inventory level.
	AdjustVariant(ctx context.Context, variantID kernel.UUID, quantity int) error
}
