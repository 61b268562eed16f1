package orderreturn

import (
	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/sales"
)

// RequestedLine is one line of a create or receive request before it has
// been matched against the order's item pool.
type RequestedLine struct {
	ItemID   kernel.UUID
	Quantity int
	ReasonID *kernel.UUID
	Note     string
}

// ResolvedLine is a requested line matched against the order's item pool.
// It carries the underlying line item so downstream steps (refund
// computation, inventory adjustment) can reach unit price and variant.
type ResolvedLine struct {
	Item     sales.LineItem
	Quantity int
	ReasonID *kernel.UUID
	Note     string
}
