// Package sales holds read models of the order-side data the return
// lifecycle consumes from its collaborator services: orders, line items,
// swaps, and shipping options. These are plain data carriers, not
// aggregates: their lifecycle is owned elsewhere and this service only
// reads them (and writes back a line item's returned quantity through
// the line item port).
package sales

import (
	"time"

	"returns/internal/core/domain/model/kernel"
)

// Order is the slice of an order the return rules need: totals for refund
// computation, the tax rate for shipping deduction, and the item pool
// (own items plus every swap's additional items) return lines are matched
// against.
type Order struct {
	ID               kernel.UUID
	Total            int64
	RefundedTotal    int64
	RefundableAmount int64
	TaxRate          float64
	CanceledAt       *time.Time
	Items            []LineItem
	Swaps            []Swap
}

// ItemPool merges the order's own line items with the additional items of
// all its swaps. Requested return lines are matched against this pool.
func (o Order) ItemPool() []LineItem {
	pool := make([]LineItem, 0, len(o.Items))
	pool = append(pool, o.Items...)
	for _, swap := range o.Swaps {
		pool = append(pool, swap.AdditionalItems...)
	}
	return pool
}

// LineItem is a purchasable line of an order or swap. ReturnedQuantity
// accumulates across receives; Quantity-ReturnedQuantity bounds any new
// return request. The owner cancellation timestamps carry the context of
// the owning order, swap, or claim so eligibility checks can reject
// returns against canceled owners.
type LineItem struct {
	ID               kernel.UUID
	OrderID          *kernel.UUID
	SwapID           *kernel.UUID
	ClaimOrderID     *kernel.UUID
	VariantID        kernel.UUID
	Quantity         int
	ReturnedQuantity int
	UnitPrice        int64

	OrderCanceledAt *time.Time
	SwapCanceledAt  *time.Time
	ClaimCanceledAt *time.Time
}

// Returnable returns how many units of the line item may still be returned.
func (li LineItem) Returnable() int {
	return li.Quantity - li.ReturnedQuantity
}

// OwnerCanceled reports whether the owning order, swap, or claim of the
// line item has been canceled. Returns against such items are invalid.
func (li LineItem) OwnerCanceled() bool {
	return li.OrderCanceledAt != nil || li.SwapCanceledAt != nil || li.ClaimCanceledAt != nil
}

// Swap is an exchange transaction linked to an order. Its additional
// items join the order's item pool for return matching.
type Swap struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	CanceledAt      *time.Time
	AdditionalItems []LineItem
}

// ShippingOption is a configured return-shipping choice; Amount is its
// price in the smallest currency unit.
type ShippingOption struct {
	ID     kernel.UUID
	Amount int64
}

// ShippingMethod is a concrete shipping record created for a return from
// a shipping option. Data carries the option-specific payload.
type ShippingMethod struct {
	ID       kernel.UUID
	OptionID kernel.UUID
	ReturnID *kernel.UUID
	Price    int64
	Data     map[string]any
}
