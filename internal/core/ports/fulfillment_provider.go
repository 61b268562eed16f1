package ports

import (
	"context"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/sales"
)

// ReturnFulfillmentItem is one line of a return fulfillment: the
// underlying line item and the quantity being sent back.
type ReturnFulfillmentItem struct {
	LineItem sales.LineItem
	Quantity int
}

// ReturnFulfillment is the request handed to the fulfillment provider
// when a return ships through a shipping method.
type ReturnFulfillment struct {
	ReturnID       kernel.UUID
	Items          []ReturnFulfillmentItem
	ShippingMethod sales.ShippingMethod
}

// FulfillmentProvider creates return fulfillments with an external
// shipping/logistics integration. The returned payload is opaque to the
// return lifecycle and stored verbatim as the return's shipping data.
type FulfillmentProvider interface {
	CreateReturn(ctx context.Context, fulfillment ReturnFulfillment) (map[string]any, error)
}
