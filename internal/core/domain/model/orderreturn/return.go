package orderreturn

import (
	"errors"
	"time"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/pkg/errs"
)

var (
	// ErrReturnIsNotConstructed is returned when a Return instance was not
	// created through NewReturn or RestoreReturn. This ensures all returns
	// are properly validated.
	ErrReturnIsNotConstructed = errors.New("Return must be created via NewReturn or RestoreReturn")
)

// Return represents a customer's request to send items back on an order
// or exchange. It is the aggregate root owning its ReturnItem collection
// and the single place the return status machine is enforced.
//
// Return follows these invariants:
//   - Must reference an order or a swap (or both for swap-originated returns)
//   - Must contain at least one item
//   - Once Canceled, no further mutation (update/fulfill/receive) is permitted
//   - Once Received, a second receive is rejected
//   - RefundAmount is a non-negative integer in the smallest currency unit
//
// ShippingData stays nil until a fulfillment is created for the return;
// it then carries the opaque payload of the fulfillment provider.
type Return struct {
	id             kernel.UUID
	orderID        *kernel.UUID
	swapID         *kernel.UUID
	status         Status
	refundAmount   kernel.Money
	shippingData   map[string]any
	receivedAt     *time.Time
	noNotification bool
	metadata       map[string]any
	items          []*ReturnItem
	createdAt      time.Time

	isConstructed bool
}

// Update is a partial mutation of a Return. Nil fields are left untouched;
// Metadata is merged rather than replaced (new keys override, existing
// keys without a new value are preserved).
type Update struct {
	Metadata       map[string]any
	NoNotification *bool
	RefundAmount   *kernel.Money
}

// ReceivedLine is one line of a receive operation: how many units of a
// line item actually arrived at the warehouse.
type ReceivedLine struct {
	ItemID   kernel.UUID
	Quantity int
}

// NewReturn creates a new Return in Requested status.
//
// Either orderID or swapID must be set; swap-originated returns may leave
// orderID nil. The items slice must contain at least one requested line.
func NewReturn(
	id kernel.UUID,
	orderID *kernel.UUID,
	swapID *kernel.UUID,
	refundAmount kernel.Money,
	noNotification bool,
	items []*ReturnItem,
) (*Return, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if orderID == nil && swapID == nil {
		return nil, errs.NewValueIsRequiredError("order_id or swap_id")
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
	}
	if swapID != nil {
		if err := swapID.Validate(); err != nil {
			return nil, err
		}
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Return{
		id:             id,
		orderID:        orderID,
		swapID:         swapID,
		status:         Requested,
		refundAmount:   refundAmount,
		noNotification: noNotification,
		items:          items,
		createdAt:      time.Now().UTC(),
		isConstructed:  true,
	}, nil
}

// RestoreReturn reconstructs a Return from persistence.
func RestoreReturn(
	id kernel.UUID,
	orderID *kernel.UUID,
	swapID *kernel.UUID,
	status Status,
	refundAmount kernel.Money,
	shippingData map[string]any,
	receivedAt *time.Time,
	noNotification bool,
	metadata map[string]any,
	items []*ReturnItem,
	createdAt time.Time,
) (*Return, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Return{
		id:             id,
		orderID:        orderID,
		swapID:         swapID,
		status:         status,
		refundAmount:   refundAmount,
		shippingData:   shippingData,
		receivedAt:     receivedAt,
		noNotification: noNotification,
		metadata:       metadata,
		items:          items,
		createdAt:      createdAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Return instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (r *Return) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReturnIsNotConstructed
	}
	return nil
}

// IsEqual compares two returns by their unique identifiers.
func (r *Return) IsEqual(other *Return) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the return's unique identifier.
func (r *Return) ID() kernel.UUID {
	return r.id
}

// OrderID returns the owning order's identifier, nil for swap-originated
// returns that carry only a swap reference.
func (r *Return) OrderID() *kernel.UUID {
	return r.orderID
}

// SwapID returns the originating swap's identifier, nil when the return
// was created directly against an order.
func (r *Return) SwapID() *kernel.UUID {
	return r.swapID
}

// Status returns the current status of the return.
func (r *Return) Status() Status {
	return r.status
}

// RefundAmount returns the refund amount in the smallest currency unit.
func (r *Return) RefundAmount() kernel.Money {
	return r.refundAmount
}

// ShippingData returns the opaque fulfillment payload, nil until fulfilled.
func (r *Return) ShippingData() map[string]any {
	return r.shippingData
}

// ReceivedAt returns when the return was received, nil until then.
func (r *Return) ReceivedAt() *time.Time {
	return r.receivedAt
}

// NoNotification reports whether notifications are suppressed for this return.
func (r *Return) NoNotification() bool {
	return r.noNotification
}

// Metadata returns the free-form metadata map, nil if none was ever set.
func (r *Return) Metadata() map[string]any {
	return r.metadata
}

// Items returns the return's line collection.
func (r *Return) Items() []*ReturnItem {
	return r.items
}

// CreatedAt returns the creation timestamp of the return.
func (r *Return) CreatedAt() time.Time {
	return r.createdAt
}

// Cancel transitions the return to Canceled.
//
// Business rule: a return whose items were already received cannot be
// canceled. Any other status, including an already-canceled return,
// passes through.
func (r *Return) Cancel() error {
	newStatus, err := r.status.Cancel()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// ApplyUpdate mutates the return with the given partial update.
// Fails with a not-allowed error once the return is canceled. Metadata
// is merged (new keys override, others are preserved); remaining fields
// are assigned verbatim when present.
func (r *Return) ApplyUpdate(update Update) error {
	if err := r.status.EnsureMutable(); err != nil {
		return err
	}

	if len(update.Metadata) > 0 {
		r.mergeMetadata(update.Metadata)
	}
	if update.NoNotification != nil {
		r.noNotification = *update.NoNotification
	}
	if update.RefundAmount != nil {
		r.refundAmount = *update.RefundAmount
	}

	return nil
}

// mergeMetadata merges patch into the return's metadata. New keys override,
// existing keys not present in the patch are preserved.
func (r *Return) mergeMetadata(patch map[string]any) {
	merged := make(map[string]any, len(r.metadata)+len(patch))
	for k, v := range r.metadata {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	r.metadata = merged
}

// AttachShippingData stores the fulfillment provider's payload on the return.
//
// Fails with a not-allowed error when the return is canceled or when a
// payload is already attached (duplicate fulfillment).
func (r *Return) AttachShippingData(data map[string]any) error {
	if err := r.status.EnsureMutable(); err != nil {
		return err
	}
	if r.shippingData != nil {
		return errs.NewOperationNotAllowedError("return has already been fulfilled")
	}

	r.shippingData = data
	return nil
}

// SetRefundAmount overrides the refund amount, e.g. with the value
// supplied at receive time.
func (r *Return) SetRefundAmount(amount kernel.Money) {
	r.refundAmount = amount
}

// EnsureReceivable verifies that a receive operation may start: the
// return must be neither canceled nor already received.
func (r *Return) EnsureReceivable() error {
	_, err := r.status.Receive(true)
	return err
}

// ItemByLineItem returns the return line referencing the given order/swap
// line item, or nil if none exists.
func (r *Return) ItemByLineItem(itemID kernel.UUID) *ReturnItem {
	for _, item := range r.items {
		if item.itemID.IsEqual(itemID) {
			return item
		}
	}
	return nil
}

// Receive reconciles the received lines against the requested items and
// transitions the status accordingly.
//
// For each received line, an existing item (matched by line item id) is
// reconciled in place: its quantity and received quantity take the
// received amount, the prior request is snapshotted, and the line is
// flagged as requested only when the two match. Lines without a matching
// item are appended as received-only items, which never count as
// requested.
//
// The resulting status is Received when every reconciled line matched its
// request, or when allowMismatch overrides the check; otherwise it is
// RequiresAction. The receive timestamp is recorded either way.
//
// Fails with a not-allowed error when the return is canceled or has
// already been received.
func (r *Return) Receive(lines []ReceivedLine, allowMismatch bool, at time.Time) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	// Validate the transition before touching any item so a rejected
	// receive leaves the aggregate unchanged.
	if _, err := r.status.Receive(true); err != nil {
		return err
	}

	matching := true
	for _, line := range lines {
		if item := r.ItemByLineItem(line.ItemID); item != nil {
			item.receive(line.Quantity)
			matching = matching && item.isRequested
			continue
		}

		item, err := NewReceivedOnlyItem(line.ItemID, line.Quantity)
		if err != nil {
			return err
		}
		r.items = append(r.items, item)
		matching = false
	}

	newStatus, err := r.status.Receive(matching || allowMismatch)
	if err != nil {
		return err
	}

	r.status = newStatus
	r.receivedAt = &at
	return nil
}
