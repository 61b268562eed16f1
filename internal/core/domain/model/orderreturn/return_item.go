package orderreturn

import (
	"errors"
	"fmt"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/pkg/errs"
)

// ErrReturnItemIsNotConstructed is returned when a ReturnItem instance was
// not created through one of its constructor functions.
var ErrReturnItemIsNotConstructed = errors.New("ReturnItem must be created via NewReturnItem, NewReceivedOnlyItem, or RestoreReturnItem")

// ReturnItem is an entity owned by a Return. It records one line item the
// customer asked to send back and, after receiving, how many units actually
// arrived.
//
// Quantity holds the requested amount until the return is received, after
// which it holds the received amount and RequestedQuantity snapshots the
// prior request. IsRequested reports whether received equals requested;
// items that arrive without having been requested carry IsRequested false
// from the start.
type ReturnItem struct {
	itemID            kernel.UUID
	quantity          int
	requestedQuantity int
	receivedQuantity  int
	isRequested       bool
	reasonID          *kernel.UUID
	note              string
	noNotification    bool
	metadata          map[string]any

	isConstructed bool
}

// NewReturnItem creates a requested return line for the given order/swap
// line item. Quantity must be positive; reasonID and note are optional.
func NewReturnItem(
	itemID kernel.UUID,
	quantity int,
	reasonID *kernel.UUID,
	note string,
	noNotification bool,
) (*ReturnItem, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if reasonID != nil {
		if err := reasonID.Validate(); err != nil {
			return nil, err
		}
	}

	return &ReturnItem{
		itemID:            itemID,
		quantity:          quantity,
		requestedQuantity: quantity,
		isRequested:       true,
		reasonID:          reasonID,
		note:              note,
		noNotification:    noNotification,
		isConstructed:     true,
	}, nil
}

// NewReceivedOnlyItem creates a return line for an item that arrived
// without ever being requested. Such lines are always flagged as not
// requested, which forces the mismatch path unless an override is granted.
func NewReceivedOnlyItem(itemID kernel.UUID, received int) (*ReturnItem, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}
	if received <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"received quantity is invalid",
			fmt.Errorf("%d is not greater than 0", received),
		)
	}

	return &ReturnItem{
		itemID:           itemID,
		quantity:         received,
		receivedQuantity: received,
		isRequested:      false,
		isConstructed:    true,
	}, nil
}

// RestoreReturnItem reconstructs a ReturnItem from persistence.
// No business validation is applied beyond identifier checks; the stored
// state is assumed to have been valid when written.
func RestoreReturnItem(
	itemID kernel.UUID,
	quantity int,
	requestedQuantity int,
	receivedQuantity int,
	isRequested bool,
	reasonID *kernel.UUID,
	note string,
	noNotification bool,
	metadata map[string]any,
) (*ReturnItem, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	return &ReturnItem{
		itemID:            itemID,
		quantity:          quantity,
		requestedQuantity: requestedQuantity,
		receivedQuantity:  receivedQuantity,
		isRequested:       isRequested,
		reasonID:          reasonID,
		note:              note,
		noNotification:    noNotification,
		metadata:          metadata,
		isConstructed:     true,
	}, nil
}

// Validate ensures the ReturnItem was created through a constructor.
func (i *ReturnItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrReturnItemIsNotConstructed
	}
	return nil
}

// receive reconciles the line against the actually received quantity.
// The prior requested amount is snapshotted into requestedQuantity,
// quantity and receivedQuantity take the received amount, and isRequested
// records whether the two matched.
func (i *ReturnItem) receive(received int) {
	i.requestedQuantity = i.quantity
	i.quantity = received
	i.receivedQuantity = received
	i.isRequested = received == i.requestedQuantity
}

// ItemID returns the identifier of the underlying order/swap line item.
func (i *ReturnItem) ItemID() kernel.UUID {
	return i.itemID
}

// Quantity returns the current quantity: requested before receiving,
// received afterwards.
func (i *ReturnItem) Quantity() int {
	return i.quantity
}

// RequestedQuantity returns the originally requested quantity.
func (i *ReturnItem) RequestedQuantity() int {
	return i.requestedQuantity
}

// ReceivedQuantity returns the quantity that actually arrived, zero until
// the return is received.
func (i *ReturnItem) ReceivedQuantity() int {
	return i.receivedQuantity
}

// IsRequested reports whether the received quantity equals the requested one.
func (i *ReturnItem) IsRequested() bool {
	return i.isRequested
}

// ReasonID returns the optional return-reason reference.
func (i *ReturnItem) ReasonID() *kernel.UUID {
	return i.reasonID
}

// Note returns the customer-supplied note, empty if none.
func (i *ReturnItem) Note() string {
	return i.note
}

// NoNotification reports whether notifications are suppressed for this line.
func (i *ReturnItem) NoNotification() bool {
	return i.noNotification
}

// Metadata returns the free-form metadata of the line, nil if none.
func (i *ReturnItem) Metadata() map[string]any {
	return i.metadata
}
