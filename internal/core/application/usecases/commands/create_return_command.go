package commands

import (
	"errors"
	"fmt"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/orderreturn"
	"returns/internal/pkg/errs"
	"returns/internal/pkg/guard"
)

var ErrCreateReturnCommandIsNotConstructed = errors.New(
	"CreateReturnCommand must be created via NewCreateReturnCommand constructor",
)

// CreateReturnCommand represents a request to open a return against an
// order or a swap. Carries the requested lines, an optional return
// shipping choice, and an optional explicit refund override.
//
// Example:
//
//	cmd, err := NewCreateReturnCommand(&orderID, nil, lines,
//	    &shippingOptionID, nil, nil, false, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid return request: %w", err)
//	}
//
//	handler := NewCreateReturnCommandHandler(uowFactory)
//	ret, err := handler.Handle(ctx, cmd)
type CreateReturnCommand struct { //nolint:recvcheck //using for validation
	orderID          *kernel.UUID
	swapID           *kernel.UUID
	items            []orderreturn.RequestedLine
	shippingOptionID *kernel.UUID
	shippingPrice    *int64
	refundAmount     *kernel.Money
	noNotification   bool
	metadata         map[string]any

	guard guard.ConstructorGuard
}

// NewCreateReturnCommand creates a command to open a new return.
// At least one of orderID and swapID must be set, the item list must not
// be empty, and every quantity must be positive. shippingPrice overrides
// the shipping option's configured price when both are given; refundAmount
// skips the computed refund entirely.
func NewCreateReturnCommand(
	orderID *kernel.UUID,
	swapID *kernel.UUID,
	items []orderreturn.RequestedLine,
	shippingOptionID *kernel.UUID,
	shippingPrice *int64,
	refundAmount *int64,
	noNotification bool,
	metadata map[string]any,
) (CreateReturnCommand, error) {
	createCommand := CreateReturnCommand{
		noNotification: noNotification,
		metadata:       metadata,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		createCommand.setOrigin(orderID, swapID),
		createCommand.setItems(items),
		createCommand.setShipping(shippingOptionID, shippingPrice),
		createCommand.setRefundAmount(refundAmount),
	); err != nil {
		return CreateReturnCommand{}, err
	}

	return createCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateReturnCommandIsNotConstructed if validation fails.
func (c CreateReturnCommand) Validate() error {
	return c.guard.Validate(ErrCreateReturnCommandIsNotConstructed)
}

// OrderID returns the target order's identifier, nil for swap returns.
func (c CreateReturnCommand) OrderID() *kernel.UUID {
	return c.orderID
}

// SwapID returns the originating swap's identifier, nil for order returns.
func (c CreateReturnCommand) SwapID() *kernel.UUID {
	return c.swapID
}

// Items returns the requested return lines.
func (c CreateReturnCommand) Items() []orderreturn.RequestedLine {
	return c.items
}

// ShippingOptionID returns the chosen return shipping option, nil if the
// return ships without one.
func (c CreateReturnCommand) ShippingOptionID() *kernel.UUID {
	return c.shippingOptionID
}

// ShippingPrice returns the caller-supplied shipping price override.
func (c CreateReturnCommand) ShippingPrice() *int64 {
	return c.shippingPrice
}

// RefundAmount returns the explicit refund override, nil when the refund
// should be computed from the order.
func (c CreateReturnCommand) RefundAmount() *kernel.Money {
	return c.refundAmount
}

// NoNotification reports whether customer notifications are suppressed.
func (c CreateReturnCommand) NoNotification() bool {
	return c.noNotification
}

// Metadata returns the free-form metadata to store on the return.
func (c CreateReturnCommand) Metadata() map[string]any {
	return c.metadata
}

func (c *CreateReturnCommand) setOrigin(orderID, swapID *kernel.UUID) error {
	if orderID == nil && swapID == nil {
		return errs.NewValueIsRequiredError("order_id or swap_id")
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return err
		}
	}
	if swapID != nil {
		if err := swapID.Validate(); err != nil {
			return err
		}
	}

	c.orderID = orderID
	c.swapID = swapID
	return nil
}

func (c *CreateReturnCommand) setItems(items []orderreturn.RequestedLine) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.ItemID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity is invalid",
				fmt.Errorf("%d is not greater than 0", item.Quantity),
			)
		}
	}

	c.items = items
	return nil
}

func (c *CreateReturnCommand) setShipping(optionID *kernel.UUID, price *int64) error {
	if optionID == nil {
		c.shippingPrice = nil
		return nil
	}
	if err := optionID.Validate(); err != nil {
		return err
	}
	if price != nil && *price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipping price is invalid",
			fmt.Errorf("%d is negative", *price),
		)
	}

	c.shippingOptionID = optionID
	c.shippingPrice = price
	return nil
}

func (c *CreateReturnCommand) setRefundAmount(refundAmount *int64) error {
	if refundAmount == nil {
		return nil
	}

	money, err := kernel.NewMoney(*refundAmount)
	if err != nil {
		return err
	}

	c.refundAmount = &money
	return nil
}
