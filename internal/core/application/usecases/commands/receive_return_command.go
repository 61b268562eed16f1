package commands

import (
	"errors"
	"fmt"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/orderreturn"
	"returns/internal/pkg/errs"
	"returns/internal/pkg/guard"
)

var ErrReceiveReturnCommandIsNotConstructed = errors.New(
	"ReceiveReturnCommand must be created via NewReceiveReturnCommand constructor",
)

// ReceiveReturnCommand represents the warehouse-side confirmation that a
// return's items arrived. The received lines are reconciled against the
// requested lines; mismatches flag the return for action unless
// allowMismatch overrides the check.
//
// Example:
//
//	cmd, err := NewReceiveReturnCommand(returnID, lines, nil, false)
//	if err != nil {
//	    return fmt.Errorf("invalid receive request: %w", err)
//	}
//
//	handler := NewReceiveReturnCommandHandler(uowFactory)
//	ret, err := handler.Handle(ctx, cmd)
//	if ret.Status() == orderreturn.RequiresAction {
//	    // received amounts differ from what was requested
//	}
type ReceiveReturnCommand struct { //nolint:recvcheck //using for validation
	returnID      kernel.UUID
	items         []orderreturn.ReceivedLine
	refundAmount  *kernel.Money
	allowMismatch bool

	guard guard.ConstructorGuard
}

// NewReceiveReturnCommand creates a command to receive the given return.
// The line list must not be empty and every quantity must be positive; a
// non-nil refundAmount overrides the return's stored refund.
func NewReceiveReturnCommand(
	returnID kernel.UUID,
	items []orderreturn.ReceivedLine,
	refundAmount *int64,
	allowMismatch bool,
) (ReceiveReturnCommand, error) {
	receiveCommand := ReceiveReturnCommand{
		allowMismatch: allowMismatch,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		receiveCommand.setReturnID(returnID),
		receiveCommand.setItems(items),
		receiveCommand.setRefundAmount(refundAmount),
	); err != nil {
		return ReceiveReturnCommand{}, err
	}

	return receiveCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReceiveReturnCommandIsNotConstructed if validation fails.
func (c ReceiveReturnCommand) Validate() error {
	return c.guard.Validate(ErrReceiveReturnCommandIsNotConstructed)
}

// ReturnID returns the identifier of the return being received.
func (c ReceiveReturnCommand) ReturnID() kernel.UUID {
	return c.returnID
}

// Items returns the received lines.
func (c ReceiveReturnCommand) Items() []orderreturn.ReceivedLine {
	return c.items
}

// RefundAmount returns the refund override, nil to keep the stored amount.
func (c ReceiveReturnCommand) RefundAmount() *kernel.Money {
	return c.refundAmount
}

// AllowMismatch reports whether quantity mismatches are accepted instead
// of flagging the return for action.
func (c ReceiveReturnCommand) AllowMismatch() bool {
	return c.allowMismatch
}

func (c *ReceiveReturnCommand) setReturnID(returnID kernel.UUID) error {
	if err := returnID.Validate(); err != nil {
		return err
	}

	c.returnID = returnID
	return nil
}

func (c *ReceiveReturnCommand) setItems(items []orderreturn.ReceivedLine) error {
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

func (c *ReceiveReturnCommand) setRefundAmount(refundAmount *int64) error {
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
