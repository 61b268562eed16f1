package commands

import (
	"errors"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/orderreturn"
	"returns/internal/pkg/guard"
)

var ErrUpdateReturnCommandIsNotConstructed = errors.New(
	"UpdateReturnCommand must be created via NewUpdateReturnCommand constructor",
)

// UpdateReturnCommand represents a partial update of a return: metadata,
// the notification flag, and the refund amount. Fields left nil keep their
// current value; metadata is merged key by key rather than replaced.
type UpdateReturnCommand struct { //nolint:recvcheck //using for validation
	returnID       kernel.UUID
	metadata       map[string]any
	noNotification *bool
	refundAmount   *kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdateReturnCommand creates a command to update the given return.
// A non-nil refundAmount must not be negative.
func NewUpdateReturnCommand(
	returnID kernel.UUID,
	metadata map[string]any,
	noNotification *bool,
	refundAmount *int64,
) (UpdateReturnCommand, error) {
	updateCommand := UpdateReturnCommand{
		metadata:       metadata,
		noNotification: noNotification,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setReturnID(returnID),
		updateCommand.setRefundAmount(refundAmount),
	); err != nil {
		return UpdateReturnCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateReturnCommandIsNotConstructed if validation fails.
func (c UpdateReturnCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReturnCommandIsNotConstructed)
}

// ReturnID returns the identifier of the return to update.
func (c UpdateReturnCommand) ReturnID() kernel.UUID {
	return c.returnID
}

// ToUpdate converts the command into the aggregate's partial update form.
func (c UpdateReturnCommand) ToUpdate() orderreturn.Update {
	return orderreturn.Update{
		Metadata:       c.metadata,
		NoNotification: c.noNotification,
		RefundAmount:   c.refundAmount,
	}
}

func (c *UpdateReturnCommand) setReturnID(returnID kernel.UUID) error {
	if err := returnID.Validate(); err != nil {
		return err
	}

	c.returnID = returnID
	return nil
}

func (c *UpdateReturnCommand) setRefundAmount(refundAmount *int64) error {
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
