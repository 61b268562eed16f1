package commands

import (
	"errors"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/pkg/guard"
)

var ErrCancelReturnCommandIsNotConstructed = errors.New(
	"CancelReturnCommand must be created via NewCancelReturnCommand constructor",
)

// CancelReturnCommand represents a request to cancel a return.
// Cancellation is rejected once the return's items have been received.
//
// Example:
//
//	cmd, err := NewCancelReturnCommand(returnID)
//	if err != nil {
//	    return fmt.Errorf("invalid cancel request: %w", err)
//	}
//
//	handler := NewCancelReturnCommandHandler(uowFactory)
//	ret, err := handler.Handle(ctx, cmd)
type CancelReturnCommand struct { //nolint:recvcheck //using for validation
	returnID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelReturnCommand creates a command to cancel the given return.
// Validates that the return ID is a proper UUID.
func NewCancelReturnCommand(returnID kernel.UUID) (CancelReturnCommand, error) {
	cancelCommand := CancelReturnCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setReturnID(returnID); err != nil {
		return CancelReturnCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelReturnCommandIsNotConstructed if validation fails.
func (c CancelReturnCommand) Validate() error {
	return c.guard.Validate(ErrCancelReturnCommandIsNotConstructed)
}

// ReturnID returns the identifier of the return to cancel.
func (c CancelReturnCommand) ReturnID() kernel.UUID {
	return c.returnID
}

func (c *CancelReturnCommand) setReturnID(returnID kernel.UUID) error {
	if err := returnID.Validate(); err != nil {
		return err
	}

	c.returnID = returnID
	return nil
}
