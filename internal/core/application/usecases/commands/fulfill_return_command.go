package commands

import (
	"errors"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/pkg/guard"
)

var ErrFulfillReturnCommandIsNotConstructed = errors.New(
	"FulfillReturnCommand must be created via NewFulfillReturnCommand constructor",
)

// FulfillReturnCommand represents a request to create a return fulfillment
// with the external shipping provider. Returns without a shipping method
// skip fulfillment; a second fulfillment of the same return is rejected.
type FulfillReturnCommand struct { //nolint:recvcheck //using for validation
	returnID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFulfillReturnCommand creates a command to fulfill the given return.
func NewFulfillReturnCommand(returnID kernel.UUID) (FulfillReturnCommand, error) {
	fulfillCommand := FulfillReturnCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := fulfillCommand.setReturnID(returnID); err != nil {
		return FulfillReturnCommand{}, err
	}

	return fulfillCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFulfillReturnCommandIsNotConstructed if validation fails.
func (c FulfillReturnCommand) Validate() error {
	return c.guard.Validate(ErrFulfillReturnCommandIsNotConstructed)
}

// ReturnID returns the identifier of the return to fulfill.
func (c FulfillReturnCommand) ReturnID() kernel.UUID {
	return c.returnID
}

func (c *FulfillReturnCommand) setReturnID(returnID kernel.UUID) error {
	if err := returnID.Validate(); err != nil {
		return err
	}

	c.returnID = returnID
	return nil
}
