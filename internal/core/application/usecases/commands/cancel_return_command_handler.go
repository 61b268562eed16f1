package commands

import (
	"context"

	"returns/internal/core/domain/model/orderreturn"
)

// CancelReturnCommandHandler handles the business logic for canceling a return.
// Loads the aggregate, applies the cancel transition, and persists the result.
//
// Example:
//
//	handler := NewCancelReturnCommandHandler(uowFactory)
//	cmd, _ := NewCancelReturnCommand(returnID)
//
//	ret, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrOperationNotAllowed) {
//	    // return was already received
//	}
type CancelReturnCommandHandler struct {
	uowFactory ReturnUoWFactory
}

// NewCancelReturnCommandHandler creates a handler for return cancellation.
// Requires a ReturnUoWFactory for transactional persistence.
func NewCancelReturnCommandHandler(uowFactory ReturnUoWFactory) CancelReturnCommandHandler {
	return CancelReturnCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancel command and returns the updated aggregate.
// Canceling an already-canceled return is a no-op that succeeds; a return
// that has been received cannot be canceled.
func (h *CancelReturnCommandHandler) Handle(
	ctx context.Context, cmd CancelReturnCommand,
) (*orderreturn.Return, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	returnRepo := uow.ReturnRepository()
	ret, err := returnRepo.Get(ctx, cmd.ReturnID())
	if err != nil {
		return nil, err
	}

	if err = ret.Cancel(); err != nil {
		return nil, err
	}

	if err = returnRepo.Update(ctx, ret); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ret, nil
}
