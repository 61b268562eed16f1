package commands

import (
	"context"

	"returns/internal/core/domain/model/orderreturn"
)

// UpdateReturnCommandHandler handles partial updates of a return.
// Rejects updates once the return has been canceled.
type UpdateReturnCommandHandler struct {
	uowFactory ReturnUoWFactory
}

// NewUpdateReturnCommandHandler creates a handler for return updates.
// Requires a ReturnUoWFactory for transactional persistence.
func NewUpdateReturnCommandHandler(uowFactory ReturnUoWFactory) UpdateReturnCommandHandler {
	return UpdateReturnCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command and returns the updated aggregate.
func (h *UpdateReturnCommandHandler) Handle(
	ctx context.Context, cmd UpdateReturnCommand,
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

	if err = ret.ApplyUpdate(cmd.ToUpdate()); err != nil {
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
