package commands

import (
	"context"
	"fmt"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/orderreturn"
	"returns/internal/core/domain/model/sales"
	"returns/internal/core/domain/services"
	"returns/internal/pkg/errs"
)

// CreateReturnCommandHandler handles the business logic for opening a return.
// Matches the requested lines against the order's item pool, resolves the
// return shipping price, computes or caps the refund, and persists the new
// aggregate in Requested status.
//
// Example:
//
//	handler := NewCreateReturnCommandHandler(uowFactory)
//	ret, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrOperationNotAllowed) {
//	    // a requested quantity exceeds what is still returnable
//	}
type CreateReturnCommandHandler struct {
	uowFactory CreateReturnUoWFactory
}

// NewCreateReturnCommandHandler creates a handler for return creation.
// Requires a CreateReturnUoWFactory for transactional persistence.
func NewCreateReturnCommandHandler(uowFactory CreateReturnUoWFactory) CreateReturnCommandHandler {
	return CreateReturnCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the create command and returns the new aggregate.
//
// An explicit refund amount is capped by the order's refundable amount;
// otherwise the refund is the pro-rated line total minus the tax-inclusive
// shipping price. All reads and writes share one transaction.
func (h *CreateReturnCommandHandler) Handle( //nolint:cyclop //orchestration over several repositories
	ctx context.Context, cmd CreateReturnCommand,
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

	if err := h.ensureOwnersActive(ctx, uow, cmd.Items()); err != nil {
		return nil, err
	}

	order, err := h.resolveOrder(ctx, uow, cmd)
	if err != nil {
		return nil, err
	}

	resolver := services.NewReturnLineResolver()
	resolved, err := resolver.Resolve(order, cmd.Items())
	if err != nil {
		return nil, err
	}

	shippingPrice, err := h.resolveShippingPrice(ctx, uow, cmd)
	if err != nil {
		return nil, err
	}

	refund, err := resolveRefund(order, resolved, cmd.RefundAmount(), cmd.ShippingOptionID() != nil, shippingPrice)
	if err != nil {
		return nil, err
	}

	ret, err := buildReturn(cmd, resolved, refund)
	if err != nil {
		return nil, err
	}

	if err = uow.ReturnRepository().Add(ctx, ret); err != nil {
		return nil, err
	}

	if cmd.ShippingOptionID() != nil {
		returnID := ret.ID()
		method := sales.ShippingMethod{
			ID:       kernel.NewUUID(),
			OptionID: *cmd.ShippingOptionID(),
			ReturnID: &returnID,
			Price:    shippingPrice,
		}
		if err = uow.ShippingRepository().AddMethod(ctx, method); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ret, nil
}

// ensureOwnersActive rejects lines whose owning order, swap, or claim has
// been canceled.
func (h *CreateReturnCommandHandler) ensureOwnersActive(
	ctx context.Context, uow CreateReturnUoW, items []orderreturn.RequestedLine,
) error {
	lineItemRepo := uow.LineItemRepository()
	for _, line := range items {
		item, err := lineItemRepo.Get(ctx, line.ItemID)
		if err != nil {
			return err
		}
		if item.OwnerCanceled() {
			return errs.NewValueIsInvalidErrorWithCause(
				"item_id",
				fmt.Errorf("cannot return item %s from a canceled order, swap, or claim", line.ItemID),
			)
		}
	}
	return nil
}

func (h *CreateReturnCommandHandler) resolveOrder(
	ctx context.Context, uow CreateReturnUoW, cmd CreateReturnCommand,
) (sales.Order, error) {
	orderReader := uow.OrderReader()
	if cmd.OrderID() != nil {
		return orderReader.Get(ctx, *cmd.OrderID())
	}
	return orderReader.GetBySwap(ctx, *cmd.SwapID())
}

// resolveShippingPrice returns the caller's price override when given, the
// option's configured amount otherwise. Zero without a shipping option.
func (h *CreateReturnCommandHandler) resolveShippingPrice(
	ctx context.Context, uow CreateReturnUoW, cmd CreateReturnCommand,
) (int64, error) {
	if cmd.ShippingOptionID() == nil {
		return 0, nil
	}
	if cmd.ShippingPrice() != nil {
		return *cmd.ShippingPrice(), nil
	}

	option, err := uow.ShippingRepository().GetOption(ctx, *cmd.ShippingOptionID())
	if err != nil {
		return 0, err
	}
	return option.Amount, nil
}

func resolveRefund(
	order sales.Order,
	resolved []orderreturn.ResolvedLine,
	explicit *kernel.Money,
	hasShipping bool,
	shippingPrice int64,
) (kernel.Money, error) {
	if explicit != nil {
		if explicit.Amount() > order.RefundableAmount {
			return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
				"refund_amount",
				fmt.Errorf("cannot refund more than %d", order.RefundableAmount),
			)
		}
		return *explicit, nil
	}

	calculator := services.NewRefundCalculator()
	total, err := calculator.RefundTotal(order, resolved)
	if err != nil {
		return kernel.Money{}, err
	}
	if hasShipping {
		return calculator.DeductShipping(total, shippingPrice, order.TaxRate), nil
	}
	return kernel.NewMoney(total)
}

func buildReturn(
	cmd CreateReturnCommand, resolved []orderreturn.ResolvedLine, refund kernel.Money,
) (*orderreturn.Return, error) {
	items := make([]*orderreturn.ReturnItem, 0, len(resolved))
	for _, line := range resolved {
		item, err := orderreturn.NewReturnItem(
			line.Item.ID, line.Quantity, line.ReasonID, line.Note, cmd.NoNotification(),
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	ret, err := orderreturn.NewReturn(
		kernel.NewUUID(), cmd.OrderID(), cmd.SwapID(), refund, cmd.NoNotification(), items,
	)
	if err != nil {
		return nil, err
	}

	if len(cmd.Metadata()) > 0 {
		if err = ret.ApplyUpdate(orderreturn.Update{Metadata: cmd.Metadata()}); err != nil {
			return nil, err
		}
	}

	return ret, nil
}
