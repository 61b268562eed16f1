package commands

import (
	"context"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/orderreturn"
	"returns/internal/core/domain/model/sales"
	"returns/internal/core/ports"
	"returns/internal/pkg/errs"
)

// FulfillReturnCommandHandler creates a return fulfillment with the
// configured provider and stores the provider's payload on the return.
//
// A return without a shipping method has nothing to fulfill and passes
// through unchanged. A return that already carries shipping data was
// fulfilled before and is rejected.
type FulfillReturnCommandHandler struct {
	uowFactory FulfillReturnUoWFactory
	provider   ports.FulfillmentProvider
}

// NewFulfillReturnCommandHandler creates a handler for return fulfillment.
// Requires a FulfillReturnUoWFactory and the external fulfillment provider.
func NewFulfillReturnCommandHandler(
	uowFactory FulfillReturnUoWFactory, provider ports.FulfillmentProvider,
) FulfillReturnCommandHandler {
	return FulfillReturnCommandHandler{
		uowFactory: uowFactory,
		provider:   provider,
	}
}

// Handle processes the fulfill command and returns the updated aggregate.
func (h *FulfillReturnCommandHandler) Handle(
	ctx context.Context, cmd FulfillReturnCommand,
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

	if err = ret.Status().EnsureMutable(); err != nil {
		return nil, err
	}
	if ret.ShippingData() != nil {
		return nil, errs.NewOperationNotAllowedError("return has already been fulfilled")
	}

	method, err := uow.ShippingRepository().GetMethodByReturn(ctx, ret.ID())
	if err != nil {
		return nil, err
	}
	if method == nil {
		// Nothing ships without a shipping method.
		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}
		return ret, nil
	}

	fulfillment, err := h.buildFulfillment(ctx, uow, ret, *method)
	if err != nil {
		return nil, err
	}

	shippingData, err := h.provider.CreateReturn(ctx, fulfillment)
	if err != nil {
		return nil, err
	}

	if err = ret.AttachShippingData(shippingData); err != nil {
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

// buildFulfillment loads the underlying line items in one query and pairs
// each with its requested return quantity.
func (h *FulfillReturnCommandHandler) buildFulfillment(
	ctx context.Context, uow FulfillReturnUoW, ret *orderreturn.Return, method sales.ShippingMethod,
) (ports.ReturnFulfillment, error) {
	ids := make([]kernel.UUID, 0, len(ret.Items()))
	for _, item := range ret.Items() {
		ids = append(ids, item.ItemID())
	}

	lineItems, err := uow.LineItemRepository().ListByIDs(ctx, ids)
	if err != nil {
		return ports.ReturnFulfillment{}, err
	}

	items := make([]ports.ReturnFulfillmentItem, 0, len(ret.Items()))
	for _, item := range ret.Items() {
		for _, lineItem := range lineItems {
			if lineItem.ID.IsEqual(item.ItemID()) {
				items = append(items, ports.ReturnFulfillmentItem{
					LineItem: lineItem,
					Quantity: item.Quantity(),
				})
				break
			}
		}
	}

	return ports.ReturnFulfillment{
		ReturnID:       ret.ID(),
		Items:          items,
		ShippingMethod: method,
	}, nil
}
