package commands

import (
	"context"
	"time"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/orderreturn"
	"returns/internal/core/domain/model/sales"
	"returns/internal/core/domain/services"
)

// ReceiveReturnCommandHandler handles the warehouse receive of a return.
// Reconciles the received lines against what was requested, books the
// returned quantities onto the underlying line items, and restocks the
// affected variants. Everything happens in one transaction.
type ReceiveReturnCommandHandler struct {
	uowFactory ReceiveReturnUoWFactory
}

// NewReceiveReturnCommandHandler creates a handler for receiving returns.
// Requires a ReceiveReturnUoWFactory for transactional persistence.
func NewReceiveReturnCommandHandler(uowFactory ReceiveReturnUoWFactory) ReceiveReturnCommandHandler {
	return ReceiveReturnCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the receive command and returns the updated aggregate.
//
// The resulting status is Received when every line matched its request or
// the mismatch override was set, RequiresAction otherwise. A return
// flagged for action can be received again once the discrepancy is
// sorted out; canceled and already-received returns are rejected.
func (h *ReceiveReturnCommandHandler) Handle(
	ctx context.Context, cmd ReceiveReturnCommand,
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

	if err = ret.EnsureReceivable(); err != nil {
		return nil, err
	}

	order, err := h.resolveOrder(ctx, uow, ret)
	if err != nil {
		return nil, err
	}

	// Every received line must exist in the order's item pool, within the
	// still-returnable quantity. The resolved lines also carry the variant
	// each unit restocks into.
	requested := make([]orderreturn.RequestedLine, 0, len(cmd.Items()))
	for _, line := range cmd.Items() {
		requested = append(requested, orderreturn.RequestedLine{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
		})
	}

	resolver := services.NewReturnLineResolver()
	resolved, err := resolver.Resolve(order, requested)
	if err != nil {
		return nil, err
	}

	// Receive rewrites each item's quantity with the received amount, so
	// the requested quantities owed to line item accounting are captured
	// before reconciling.
	bookings := make([]lineBooking, 0, len(ret.Items()))
	for _, item := range ret.Items() {
		bookings = append(bookings, lineBooking{
			itemID:   item.ItemID(),
			quantity: item.Quantity(),
		})
	}

	if err = ret.Receive(cmd.Items(), cmd.AllowMismatch(), time.Now().UTC()); err != nil {
		return nil, err
	}
	if cmd.RefundAmount() != nil {
		ret.SetRefundAmount(*cmd.RefundAmount())
	}

	if err = returnRepo.Update(ctx, ret); err != nil {
		return nil, err
	}

	if err = h.bookReturnedQuantities(ctx, uow, bookings); err != nil {
		return nil, err
	}

	if err = h.restockReceivedLines(ctx, uow, resolved); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ret, nil
}

func (h *ReceiveReturnCommandHandler) resolveOrder(
	ctx context.Context, uow ReceiveReturnUoW, ret *orderreturn.Return,
) (sales.Order, error) {
	orderReader := uow.OrderReader()
	if ret.OrderID() != nil {
		return orderReader.Get(ctx, *ret.OrderID())
	}
	return orderReader.GetBySwap(ctx, *ret.SwapID())
}

// lineBooking is the requested quantity owed to one line item's
// returned-quantity accounting.
type lineBooking struct {
	itemID   kernel.UUID
	quantity int
}

// bookReturnedQuantities accumulates the requested quantity of every
// line item the return was opened for, whether or not it arrived.
func (h *ReceiveReturnCommandHandler) bookReturnedQuantities(
	ctx context.Context, uow ReceiveReturnUoW, bookings []lineBooking,
) error {
	lineItemRepo := uow.LineItemRepository()
	for _, booking := range bookings {
		item, err := lineItemRepo.Get(ctx, booking.itemID)
		if err != nil {
			return err
		}
		newQuantity := item.ReturnedQuantity + booking.quantity
		if err = lineItemRepo.SetReturnedQuantity(ctx, item.ID, newQuantity); err != nil {
			return err
		}
	}
	return nil
}

// restockReceivedLines puts the received units of each line, requested
// or not, back into the variant's inventory.
func (h *ReceiveReturnCommandHandler) restockReceivedLines(
	ctx context.Context, uow ReceiveReturnUoW, resolved []orderreturn.ResolvedLine,
) error {
	inventoryRepo := uow.InventoryRepository()
	for _, line := range resolved {
		if err := inventoryRepo.AdjustVariant(ctx, line.Item.VariantID, line.Quantity); err != nil {
			return err
		}
	}
	return nil
}
