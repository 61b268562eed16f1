package services

import (
	"fmt"

	"returns/internal/core/domain/model/orderreturn"
	"returns/internal/core/domain/model/sales"
	"returns/internal/pkg/errs"
)

// ReturnLineResolver is a domain service that matches requested return
// lines against an order's item pool and validates each quantity.
//
// Business rules:
//   - The pool is the order's own items plus the additional items of every
//     swap on the order
//   - A requested item id with no pool match is invalid data
//   - A requested quantity above quantity-returnedQuantity is not allowed;
//     the boundary (exactly the returnable amount) is accepted
//   - Reason and note carry over from the request onto the resolved line
//
// Example usage:
//
//	resolver := NewReturnLineResolver()
//	lines, err := resolver.Resolve(order, requested)
//	if errors.Is(err, errs.ErrOperationNotAllowed) {
//	    // quantity exceeds what is still returnable
//	}
type ReturnLineResolver struct{}

// NewReturnLineResolver creates a new ReturnLineResolver instance.
func NewReturnLineResolver() ReturnLineResolver {
	return ReturnLineResolver{}
}

// Resolve matches every requested line against the order's item pool.
// Returns the resolved lines in request order, or the first validation
// failure encountered.
func (r ReturnLineResolver) Resolve(
	order sales.Order,
	requested []orderreturn.RequestedLine,
) ([]orderreturn.ResolvedLine, error) {
	pool := order.ItemPool()

	resolved := make([]orderreturn.ResolvedLine, 0, len(requested))
	for _, line := range requested {
		item, ok := findInPool(pool, line)
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"item_id",
				fmt.Errorf("item %s does not exist on order %s", line.ItemID, order.ID),
			)
		}

		if err := validateReturnLineItem(item, line.Quantity); err != nil {
			return nil, err
		}

		resolved = append(resolved, orderreturn.ResolvedLine{
			Item:     item,
			Quantity: line.Quantity,
			ReasonID: line.ReasonID,
			Note:     line.Note,
		})
	}

	return resolved, nil
}

func findInPool(pool []sales.LineItem, line orderreturn.RequestedLine) (sales.LineItem, bool) {
	for _, item := range pool {
		if item.ID.IsEqual(line.ItemID) {
			return item, true
		}
	}
	return sales.LineItem{}, false
}

// validateReturnLineItem enforces the returnable-quantity rule:
// quantity <= item.quantity - item.returnedQuantity.
func validateReturnLineItem(item sales.LineItem, quantity int) error {
	if quantity > item.Returnable() {
		return errs.NewOperationNotAllowedErrorWithCause(
			"cannot return more items than have been purchased",
			fmt.Errorf("item %s has %d returnable units, %d requested",
				item.ID, item.Returnable(), quantity),
		)
	}
	return nil
}
