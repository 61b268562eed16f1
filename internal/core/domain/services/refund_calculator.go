package services

import (
	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/orderreturn"
	"returns/internal/core/domain/model/sales"
)

// RefundCalculator computes the default refund for a set of resolved
// return lines when no explicit refund amount was supplied.
//
// The line total is each item's unit price times the returned quantity,
// pro-rated by the order's refundable share (refundableAmount / total) so
// prior refunds and captures are respected. When a return ships through a
// shipping method, its tax-inclusive price, price * (1 + taxRate/100),
// is deducted from the total. Every result is floored to an integer and
// never drops below zero.
type RefundCalculator struct{}

// NewRefundCalculator creates a new RefundCalculator instance.
func NewRefundCalculator() RefundCalculator {
	return RefundCalculator{}
}

// RefundTotal computes the refund for the given return lines against the
// order, in the smallest currency unit, floored.
func (c RefundCalculator) RefundTotal(order sales.Order, lines []orderreturn.ResolvedLine) (int64, error) {
	var lineTotal float64
	for _, line := range lines {
		lineTotal += float64(line.Item.UnitPrice) * float64(line.Quantity)
	}

	// Pro-rate by the refundable share: an order that was already partly
	// refunded cannot refund full line value again.
	if order.Total > 0 && order.RefundableAmount < order.Total {
		lineTotal *= float64(order.RefundableAmount) / float64(order.Total)
	}

	return kernel.MoneyFromFloat(lineTotal).Amount(), nil
}

// DeductShipping subtracts the tax-inclusive price of the return's
// shipping method from a computed refund, floored at zero.
func (c RefundCalculator) DeductShipping(refund int64, shippingPrice int64, taxRate float64) kernel.Money {
	inclusive := float64(shippingPrice) * (1 + taxRate/100)
	return kernel.MoneyFromFloat(float64(refund) - inclusive)
}
