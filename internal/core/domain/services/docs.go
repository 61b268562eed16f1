// Package services provides domain services that orchestrate business rules
// across multiple domain entities of the return system. It implements logic
// that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - ReturnLineResolver: matches requested return lines against an order's
//     item pool and enforces the returnable-quantity rule
//   - RefundCalculator: computes the default refund for a set of resolved
//     return lines and applies the tax-inclusive shipping deduction
//
// Domain services coordinate between the Return aggregate and the order-side
// read models, following Domain-Driven Design principles.
package services
