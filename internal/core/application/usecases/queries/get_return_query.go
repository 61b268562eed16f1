// Package queries contains read operations over the returns store.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly with raw SQL and map rows into response structs,
// bypassing the aggregate and its invariant checks.
package queries

import (
	"errors"
	"time"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/pkg/guard"
)

var ErrGetReturnQueryIsNotConstructed = errors.New(
	"GetReturnQuery must be created via NewGetReturnQuery constructor",
)

// GetReturnQuery retrieves a single return with its items.
//
// Example:
//
//	query, err := NewGetReturnQuery(returnID)
//	if err != nil {
//	    return fmt.Errorf("invalid return id: %w", err)
//	}
//
//	handler := NewGetReturnQueryHandler(db)
//	ret, err := handler.Handle(ctx, query)
type GetReturnQuery struct { //nolint:recvcheck //using for validation
	returnID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetReturnQuery creates a query for the given return.
func NewGetReturnQuery(returnID kernel.UUID) (GetReturnQuery, error) {
	query := GetReturnQuery{guard: guard.NewConstructorGuard()}

	if err := returnID.Validate(); err != nil {
		return GetReturnQuery{}, err
	}
	query.returnID = returnID

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetReturnQueryIsNotConstructed if validation fails.
func (q GetReturnQuery) Validate() error {
	return q.guard.Validate(ErrGetReturnQueryIsNotConstructed)
}

// ReturnID returns the identifier of the requested return.
func (q GetReturnQuery) ReturnID() kernel.UUID {
	return q.returnID
}

// ReturnResponse is the read model of a return, items included.
type ReturnResponse struct {
	ID             kernel.UUID
	OrderID        *kernel.UUID
	SwapID         *kernel.UUID
	Status         string
	RefundAmount   int64
	ShippingData   map[string]any
	ReceivedAt     *time.Time
	NoNotification bool
	Metadata       map[string]any
	CreatedAt      time.Time
	Items          []ReturnItemResponse
}

// ReturnItemResponse is the read model of one return line.
type ReturnItemResponse struct {
	ItemID            kernel.UUID
	Quantity          int
	RequestedQuantity int
	ReceivedQuantity  int
	IsRequested       bool
	ReasonID          *kernel.UUID
	Note              string
}
