package queries

import (
	"errors"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/orderreturn"
	"returns/internal/pkg/errs"
	"returns/internal/pkg/guard"
)

var ErrListReturnsQueryIsNotConstructed = errors.New(
	"ListReturnsQuery must be created via NewListReturnsQuery constructor",
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// ListReturnsQuery retrieves a page of returns, newest first, optionally
// filtered by order and status.
//
// Example:
//
//	status := "requested"
//	query, err := NewListReturnsQuery(&orderID, &status, 1, 20)
//	if err != nil {
//	    return fmt.Errorf("invalid listing request: %w", err)
//	}
//
//	handler := NewListReturnsQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
type ListReturnsQuery struct { //nolint:recvcheck //using for validation
	orderID  *kernel.UUID
	status   *orderreturn.Status
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListReturnsQuery creates a listing query. Page numbers start at 1 and
// default to 1; pageSize defaults to 50 and is capped at 200. A non-nil
// status must be one of the known status strings.
func NewListReturnsQuery(
	orderID *kernel.UUID, status *string, page, pageSize int,
) (ListReturnsQuery, error) {
	query := ListReturnsQuery{guard: guard.NewConstructorGuard()}

	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return ListReturnsQuery{}, err
		}
		query.orderID = orderID
	}

	if status != nil {
		parsed, err := orderreturn.StatusFromString(*status)
		if err != nil {
			return ListReturnsQuery{}, err
		}
		query.status = &parsed
	}

	if page < 0 || pageSize < 0 {
		return ListReturnsQuery{}, errs.NewValueIsOutOfRangeError("page", page, 0, maxPageSize)
	}
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	query.page = page
	query.pageSize = pageSize

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListReturnsQueryIsNotConstructed if validation fails.
func (q ListReturnsQuery) Validate() error {
	return q.guard.Validate(ErrListReturnsQueryIsNotConstructed)
}

// OrderID returns the order filter, nil for all orders.
func (q ListReturnsQuery) OrderID() *kernel.UUID {
	return q.orderID
}

// Status returns the status filter, nil for all statuses.
func (q ListReturnsQuery) Status() *orderreturn.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q ListReturnsQuery) Page() int {
	return q.page
}

// PageSize returns the number of returns per page.
func (q ListReturnsQuery) PageSize() int {
	return q.pageSize
}
