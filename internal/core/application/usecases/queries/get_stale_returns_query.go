package queries

import (
	"errors"
	"fmt"
	"time"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/pkg/errs"
	"returns/internal/pkg/guard"
)

var ErrGetStaleReturnsQueryIsNotConstructed = errors.New(
	"GetStaleReturnsQuery must be created via NewGetStaleReturnsQuery constructor",
)

// GetStaleReturnsQuery retrieves returns that have sat in Requested status
// longer than a given age. Used by the reminder job to surface returns the
// warehouse never received.
type GetStaleReturnsQuery struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetStaleReturnsQuery creates a query for returns requested more than
// olderThan ago. The age must be positive.
func NewGetStaleReturnsQuery(olderThan time.Duration) (GetStaleReturnsQuery, error) {
	query := GetStaleReturnsQuery{guard: guard.NewConstructorGuard()}

	if olderThan <= 0 {
		return GetStaleReturnsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"older_than",
			fmt.Errorf("%s is not a positive duration", olderThan),
		)
	}
	query.olderThan = olderThan

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStaleReturnsQueryIsNotConstructed if validation fails.
func (q GetStaleReturnsQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleReturnsQueryIsNotConstructed)
}

// OlderThan returns the minimum age of the reported returns.
func (q GetStaleReturnsQuery) OlderThan() time.Duration {
	return q.olderThan
}

// StaleReturnResponse identifies one return awaiting receipt.
type StaleReturnResponse struct {
	ID        kernel.UUID
	OrderID   *kernel.UUID
	CreatedAt time.Time
}
