package queries

import (
	"errors"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/pkg/guard"
)

var ErrGetReturnBySwapQueryIsNotConstructed = errors.New(
	"GetReturnBySwapQuery must be created via NewGetReturnBySwapQuery constructor",
)

// GetReturnBySwapQuery retrieves the return originated by a swap.
type GetReturnBySwapQuery struct { //nolint:recvcheck //using for validation
	swapID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetReturnBySwapQuery creates a query for the given swap's return.
func NewGetReturnBySwapQuery(swapID kernel.UUID) (GetReturnBySwapQuery, error) {
	query := GetReturnBySwapQuery{guard: guard.NewConstructorGuard()}

	if err := swapID.Validate(); err != nil {
		return GetReturnBySwapQuery{}, err
	}
	query.swapID = swapID

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetReturnBySwapQueryIsNotConstructed if validation fails.
func (q GetReturnBySwapQuery) Validate() error {
	return q.guard.Validate(ErrGetReturnBySwapQueryIsNotConstructed)
}

// SwapID returns the identifier of the swap whose return is requested.
func (q GetReturnBySwapQuery) SwapID() kernel.UUID {
	return q.swapID
}
