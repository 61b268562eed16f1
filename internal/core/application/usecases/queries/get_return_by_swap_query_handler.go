package queries

import (
	"context"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetReturnBySwapQueryHandler retrieves the return created for a swap.
// A swap originates at most one return, so the lookup is unique.
type GetReturnBySwapQueryHandler struct {
	db *gorm.DB
}

// NewGetReturnBySwapQueryHandler creates a handler for swap-return lookups.
// Requires a GORM database connection for query execution.
func NewGetReturnBySwapQueryHandler(db *gorm.DB) GetReturnBySwapQueryHandler {
	return GetReturnBySwapQueryHandler{db: db}
}

// Handle executes the lookup and returns the swap's return with its items.
func (h GetReturnBySwapQueryHandler) Handle(
	ctx context.Context, query GetReturnBySwapQuery,
) (ReturnResponse, error) {
	if err := query.Validate(); err != nil {
		return ReturnResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+returnColumns+`
		FROM returns
		WHERE swap_id = ?
	`, query.SwapID().Bytes()).Rows()
	if err != nil {
		return ReturnResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ReturnResponse{}, err
		}
		return ReturnResponse{}, errs.NewObjectNotFoundError("swap return", query.SwapID())
	}

	resp, err := scanReturn(rows)
	if err != nil {
		return ReturnResponse{}, err
	}

	items, err := loadReturnItems(ctx, h.db, []kernel.UUID{resp.ID})
	if err != nil {
		return ReturnResponse{}, err
	}
	resp.Items = items[resp.ID.Bytes()]

	return resp, nil
}
