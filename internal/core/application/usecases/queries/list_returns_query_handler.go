package queries

import (
	"context"

	"returns/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// ListReturnsQueryHandler retrieves pages of returns from the database,
// newest first. Filters compose: an order filter and a status filter may
// be combined.
type ListReturnsQueryHandler struct {
	db *gorm.DB
}

// NewListReturnsQueryHandler creates a handler for return listings.
// Requires a GORM database connection for query execution.
func NewListReturnsQueryHandler(db *gorm.DB) ListReturnsQueryHandler {
	return ListReturnsQueryHandler{db: db}
}

// Handle executes the listing and returns the requested page with items
// attached to every return.
func (h ListReturnsQueryHandler) Handle(
	ctx context.Context, query ListReturnsQuery,
) ([]ReturnResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + returnColumns + `
		FROM returns
		WHERE 1=1`
	args := make([]any, 0, 4)

	if query.OrderID() != nil {
		sql += ` AND order_id = ?`
		args = append(args, query.OrderID().Bytes())
	}
	if query.Status() != nil {
		sql += ` AND status = ?`
		args = append(args, query.Status().String())
	}

	sql += `
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`
	args = append(args, query.PageSize(), (query.Page()-1)*query.PageSize())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]ReturnResponse, 0, query.PageSize())
	for rows.Next() {
		resp, scanErr := scanReturn(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		responses = append(responses, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(responses))
	for _, resp := range responses {
		ids = append(ids, resp.ID)
	}

	items, err := loadReturnItems(ctx, h.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range responses {
		responses[i].Items = items[responses[i].ID.Bytes()]
	}

	return responses, nil
}
