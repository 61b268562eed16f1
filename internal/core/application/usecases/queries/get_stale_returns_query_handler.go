package queries

import (
	"context"
	"time"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/orderreturn"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStaleReturnsQueryHandler finds returns still awaiting receipt after a
// configured age.
type GetStaleReturnsQueryHandler struct {
	db *gorm.DB
}

// NewGetStaleReturnsQueryHandler creates a handler for stale-return queries.
// Requires a GORM database connection for query execution.
func NewGetStaleReturnsQueryHandler(db *gorm.DB) GetStaleReturnsQueryHandler {
	return GetStaleReturnsQueryHandler{db: db}
}

// Handle executes the query and returns all Requested returns created
// before the cutoff, oldest first.
func (h GetStaleReturnsQueryHandler) Handle(
	ctx context.Context, query GetStaleReturnsQuery,
) ([]StaleReturnResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.OlderThan())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			created_at
		FROM returns
		WHERE status = ?
		  AND created_at < ?
		ORDER BY created_at
	`, orderreturn.Requested.String(), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stale := make([]StaleReturnResponse, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			orderID   uuid.NullUUID
			createdAt time.Time
		)

		if err = rows.Scan(&id, &orderID, &createdAt); err != nil {
			return nil, err
		}

		resp := StaleReturnResponse{CreatedAt: createdAt}
		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = optionalUUID(orderID); err != nil {
			return nil, err
		}

		stale = append(stale, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stale, nil
}
