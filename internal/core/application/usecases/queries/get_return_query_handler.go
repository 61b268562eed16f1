package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const returnColumns = `
	id,
	order_id,
	swap_id,
	status,
	refund_amount,
	shipping_data,
	received_at,
	no_notification,
	metadata,
	created_at`

// GetReturnQueryHandler retrieves a single return from the database.
//
// Example:
//
//	handler := NewGetReturnQueryHandler(db)
//	query, _ := NewGetReturnQuery(returnID)
//
//	ret, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such return
//	}
type GetReturnQueryHandler struct {
	db *gorm.DB
}

// NewGetReturnQueryHandler creates a handler for single-return queries.
// Requires a GORM database connection for query execution.
func NewGetReturnQueryHandler(db *gorm.DB) GetReturnQueryHandler {
	return GetReturnQueryHandler{db: db}
}

// Handle executes the query and returns the return with its items.
func (h GetReturnQueryHandler) Handle(
	ctx context.Context, query GetReturnQuery,
) (ReturnResponse, error) {
	if err := query.Validate(); err != nil {
		return ReturnResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+returnColumns+`
		FROM returns
		WHERE id = ?
	`, query.ReturnID().Bytes()).Rows()
	if err != nil {
		return ReturnResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ReturnResponse{}, err
		}
		return ReturnResponse{}, errs.NewObjectNotFoundError("return", query.ReturnID())
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

// scanReturn maps the current row of a returnColumns select into a response.
func scanReturn(rows *sql.Rows) (ReturnResponse, error) {
	var (
		id             uuid.UUID
		orderID        uuid.NullUUID
		swapID         uuid.NullUUID
		status         string
		refundAmount   int64
		shippingData   []byte
		receivedAt     sql.NullTime
		noNotification bool
		metadata       []byte
		createdAt      time.Time
	)

	err := rows.Scan(
		&id,
		&orderID,
		&swapID,
		&status,
		&refundAmount,
		&shippingData,
		&receivedAt,
		&noNotification,
		&metadata,
		&createdAt,
	)
	if err != nil {
		return ReturnResponse{}, err
	}

	returnID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ReturnResponse{}, err
	}

	resp := ReturnResponse{
		ID:             returnID,
		Status:         status,
		RefundAmount:   refundAmount,
		NoNotification: noNotification,
		CreatedAt:      createdAt,
	}

	if resp.OrderID, err = optionalUUID(orderID); err != nil {
		return ReturnResponse{}, err
	}
	if resp.SwapID, err = optionalUUID(swapID); err != nil {
		return ReturnResponse{}, err
	}
	if resp.ShippingData, err = decodeJSONMap(shippingData); err != nil {
		return ReturnResponse{}, err
	}
	if resp.Metadata, err = decodeJSONMap(metadata); err != nil {
		return ReturnResponse{}, err
	}
	if receivedAt.Valid {
		resp.ReceivedAt = &receivedAt.Time
	}

	return resp, nil
}

// loadReturnItems fetches the items of the given returns in one query,
// keyed by the owning return's id.
func loadReturnItems(
	ctx context.Context, db *gorm.DB, returnIDs []kernel.UUID,
) (map[uuid.UUID][]ReturnItemResponse, error) {
	if len(returnIDs) == 0 {
		return map[uuid.UUID][]ReturnItemResponse{}, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(returnIDs))
	for _, id := range returnIDs {
		rawIDs = append(rawIDs, id.Bytes())
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			return_id,
			item_id,
			quantity,
			requested_quantity,
			received_quantity,
			is_requested,
			reason_id,
			note
		FROM return_items
		WHERE return_id IN ?
		ORDER BY item_id
	`, rawIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[uuid.UUID][]ReturnItemResponse)
	for rows.Next() {
		var (
			returnID    uuid.UUID
			itemID      uuid.UUID
			quantity    int
			requested   int
			received    int
			isRequested bool
			reasonID    uuid.NullUUID
			note        sql.NullString
		)

		err = rows.Scan(
			&returnID,
			&itemID,
			&quantity,
			&requested,
			&received,
			&isRequested,
			&reasonID,
			&note,
		)
		if err != nil {
			return nil, err
		}

		item := ReturnItemResponse{
			Quantity:          quantity,
			RequestedQuantity: requested,
			ReceivedQuantity:  received,
			IsRequested:       isRequested,
			Note:              note.String,
		}
		if item.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return nil, err
		}
		if item.ReasonID, err = optionalUUID(reasonID); err != nil {
			return nil, err
		}

		items[returnID] = append(items[returnID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func optionalUUID(value uuid.NullUUID) (*kernel.UUID, error) {
	if !value.Valid {
		return nil, nil //nolint:nilnil //absent optional reference
	}

	id, err := kernel.UUIDFromBytes(value.UUID[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func decodeJSONMap(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}
