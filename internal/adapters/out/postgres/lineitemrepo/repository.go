// Package lineitemrepo reads order and swap line items with the
// cancellation context of their owners, and writes back the
// returned-quantity accounting after a receive.
package lineitemrepo

import (
	"context"
	"errors"
	"time"

	"returns/internal/adapters/out/postgres/orderrepo"
	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/sales"
	"returns/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLineItemRepository implements LineItemRepository using GORM.
type GormLineItemRepository struct {
	db *gorm.DB
}

// NewGormLineItemRepository creates a new GORM line item repository.
func NewGormLineItemRepository(db *gorm.DB) *GormLineItemRepository {
	return &GormLineItemRepository{db: db}
}

// Get retrieves a line item and resolves the canceled-at timestamp of its
// owning order, swap, or claim order.
func (r *GormLineItemRepository) Get(ctx context.Context, id kernel.UUID) (sales.LineItem, error) {
	if err := id.Validate(); err != nil {
		return sales.LineItem{}, err
	}

	var dto orderrepo.LineItemDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return sales.LineItem{}, errs.NewObjectNotFoundError("line item", id.String())
		}
		return sales.LineItem{}, err
	}

	item, err := toDomain(dto)
	if err != nil {
		return sales.LineItem{}, err
	}

	if dto.OrderID != nil {
		if item.OrderCanceledAt, err = r.canceledAt(ctx, "orders", *dto.OrderID); err != nil {
			return sales.LineItem{}, err
		}
	}
	if dto.SwapID != nil {
		if item.SwapCanceledAt, err = r.canceledAt(ctx, "swaps", *dto.SwapID); err != nil {
			return sales.LineItem{}, err
		}
	}
	if dto.ClaimOrderID != nil {
		if item.ClaimCanceledAt, err = r.canceledAt(ctx, "claim_orders", *dto.ClaimOrderID); err != nil {
			return sales.LineItem{}, err
		}
	}

	return item, nil
}

// ListByIDs retrieves the line items for the given ids in one query.
// Owner cancellation context is not resolved here.
func (r *GormLineItemRepository) ListByIDs(ctx context.Context, ids []kernel.UUID) ([]sales.LineItem, error) {
	if len(ids) == 0 {
		return []sales.LineItem{}, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []orderrepo.LineItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", rawIDs).Error; err != nil {
		return nil, err
	}

	items := make([]sales.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// SetReturnedQuantity overwrites the line item's returned quantity.
func (r *GormLineItemRepository) SetReturnedQuantity(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&orderrepo.LineItemDTO{}).
		Where("id = ?", id.Bytes()).
		Update("returned_quantity", quantity)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("line item", id.String())
	}

	return nil
}

func (r *GormLineItemRepository) canceledAt(
	ctx context.Context, table string, ownerID uuid.UUID,
) (*time.Time, error) {
	var row struct {
		CanceledAt *time.Time
	}

	err := r.db.WithContext(ctx).
		Table(table).
		Select("canceled_at").
		Where("id = ?", ownerID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil //owner row missing, treated as not canceled
		}
		return nil, err
	}

	return row.CanceledAt, nil
}

func toDomain(dto orderrepo.LineItemDTO) (sales.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return sales.LineItem{}, err
	}
	variantID, err := kernel.UUIDFromBytes(dto.VariantID[:])
	if err != nil {
		return sales.LineItem{}, err
	}

	item := sales.LineItem{
		ID:               id,
		VariantID:        variantID,
		Quantity:         dto.Quantity,
		ReturnedQuantity: dto.ReturnedQuantity,
		UnitPrice:        dto.UnitPrice,
	}

	if item.OrderID, err = optionalDomain(dto.OrderID); err != nil {
		return sales.LineItem{}, err
	}
	if item.SwapID, err = optionalDomain(dto.SwapID); err != nil {
		return sales.LineItem{}, err
	}
	if item.ClaimOrderID, err = optionalDomain(dto.ClaimOrderID); err != nil {
		return sales.LineItem{}, err
	}

	return item, nil
}

func optionalDomain(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil //absent optional reference
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
