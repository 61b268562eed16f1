package orderrepo

import (
	"context"
	"errors"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/sales"
	"returns/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderReader implements OrderReader using GORM.
// Orders are never written through this adapter.
type GormOrderReader struct {
	db *gorm.DB
}

// NewGormOrderReader creates a new GORM order reader.
func NewGormOrderReader(db *gorm.DB) *GormOrderReader {
	return &GormOrderReader{db: db}
}

// Get retrieves an order with its items and its swaps' additional items.
func (r *GormOrderReader) Get(ctx context.Context, id kernel.UUID) (sales.Order, error) {
	if err := id.Validate(); err != nil {
		return sales.Order{}, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Swaps").
		Preload("Swaps.AdditionalItems").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return sales.Order{}, errs.NewObjectNotFoundError("order", id.String())
		}
		return sales.Order{}, err
	}

	return orderToDomain(dto)
}

// GetBySwap resolves the order owning the given swap and retrieves it.
func (r *GormOrderReader) GetBySwap(ctx context.Context, swapID kernel.UUID) (sales.Order, error) {
	if err := swapID.Validate(); err != nil {
		return sales.Order{}, err
	}

	var swapDto SwapDTO
	err := r.db.WithContext(ctx).First(&swapDto, "id = ?", swapID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return sales.Order{}, errs.NewObjectNotFoundError("swap", swapID.String())
		}
		return sales.Order{}, err
	}

	orderID, err := kernel.UUIDFromBytes(swapDto.OrderID[:])
	if err != nil {
		return sales.Order{}, err
	}

	return r.Get(ctx, orderID)
}
