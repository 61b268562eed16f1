// Package inventoryrepo adjusts variant stock levels when returned items
// are received back into the warehouse.
package inventoryrepo

import (
	"context"
	"errors"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductVariantDTO maps the product_variants table.
type ProductVariantDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	InventoryQuantity int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for product variants.
func (ProductVariantDTO) TableName() string {
	return "product_variants"
}

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// AdjustVariant adds quantity to the variant's inventory level.
// Runs inside the caller's transaction, so the read-modify-write pair
// is atomic with the rest of the receive operation.
func (r *GormInventoryRepository) AdjustVariant(ctx context.Context, variantID kernel.UUID, quantity int) error {
	if err := variantID.Validate(); err != nil {
		return err
	}

	var dto ProductVariantDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", variantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("product variant", variantID.String())
		}
		return err
	}

	return r.db.WithContext(ctx).
		Model(&ProductVariantDTO{}).
		Where("id = ?", dto.ID).
		Update("inventory_quantity", dto.InventoryQuantity+quantity).Error
}
