// Package shippingrepo resolves return-shipping options and records the
// shipping methods created for returns.
package shippingrepo

import (
	"context"
	"errors"

	"returns/internal/adapters/out/postgres/jsonmap"
	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/sales"
	"returns/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShippingOptionDTO maps the shipping_options table.
type ShippingOptionDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Amount int64     `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for shipping options.
func (ShippingOptionDTO) TableName() string {
	return "shipping_options"
}

// ShippingMethodDTO maps the shipping_methods table.
type ShippingMethodDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OptionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ReturnID *uuid.UUID      `gorm:"type:uuid;uniqueIndex"`
	Price    int64           `gorm:"type:bigint;not null"`
	Data     jsonmap.JSONMap `gorm:"type:jsonb"`
}

// TableName specifies the database table name for shipping methods.
func (ShippingMethodDTO) TableName() string {
	return "shipping_methods"
}

// GormShippingRepository implements ShippingRepository using GORM.
type GormShippingRepository struct {
	db *gorm.DB
}

// NewGormShippingRepository creates a new GORM shipping repository.
func NewGormShippingRepository(db *gorm.DB) *GormShippingRepository {
	return &GormShippingRepository{db: db}
}

// GetOption retrieves a shipping option by ID.
func (r *GormShippingRepository) GetOption(ctx context.Context, id kernel.UUID) (sales.ShippingOption, error) {
	if err := id.Validate(); err != nil {
		return sales.ShippingOption{}, err
	}

	var dto ShippingOptionDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return sales.ShippingOption{}, errs.NewObjectNotFoundError("shipping option", id.String())
		}
		return sales.ShippingOption{}, err
	}

	optionID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return sales.ShippingOption{}, err
	}

	return sales.ShippingOption{ID: optionID, Amount: dto.Amount}, nil
}

// GetMethodByReturn retrieves the shipping method tagged to a return.
// Returns nil without error when the return ships without one.
func (r *GormShippingRepository) GetMethodByReturn(
	ctx context.Context, returnID kernel.UUID,
) (*sales.ShippingMethod, error) {
	if err := returnID.Validate(); err != nil {
		return nil, err
	}

	var dto ShippingMethodDTO
	err := r.db.WithContext(ctx).First(&dto, "return_id = ?", returnID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil //no shipping method means nothing ships
		}
		return nil, err
	}

	method, err := methodToDomain(dto)
	if err != nil {
		return nil, err
	}
	return &method, nil
}

// AddMethod persists a shipping method record.
func (r *GormShippingRepository) AddMethod(ctx context.Context, method sales.ShippingMethod) error {
	if err := method.ID.Validate(); err != nil {
		return err
	}
	if err := method.OptionID.Validate(); err != nil {
		return err
	}

	dto := ShippingMethodDTO{
		ID:       method.ID.Bytes(),
		OptionID: method.OptionID.Bytes(),
		Price:    method.Price,
		Data:     jsonmap.JSONMap(method.Data),
	}
	if method.ReturnID != nil {
		raw := method.ReturnID.Bytes()
		dto.ReturnID = &raw
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

func methodToDomain(dto ShippingMethodDTO) (sales.ShippingMethod, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return sales.ShippingMethod{}, err
	}
	optionID, err := kernel.UUIDFromBytes(dto.OptionID[:])
	if err != nil {
		return sales.ShippingMethod{}, err
	}

	method := sales.ShippingMethod{
		ID:       id,
		OptionID: optionID,
		Price:    dto.Price,
		Data:     dto.Data,
	}

	if dto.ReturnID != nil {
		returnID, idErr := kernel.UUIDFromBytes((*dto.ReturnID)[:])
		if idErr != nil {
			return sales.ShippingMethod{}, idErr
		}
		method.ReturnID = &returnID
	}

	return method, nil
}
