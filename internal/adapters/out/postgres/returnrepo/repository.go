package returnrepo

import (
	"context"
	"errors"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/orderreturn"
	"returns/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReturnRepository implements ReturnRepository using GORM.
type GormReturnRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReturnRepository creates a new GORM return repository.
func NewGormReturnRepository(db *gorm.DB, tracker aggregateTracker) *GormReturnRepository {
	return &GormReturnRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new return with its items to the database.
func (r *GormReturnRepository) Add(ctx context.Context, aggregate *orderreturn.Return) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing return to the database. The item collection is
// replaced wholesale: receiving can append lines that were never requested,
// so the stored rows are rewritten from the aggregate's current state.
func (r *GormReturnRepository) Update(ctx context.Context, aggregate *orderreturn.Return) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	err := r.db.WithContext(ctx).
		Where("return_id = ?", dto.ID).
		Delete(&ReturnItemDTO{}).Error
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a return by ID, items included.
func (r *GormReturnRepository) Get(ctx context.Context, id kernel.UUID) (*orderreturn.Return, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReturnDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("return", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBySwap retrieves the return originated by the given swap.
func (r *GormReturnRepository) GetBySwap(ctx context.Context, swapID kernel.UUID) (*orderreturn.Return, error) {
	if err := swapID.Validate(); err != nil {
		return nil, err
	}

	var dto ReturnDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "swap_id = ?", swapID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("swap return", swapID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
