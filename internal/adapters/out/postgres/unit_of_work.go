// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work owns one database transaction; every
// repository obtained from it runs against that transaction, so all reads
// and writes of a single return operation commit or roll back together.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.ReturnRepository().Add(ctx, ret); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance provides an isolated transaction; concurrent
// goroutines must use separate instances.
package postgres

import (
	"context"

	"returns/internal/adapters/out/postgres/inventoryrepo"
	"returns/internal/adapters/out/postgres/lineitemrepo"
	"returns/internal/adapters/out/postgres/orderrepo"
	"returns/internal/adapters/out/postgres/returnrepo"
	"returns/internal/adapters/out/postgres/shippingrepo"
	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Enables post-commit processing such as outbox-style event publication.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// database connection. Each business operation gets a fresh instance with
// its own transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the return
// repository and its collaborator repositories, and tracks the aggregates
// modified within the transaction.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin while a transaction is active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ReturnRepository returns a return repository bound to the current
// transaction, or to the main connection when none is active. Added and
// updated aggregates are tracked on this unit of work.
func (uow *GormUnitOfWork) ReturnRepository() ports.ReturnRepository {
	return returnrepo.NewGormReturnRepository(uow.conn(), uow)
}

// OrderReader returns an order reader bound to the current transaction.
func (uow *GormUnitOfWork) OrderReader() ports.OrderReader {
	return orderrepo.NewGormOrderReader(uow.conn())
}

// LineItemRepository returns a line item repository bound to the current transaction.
func (uow *GormUnitOfWork) LineItemRepository() ports.LineItemRepository {
	return lineitemrepo.NewGormLineItemRepository(uow.conn())
}

// ShippingRepository returns a shipping repository bound to the current transaction.
func (uow *GormUnitOfWork) ShippingRepository() ports.ShippingRepository {
	return shippingrepo.NewGormShippingRepository(uow.conn())
}

// InventoryRepository returns an inventory repository bound to the current transaction.
func (uow *GormUnitOfWork) InventoryRepository() ports.InventoryRepository {
	return inventoryrepo.NewGormInventoryRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by repository implementations on add and update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
