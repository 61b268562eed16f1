package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "returns/internal/adapters/out/postgres"
	"returns/internal/adapters/out/postgres/inventoryrepo"
	"returns/internal/adapters/out/postgres/orderrepo"
	"returns/internal/adapters/out/postgres/returnrepo"
	"returns/internal/adapters/out/postgres/shippingrepo"
	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/orderreturn"
	"returns/internal/core/domain/model/sales"
	"returns/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&returnrepo.ReturnDTO{},
		&returnrepo.ReturnItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.SwapDTO{},
		&orderrepo.ClaimOrderDTO{},
		&shippingrepo.ShippingOptionDTO{},
		&shippingrepo.ShippingMethodDTO{},
		&inventoryrepo.ProductVariantDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE return_items, returns, line_items, swaps, claim_orders, orders, " +
			"shipping_methods, shipping_options, product_variants",
	).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.ReturnRepository(), "First instance should provide return repository")
	suite.NotNil(uow1.OrderReader(), "First instance should provide order reader")
	suite.NotNil(uow1.LineItemRepository(), "First instance should provide line item repository")
	suite.NotNil(uow1.ShippingRepository(), "First instance should provide shipping repository")
	suite.NotNil(uow1.InventoryRepository(), "First instance should provide inventory repository")
	suite.NotNil(uow2.ReturnRepository(), "Second instance should provide return repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testReturn := createTestReturn()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ReturnRepository().Add(ctx, testReturn)
	suite.Require().NoError(err)

	// Verify return exists within transaction
	retrievedReturn, err := uow.ReturnRepository().Get(ctx, testReturn.ID())
	suite.Require().NoError(err)
	suite.Equal(testReturn.ID(), retrievedReturn.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify return persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedReturn, err = newUow.ReturnRepository().Get(ctx, testReturn.ID())
	suite.Require().NoError(err)
	suite.Equal(testReturn.ID(), retrievedReturn.ID())
}

// TestUnitOfWork_ReceiveWorkflow tests the complete receive workflow
// involving the return aggregate, line item accounting, and inventory
// restocking within a single transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ReceiveWorkflow() {
	ctx := context.Background()

	// Seed the order-side tables the workflow reads and writes
	variantID := kernel.NewUUID()
	orderID, itemID := suite.seedOrderWithLineItem(variantID, 10)
	suite.seedVariant(variantID, 3)

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Step 1: Create and add a return for the order line
	testReturn := createTestReturnForOrder(orderID, itemID, 2)
	err = uow.ReturnRepository().Add(ctx, testReturn)
	suite.Require().NoError(err)

	// Step 2: Receive the requested quantity (domain operation)
	err = testReturn.Receive([]orderreturn.ReceivedLine{
		{ItemID: itemID, Quantity: 2},
	}, false, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Equal(orderreturn.Received, testReturn.Status())

	err = uow.ReturnRepository().Update(ctx, testReturn)
	suite.Require().NoError(err)

	// Step 3: Book the returned quantity on the line item
	err = uow.LineItemRepository().SetReturnedQuantity(ctx, itemID, 2)
	suite.Require().NoError(err)

	// Step 4: Restock the variant
	err = uow.InventoryRepository().AdjustVariant(ctx, variantID, 2)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify final state using a new unit of work
	newUow := suite.factory.Create()

	retrievedReturn, err := newUow.ReturnRepository().Get(ctx, testReturn.ID())
	suite.Require().NoError(err)
	suite.Equal(orderreturn.Received, retrievedReturn.Status())
	suite.NotNil(retrievedReturn.ReceivedAt())

	retrievedItem, err := newUow.LineItemRepository().Get(ctx, itemID)
	suite.Require().NoError(err)
	suite.Equal(2, retrievedItem.ReturnedQuantity)

	var variantDTO inventoryrepo.ProductVariantDTO
	err = suite.db.First(&variantDTO, "id = ?", variantID.Bytes()).Error
	suite.Require().NoError(err)
	suite.Equal(5, variantDTO.InventoryQuantity)
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()

	variantID := kernel.NewUUID()
	orderID, itemID := suite.seedOrderWithLineItem(variantID, 10)
	suite.seedVariant(variantID, 3)

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testReturn := createTestReturnForOrder(orderID, itemID, 1)
	err = uow.ReturnRepository().Add(ctx, testReturn)
	suite.Require().NoError(err)

	err = uow.InventoryRepository().AdjustVariant(ctx, variantID, 1)
	suite.Require().NoError(err)

	// Verify changes are visible within the transaction
	_, err = uow.ReturnRepository().Get(ctx, testReturn.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify nothing was persisted
	newUow := suite.factory.Create()

	_, err = newUow.ReturnRepository().Get(ctx, testReturn.ID())
	suite.Require().Error(err, "Return should not exist after rollback")

	var variantDTO inventoryrepo.ProductVariantDTO
	err = suite.db.First(&variantDTO, "id = ?", variantID.Bytes()).Error
	suite.Require().NoError(err)
	suite.Equal(3, variantDTO.InventoryQuantity, "Inventory should be untouched after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	return1 := createTestReturn()
	return2 := createTestReturn()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.ReturnRepository().Add(ctx, return1)
	suite.Require().NoError(err)

	err = uow2.ReturnRepository().Add(ctx, return2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.ReturnRepository().Get(ctx, return1.ID())
	suite.Require().NoError(err, "UOW1 should see return1")

	_, err = uow1.ReturnRepository().Get(ctx, return2.ID())
	suite.Require().Error(err, "UOW1 should not see return2")

	_, err = uow2.ReturnRepository().Get(ctx, return2.ID())
	suite.Require().NoError(err, "UOW2 should see return2")

	_, err = uow2.ReturnRepository().Get(ctx, return1.ID())
	suite.Require().Error(err, "UOW2 should not see return1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only return1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.ReturnRepository().Get(ctx, return1.ID())
	suite.Require().NoError(err, "Return1 should persist after commit")

	_, err = newUow.ReturnRepository().Get(ctx, return2.ID())
	suite.Require().Error(err, "Return2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testReturn := createTestReturn()

	// Add return without beginning transaction (should auto-commit)
	err := uow.ReturnRepository().Add(ctx, testReturn)
	suite.Require().NoError(err)

	retrievedReturn, err := uow.ReturnRepository().Get(ctx, testReturn.ID())
	suite.Require().NoError(err)
	suite.Equal(testReturn.ID(), retrievedReturn.ID())

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrievedReturn, err = newUow.ReturnRepository().Get(ctx, testReturn.ID())
	suite.Require().NoError(err)
	suite.Equal(testReturn.ID(), retrievedReturn.ID())
}

// TestUnitOfWork_OrderReaderConsistency verifies the order reader sees
// line item changes made within the same transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderReaderConsistency() {
	ctx := context.Background()

	variantID := kernel.NewUUID()
	orderID, itemID := suite.seedOrderWithLineItem(variantID, 10)

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.LineItemRepository().SetReturnedQuantity(ctx, itemID, 4)
	suite.Require().NoError(err)

	// The order reader on the same unit of work sees the pending change
	order, err := uow.OrderReader().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(order.Items, 1)
	suite.Equal(4, order.Items[0].ReturnedQuantity)
	suite.Equal(6, order.Items[0].Returnable())

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// A fresh unit of work sees the original state
	newUow := suite.factory.Create()
	order, err = newUow.OrderReader().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(order.Items, 1)
	suite.Equal(0, order.Items[0].ReturnedQuantity)
}

// TestUnitOfWork_ShippingMethodLifecycle verifies shipping method persistence
// through the unit of work within a fulfillment-style transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ShippingMethodLifecycle() {
	ctx := context.Background()

	optionID := kernel.NewUUID()
	suite.seedShippingOption(optionID, 750)

	testReturn := createTestReturn()
	returnID := testReturn.ID()

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ReturnRepository().Add(ctx, testReturn)
	suite.Require().NoError(err)

	// No method attached yet
	method, err := uow.ShippingRepository().GetMethodByReturn(ctx, returnID)
	suite.Require().NoError(err)
	suite.Nil(method)

	option, err := uow.ShippingRepository().GetOption(ctx, optionID)
	suite.Require().NoError(err)
	suite.Equal(int64(750), option.Amount)

	err = uow.ShippingRepository().AddMethod(ctx, sales.ShippingMethod{
		ID:       kernel.NewUUID(),
		OptionID: optionID,
		ReturnID: &returnID,
		Price:    option.Amount,
	})
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify the attached method persisted
	newUow := suite.factory.Create()
	method, err = newUow.ShippingRepository().GetMethodByReturn(ctx, returnID)
	suite.Require().NoError(err)
	suite.Require().NotNil(method)
	suite.True(method.OptionID.IsEqual(optionID))
	suite.Equal(int64(750), method.Price)
}

// seedOrderWithLineItem inserts an order with one line item directly and
// returns their ids. The line item carries the given quantity with nothing
// returned yet.
func (suite *UnitOfWorkIntegrationTestSuite) seedOrderWithLineItem(
	variantID kernel.UUID, quantity int,
) (kernel.UUID, kernel.UUID) {
	orderID := kernel.NewUUID()
	itemID := kernel.NewUUID()
	rawOrderID := orderID.Bytes()

	err := suite.db.Create(&orderrepo.OrderDTO{
		ID:               rawOrderID,
		Total:            10000,
		RefundableAmount: 10000,
		TaxRate:          20,
	}).Error
	suite.Require().NoError(err)

	err = suite.db.Create(&orderrepo.LineItemDTO{
		ID:        itemID.Bytes(),
		OrderID:   &rawOrderID,
		VariantID: variantID.Bytes(),
		Quantity:  quantity,
		UnitPrice: 1000,
	}).Error
	suite.Require().NoError(err)

	return orderID, itemID
}

// seedVariant inserts a product variant with the given stock level.
func (suite *UnitOfWorkIntegrationTestSuite) seedVariant(variantID kernel.UUID, stock int) {
	err := suite.db.Create(&inventoryrepo.ProductVariantDTO{
		ID:                variantID.Bytes(),
		InventoryQuantity: stock,
	}).Error
	suite.Require().NoError(err)
}

// seedShippingOption inserts a shipping option with the given amount.
func (suite *UnitOfWorkIntegrationTestSuite) seedShippingOption(optionID kernel.UUID, amount int64) {
	err := suite.db.Create(&shippingrepo.ShippingOptionDTO{
		ID:     optionID.Bytes(),
		Amount: amount,
	}).Error
	suite.Require().NoError(err)
}

// createTestReturn creates a valid order-originated return for testing purposes.
func createTestReturn() *orderreturn.Return {
	orderID := kernel.NewUUID()
	return createTestReturnForOrder(orderID, kernel.NewUUID(), 1)
}

// createTestReturnForOrder creates a return requesting the given quantity
// of one line item.
func createTestReturnForOrder(orderID, itemID kernel.UUID, quantity int) *orderreturn.Return {
	item, _ := orderreturn.NewReturnItem(itemID, quantity, nil, "", false)
	refund, _ := kernel.NewMoney(int64(quantity) * 1000)
	testReturn, _ := orderreturn.NewReturn(
		kernel.NewUUID(),
		&orderID,
		nil,
		refund,
		false,
		[]*orderreturn.ReturnItem{item},
	)
	return testReturn
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
