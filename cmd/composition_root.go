package cmd

import (
	"returns/internal/adapters/out/fulfillment"
	"returns/internal/adapters/out/postgres"
	"returns/internal/core/application/usecases/commands"
	"returns/internal/core/application/usecases/queries"
	"returns/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB              *gorm.DB
	uowFactory          postgres.GormUnitOfWorkFactory
	fulfillmentProvider ports.FulfillmentProvider
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		fulfillmentProvider: fulfillment.NewClient(fulfillment.Config{
			BaseURL: config.FulfillmentBaseURL,
			APIKey:  config.FulfillmentAPIKey,
		}),
	}
}

func (c *CompositionRoot) CreateCreateReturnCommandHandler() commands.CreateReturnCommandHandler {
	var f commands.CreateReturnUoWFactory = FuncCreateReturnUoWFactory(func() commands.CreateReturnUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateReturnCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateReturnCommandHandler() commands.UpdateReturnCommandHandler {
	var f commands.ReturnUoWFactory = FuncReturnUoWFactory(func() commands.ReturnUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateReturnCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelReturnCommandHandler() commands.CancelReturnCommandHandler {
	var f commands.ReturnUoWFactory = FuncReturnUoWFactory(func() commands.ReturnUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelReturnCommandHandler(f)
}

func (c *CompositionRoot) CreateFulfillReturnCommandHandler() commands.FulfillReturnCommandHandler {
	var f commands.FulfillReturnUoWFactory = FuncFulfillReturnUoWFactory(func() commands.FulfillReturnUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFulfillReturnCommandHandler(f, c.fulfillmentProvider)
}

func (c *CompositionRoot) CreateReceiveReturnCommandHandler() commands.ReceiveReturnCommandHandler {
	var f commands.ReceiveReturnUoWFactory = FuncReceiveReturnUoWFactory(func() commands.ReceiveReturnUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReceiveReturnCommandHandler(f)
}

func (c *CompositionRoot) CreateGetReturnQueryHandler() queries.GetReturnQueryHandler {
	return queries.NewGetReturnQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReturnBySwapQueryHandler() queries.GetReturnBySwapQueryHandler {
	return queries.NewGetReturnBySwapQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListReturnsQueryHandler() queries.ListReturnsQueryHandler {
	return queries.NewListReturnsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaleReturnsQueryHandler() queries.GetStaleReturnsQueryHandler {
	return queries.NewGetStaleReturnsQueryHandler(c.gormDB)
}

type FuncReturnUoWFactory func() commands.ReturnUoW

func (f FuncReturnUoWFactory) Create() commands.ReturnUoW {
	return f()
}

type FuncCreateReturnUoWFactory func() commands.CreateReturnUoW

func (f FuncCreateReturnUoWFactory) Create() commands.CreateReturnUoW {
	return f()
}

type FuncFulfillReturnUoWFactory func() commands.FulfillReturnUoW

func (f FuncFulfillReturnUoWFactory) Create() commands.FulfillReturnUoW {
	return f()
}

type FuncReceiveReturnUoWFactory func() commands.ReceiveReturnUoW

func (f FuncReceiveReturnUoWFactory) Create() commands.ReceiveReturnUoW {
	return f()
}
