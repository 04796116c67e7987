package cmd

import (
	"context"
	"log/slog"

	"laundromart/internal/adapters/out/postgres"
	"laundromart/internal/adapters/out/postgres/changefeed"
	"laundromart/internal/core/application/usecases/commands"
	"laundromart/internal/core/application/usecases/queries"
	"laundromart/internal/core/domain/model/hub"
	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateRegisterProfileCommandHandler() commands.RegisterProfileCommandHandler {
	var f commands.ProfileUoWFactory = FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetProfileQueryHandler() queries.GetProfileQueryHandler {
	return queries.NewGetProfileQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersForActorQueryHandler() queries.ListOrdersForActorQueryHandler {
	return queries.NewListOrdersForActorQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTrackingQueryHandler() queries.GetOrderTrackingQueryHandler {
	return queries.NewGetOrderTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetHubsQueryHandler() queries.GetHubsQueryHandler {
	return queries.NewGetHubsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

// CreateChangeFeed opens the LISTEN/NOTIFY subscription on the order change
// channel. The caller owns the returned feed and must Close it on shutdown.
func (c *CompositionRoot) CreateChangeFeed(logger *slog.Logger) (*changefeed.PqChangeFeed, error) {
	return changefeed.NewPqChangeFeed(c.config.DSN(), postgres.OrderChangesChannel, logger)
}

// SeedHubs inserts the default hub catalog when the table is empty, so a
// fresh deployment has somewhere to send orders.
func (c *CompositionRoot) SeedHubs(ctx context.Context) error {
	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existing, err := uow.HubRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, seed := range defaultHubs() {
		location, locErr := kernel.NewLocation(seed.latitude, seed.longitude)
		if locErr != nil {
			return locErr
		}

		laundryHub, hubErr := hub.NewHub(
			kernel.NewUUID(), seed.name, seed.address, seed.phone, location, seed.services)
		if hubErr != nil {
			return hubErr
		}

		if addErr := uow.HubRepository().Add(ctx, laundryHub); addErr != nil {
			return addErr
		}
	}

	return uow.Commit(ctx)
}

type hubSeed struct {
	name      string
	address   string
	phone     string
	latitude  float64
	longitude float64
	services  []order.ServiceType
}

func defaultHubs() []hubSeed {
	return []hubSeed{
		{
			name:      "Indiranagar Hub",
			address:   "100 Feet Road, Indiranagar",
			phone:     "+91-80-4000-1001",
			latitude:  12.9784,
			longitude: 77.6408,
			services:  []order.ServiceType{order.WashFold, order.Ironing},
		},
		{
			name:      "Koramangala Hub",
			address:   "80 Feet Road, Koramangala 4th Block",
			phone:     "+91-80-4000-1002",
			latitude:  12.9352,
			longitude: 77.6245,
			services:  []order.ServiceType{order.WashFold, order.DryCleaning, order.Ironing},
		},
		{
			name:      "Whitefield Hub",
			address:   "ITPL Main Road, Whitefield",
			phone:     "+91-80-4000-1003",
			latitude:  12.9698,
			longitude: 77.7500,
			services:  []order.ServiceType{order.WashFold, order.DryCleaning},
		},
	}
}

type FuncProfileUoWFactory func() commands.ProfileUoW

func (f FuncProfileUoWFactory) Create() commands.ProfileUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
