// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work owns one database transaction, hands out
// repositories bound to it, and tracks every aggregate those repositories
// write.
//
// Tracked order aggregates double as the source of the change-notification
// channel: Commit emits one pg_notify per changed order inside the
// transaction. Postgres holds NOTIFY payloads until the transaction commits,
// so listeners observe changes only after they are durable, and a rolled-back
// transaction announces nothing.
package postgres

import (
	"context"
	"encoding/json"

	"laundromart/internal/adapters/out/postgres/hubrepo"
	"laundromart/internal/adapters/out/postgres/orderrepo"
	"laundromart/internal/adapters/out/postgres/profilerepo"
	"laundromart/internal/adapters/out/postgres/trackingrepo"
	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/core/ports"

	"gorm.io/gorm"
)

// OrderChangesChannel is the NOTIFY channel carrying order row changes.
const OrderChangesChannel = "order_changes"

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a GORM database
// connection. Each business operation gets a fresh unit of work instance with
// proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates written within it.
//
// Example usage:
//
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return fmt.Errorf("failed to begin transaction: %w", err)
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, newOrder); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create
// nested transactions.
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

// Commit announces every tracked order change on the notification channel and
// finalizes the transaction. The NOTIFY statements run inside the transaction;
// Postgres delivers them to listeners only once the commit succeeds.
//
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.notifyTrackedOrders(ctx); err != nil {
		_ = uow.tx.Rollback().Error
		uow.tx = nil
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// ProfileRepository returns a profile repository bound to the current transaction.
func (uow *GormUnitOfWork) ProfileRepository() ports.ProfileRepository {
	return profilerepo.NewGormProfileRepository(uow.conn(), uow)
}

// HubRepository returns a hub repository bound to the current transaction.
func (uow *GormUnitOfWork) HubRepository() ports.HubRepository {
	return hubrepo.NewGormHubRepository(uow.conn(), uow)
}

// TrackingRepository returns a tracking repository bound to the current transaction.
func (uow *GormUnitOfWork) TrackingRepository() ports.TrackingRepository {
	return trackingrepo.NewGormTrackingRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repository implementations call it on every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
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

// notifyTrackedOrders emits one pg_notify per tracked order aggregate.
// Non-order aggregates (profiles, hubs) are tracked but not announced; nothing
// subscribes to them.
func (uow *GormUnitOfWork) notifyTrackedOrders(ctx context.Context) error {
	for _, tracked := range uow.trackedAggregates {
		changedOrder, ok := tracked.Aggregate.(*order.Order)
		if !ok {
			continue
		}

		payload, err := json.Marshal(ports.OrderChange{
			OrderID: changedOrder.ID().String(),
			Status:  changedOrder.Status().String(),
		})
		if err != nil {
			return err
		}

		err = uow.tx.WithContext(ctx).
			Exec("SELECT pg_notify(?, ?)", OrderChangesChannel, string(payload)).Error
		if err != nil {
			return err
		}
	}

	return nil
}
