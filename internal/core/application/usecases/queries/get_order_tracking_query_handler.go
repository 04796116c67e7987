package queries

import (
	"context"
	"database/sql"
	"errors"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/profile"
	"laundromart/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderTrackingQueryHandler reads an order's tracking log.
// First resolves the order row to decide whether the actor may see the log at
// all, then streams the events in insertion order.
type GetOrderTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTrackingQueryHandler creates a handler for tracking log queries.
// Requires a GORM database connection for query execution.
func NewGetOrderTrackingQueryHandler(db *gorm.DB) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{db: db}
}

// Handle executes the query and returns the order's tracking events, oldest
// first. Returns an ObjectNotFoundError when the order does not exist and a
// PermissionDeniedError when the actor may not see it.
func (h GetOrderTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackingQuery,
) ([]GetOrderTrackingQueryResponse, error) {
	if err := h.checkVisibility(ctx, query); err != nil {
		return nil, err
	}

	events := make([]GetOrderTrackingQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			driver_id,
			status_message,
			latitude,
			longitude,
			created_at
		FROM order_tracking
		WHERE order_id = ?
		ORDER BY created_at
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrderTrackingQueryResponse
		var id, driverID uuid.UUID
		var latitude, longitude sql.NullFloat64

		err = rows.Scan(
			&id,
			&driverID,
			&resp.StatusMessage,
			&latitude,
			&longitude,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.DriverID, err = kernel.UUIDFromBytes(driverID[:]); err != nil {
			return nil, err
		}
		if latitude.Valid && longitude.Valid {
			location, locErr := kernel.NewLocation(latitude.Float64, longitude.Float64)
			if locErr != nil {
				return nil, locErr
			}
			resp.Location = &location
		}

		events = append(events, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// checkVisibility resolves the order row and verifies the actor may read its
// tracking log: the owning customer, the assigned driver, or any admin.
func (h GetOrderTrackingQueryHandler) checkVisibility(
	ctx context.Context,
	query GetOrderTrackingQuery,
) error {
	if err := query.Validate(); err != nil {
		return err
	}

	var customerID uuid.UUID
	var driverID uuid.NullUUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT customer_id, driver_id
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(&customerID, &driverID)
	if errors.Is(err, sql.ErrNoRows) {
		return errs.NewObjectNotFoundErrorWithCause("orderId", query.OrderID(), err)
	}
	if err != nil {
		return err
	}

	actor := query.ActorID().String()
	switch query.Role() {
	case profile.Admin:
		return nil
	case profile.Customer:
		if customerID.String() == actor {
			return nil
		}
	case profile.Driver:
		if driverID.Valid && driverID.UUID.String() == actor {
			return nil
		}
	case profile.RoleUnknown:
	}

	return errs.NewPermissionDeniedError(query.Role().String(), "view order tracking")
}
