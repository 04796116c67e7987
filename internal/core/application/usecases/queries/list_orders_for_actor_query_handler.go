package queries

import (
	"context"
	"database/sql"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/core/domain/model/profile"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersForActorQueryHandler reads the orders visible to an acting profile.
// Uses direct SQL for optimal read performance in the CQRS pattern; the role
// predicate is applied in the WHERE clause so invisible rows never leave the
// database.
type ListOrdersForActorQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersForActorQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersForActorQueryHandler(db *gorm.DB) ListOrdersForActorQueryHandler {
	return ListOrdersForActorQueryHandler{db: db}
}

// Handle executes the query and returns order read models, newest first.
func (h ListOrdersForActorQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersForActorQuery,
) ([]ListOrdersForActorQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := "TRUE"
	args := make([]any, 0, 3)

	switch query.Role() {
	case profile.Customer:
		where = "customer_id = ?"
		args = append(args, query.ActorID().String())
	case profile.Driver:
		// The driver's feed is the claimable pool plus their own work.
		where = "(driver_id = ? OR (status = ? AND driver_id IS NULL))"
		args = append(args, query.ActorID().String(), order.Approved.String())
	case profile.Admin, profile.RoleUnknown:
		// Admins see everything; RoleUnknown cannot pass query validation.
	}

	if query.StatusFilter() != nil {
		where += " AND status = ?"
		args = append(args, query.StatusFilter().String())
	}

	orders := make([]ListOrdersForActorQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			hub_id,
			driver_id,
			service_type,
			garment_count,
			pickup_address,
			special_instructions,
			total_amount,
			status,
			admin_approved_at,
			created_at,
			updated_at
		FROM orders
		WHERE `+where+`
		ORDER BY created_at DESC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListOrdersForActorQueryResponse
		var id, customerID, hubID uuid.UUID
		var driverID uuid.NullUUID
		var serviceType, status string
		var approvedAt sql.NullTime

		err = rows.Scan(
			&id,
			&customerID,
			&hubID,
			&driverID,
			&serviceType,
			&resp.GarmentCount,
			&resp.PickupAddress,
			&resp.SpecialInstructions,
			&resp.TotalAmount,
			&status,
			&approvedAt,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if resp.HubID, err = kernel.UUIDFromBytes(hubID[:]); err != nil {
			return nil, err
		}
		if driverID.Valid {
			drv, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.DriverID = &drv
		}
		if resp.ServiceType, err = order.ServiceTypeFromString(serviceType); err != nil {
			return nil, err
		}
		if resp.Status, err = order.StatusFromString(status); err != nil {
			return nil, err
		}
		if approvedAt.Valid {
			t := approvedAt.Time
			resp.AdminApprovedAt = &t
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
