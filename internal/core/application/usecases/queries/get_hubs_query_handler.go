package queries

import (
	"context"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetHubsQueryHandler retrieves the hub catalog from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetHubsQueryHandler struct {
	db *gorm.DB
}

// NewGetHubsQueryHandler creates a handler for hub catalog queries.
// Requires a GORM database connection for query execution.
func NewGetHubsQueryHandler(db *gorm.DB) GetHubsQueryHandler {
	return GetHubsQueryHandler{db: db}
}

// Handle executes the query to retrieve all hubs, sorted by name.
func (h GetHubsQueryHandler) Handle(
	ctx context.Context,
	query GetHubsQuery,
) ([]GetHubsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	hubs := make([]GetHubsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			phone,
			latitude,
			longitude,
			services
		FROM laundry_hubs
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetHubsQueryResponse
		var id uuid.UUID
		var latitude, longitude float64
		var services pq.StringArray

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Address,
			&resp.Phone,
			&latitude,
			&longitude,
			&services,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.Location, err = kernel.NewLocation(latitude, longitude); err != nil {
			return nil, err
		}

		resp.Services = make([]order.ServiceType, 0, len(services))
		for _, s := range services {
			serviceType, typeErr := order.ServiceTypeFromString(s)
			if typeErr != nil {
				return nil, typeErr
			}
			resp.Services = append(resp.Services, serviceType)
		}

		hubs = append(hubs, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return hubs, nil
}
