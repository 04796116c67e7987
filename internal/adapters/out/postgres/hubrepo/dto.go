// Package hubrepo persists the laundry hub catalog.
package hubrepo

import (
	"time"

	"laundromart/internal/core/domain/model/hub"
	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// HubDTO represents the database structure for persisting hubs.
// The offered services are a native text array so SQL can filter on them
// without a join table.
type HubDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"index"`
	Address   string
	Phone     string
	Latitude  float64
	Longitude float64
	Services  pq.StringArray `gorm:"type:text[]"`
	CreatedAt time.Time
}

// TableName specifies the database table name for hub entities.
func (HubDTO) TableName() string {
	return "laundry_hubs"
}

func fromDomain(aggregate *hub.Hub) HubDTO {
	services := make(pq.StringArray, 0, len(aggregate.Services()))
	for _, s := range aggregate.Services() {
		services = append(services, s.String())
	}

	return HubDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Address:   aggregate.Address(),
		Phone:     aggregate.Phone(),
		Latitude:  aggregate.Location().Latitude(),
		Longitude: aggregate.Location().Longitude(),
		Services:  services,
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto HubDTO) (*hub.Hub, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewLocation(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	services := make([]order.ServiceType, 0, len(dto.Services))
	for _, s := range dto.Services {
		serviceType, typeErr := order.ServiceTypeFromString(s)
		if typeErr != nil {
			return nil, typeErr
		}
		services = append(services, serviceType)
	}

	return hub.RestoreHub(id, dto.Name, dto.Address, dto.Phone, location, services, dto.CreatedAt)
}
