// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and service type are stored as their snake_case wire strings so the
// rows read naturally in SQL and on the notification channel.
type OrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID          uuid.UUID  `gorm:"type:uuid;index"`
	HubID               uuid.UUID  `gorm:"type:uuid;index"`
	DriverID            *uuid.UUID `gorm:"type:uuid;index"`
	ServiceType         string     `gorm:"type:varchar(32)"`
	GarmentCount        int
	PickupAddress       string
	SpecialInstructions string
	TotalAmount         int
	Status              string `gorm:"type:varchar(32);index"`
	AdminApprovedAt     *time.Time
	AdminApprovedBy     *uuid.UUID `gorm:"type:uuid"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional driver assignment and
// approval stamp.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	var approvedBy *uuid.UUID
	if id := aggregate.AdminApprovedBy(); id != nil {
		raw := id.Bytes()
		approvedBy = &raw
	}

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		CustomerID:          aggregate.CustomerID().Bytes(),
		HubID:               aggregate.HubID().Bytes(),
		DriverID:            driverID,
		ServiceType:         aggregate.ServiceType().String(),
		GarmentCount:        aggregate.GarmentCount(),
		PickupAddress:       aggregate.PickupAddress(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		TotalAmount:         aggregate.TotalAmount(),
		Status:              aggregate.Status().String(),
		AdminApprovedAt:     aggregate.AdminApprovedAt(),
		AdminApprovedBy:     approvedBy,
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	hubID, err := kernel.UUIDFromBytes(dto.HubID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	var approvedBy *kernel.UUID
	if dto.AdminApprovedBy != nil {
		aID, approvedErr := kernel.UUIDFromBytes((*dto.AdminApprovedBy)[:])
		if approvedErr != nil {
			return nil, approvedErr
		}

		approvedBy = &aID
	}

	serviceType, err := order.ServiceTypeFromString(dto.ServiceType)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		hubID,
		driverID,
		serviceType,
		dto.GarmentCount,
		dto.PickupAddress,
		dto.SpecialInstructions,
		dto.TotalAmount,
		status,
		dto.AdminApprovedAt,
		approvedBy,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
