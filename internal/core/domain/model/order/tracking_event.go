package order

import (
	"errors"
	"time"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/pkg/errs"
)

var (
	// ErrTrackingEventIsNotConstructed is returned when a TrackingEvent was not
	// created through NewTrackingEvent or RestoreTrackingEvent.
	ErrTrackingEventIsNotConstructed = errors.New(
		"TrackingEvent must be created via NewTrackingEvent or RestoreTrackingEvent constructor")

	// PickedUpMessage is the status message recorded when a driver collects
	// the garments from the customer.
	PickedUpMessage = "Order picked up from customer"
)

// TrackingEvent is an append-only log entry linked to an order and the driver
// handling it, capturing a status message and an optional position snapshot.
// Events are written once and never updated or deleted.
type TrackingEvent struct {
	id            kernel.UUID
	orderID       kernel.UUID
	driverID      kernel.UUID
	statusMessage string

	// location is the driver's position when the event was recorded, if known
	location *kernel.Location

	createdAt time.Time

	isConstructed bool
}

// NewTrackingEvent creates a tracking event for an order and driver.
// location may be nil when no position snapshot is available.
func NewTrackingEvent(
	id kernel.UUID,
	orderID kernel.UUID,
	driverID kernel.UUID,
	statusMessage string,
	location *kernel.Location,
) (*TrackingEvent, error) {
	e := &TrackingEvent{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setOrderID(orderID),
		e.setDriverID(driverID),
		e.setStatusMessage(statusMessage),
		e.setLocation(location),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreTrackingEvent reconstructs a tracking event from persistence.
func RestoreTrackingEvent(
	id kernel.UUID,
	orderID kernel.UUID,
	driverID kernel.UUID,
	statusMessage string,
	location *kernel.Location,
	createdAt time.Time,
) (*TrackingEvent, error) {
	e, err := NewTrackingEvent(id, orderID, driverID, statusMessage, location)
	if err != nil {
		return nil, err
	}

	e.createdAt = createdAt
	return e, nil
}

// Validate ensures the event was created through a factory.
func (e *TrackingEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrTrackingEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *TrackingEvent) ID() kernel.UUID {
	return e.id
}

// OrderID returns the tracked order's identifier.
func (e *TrackingEvent) OrderID() kernel.UUID {
	return e.orderID
}

// DriverID returns the reporting driver's identifier.
func (e *TrackingEvent) DriverID() kernel.UUID {
	return e.driverID
}

// StatusMessage returns the human-readable snapshot message.
func (e *TrackingEvent) StatusMessage() string {
	return e.statusMessage
}

// Location returns the position snapshot, or nil if none was recorded.
func (e *TrackingEvent) Location() *kernel.Location {
	return e.location
}

// CreatedAt returns when the event was recorded.
func (e *TrackingEvent) CreatedAt() time.Time {
	return e.createdAt
}

func (e *TrackingEvent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *TrackingEvent) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	e.orderID = orderID
	return nil
}

func (e *TrackingEvent) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("driverId", err)
	}
	e.driverID = driverID
	return nil
}

func (e *TrackingEvent) setStatusMessage(statusMessage string) error {
	if statusMessage == "" {
		return errs.NewValueIsRequiredError("statusMessage")
	}
	e.statusMessage = statusMessage
	return nil
}

func (e *TrackingEvent) setLocation(location *kernel.Location) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	e.location = location
	return nil
}
