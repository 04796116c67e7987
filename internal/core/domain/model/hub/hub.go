// Package hub provides the laundry-processing facility entity. Every order is
// routed through exactly one hub, and a hub only accepts orders for the
// services it offers.
package hub

import (
	"errors"
	"time"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/pkg/errs"
)

var (
	// ErrHubIsNotConstructed is returned when a Hub was not created through
	// NewHub or RestoreHub.
	ErrHubIsNotConstructed = errors.New("Hub must be created via NewHub or RestoreHub constructor")
)

// Hub represents a physical laundry-processing facility.
type Hub struct {
	id       kernel.UUID
	name     string
	address  string
	phone    string
	location kernel.Location

	// services lists the service types this facility can process
	services []order.ServiceType

	createdAt time.Time

	isConstructed bool
}

// NewHub creates a hub with validation. A hub must have a name, an address,
// and at least one offered service.
func NewHub(
	id kernel.UUID,
	name string,
	address string,
	phone string,
	location kernel.Location,
	services []order.ServiceType,
) (*Hub, error) {
	h := &Hub{
		phone:         phone,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		h.setID(id),
		h.setName(name),
		h.setAddress(address),
		h.setLocation(location),
		h.setServices(services),
	); err != nil {
		return nil, err
	}

	return h, nil
}

// RestoreHub reconstructs a hub from persistence.
func RestoreHub(
	id kernel.UUID,
	name string,
	address string,
	phone string,
	location kernel.Location,
	services []order.ServiceType,
	createdAt time.Time,
) (*Hub, error) {
	h, err := NewHub(id, name, address, phone, location, services)
	if err != nil {
		return nil, err
	}

	h.createdAt = createdAt
	return h, nil
}

// Validate ensures the hub was created through a factory.
func (h *Hub) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHubIsNotConstructed
	}
	return nil
}

// ID returns the hub's unique identifier.
func (h *Hub) ID() kernel.UUID {
	return h.id
}

// Name returns the facility name.
func (h *Hub) Name() string {
	return h.name
}

// Address returns the facility address.
func (h *Hub) Address() string {
	return h.address
}

// Phone returns the facility contact phone, possibly empty.
func (h *Hub) Phone() string {
	return h.phone
}

// Location returns the facility's geographic position.
func (h *Hub) Location() kernel.Location {
	return h.location
}

// Services returns a copy of the offered service types.
func (h *Hub) Services() []order.ServiceType {
	services := make([]order.ServiceType, len(h.services))
	copy(services, h.services)
	return services
}

// CreatedAt returns the registration timestamp.
func (h *Hub) CreatedAt() time.Time {
	return h.createdAt
}

// Offers reports whether the hub can process the given service type.
func (h *Hub) Offers(serviceType order.ServiceType) bool {
	for _, s := range h.services {
		if s == serviceType {
			return true
		}
	}
	return false
}

func (h *Hub) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.id = id
	return nil
}

func (h *Hub) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	h.name = name
	return nil
}

func (h *Hub) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	h.address = address
	return nil
}

func (h *Hub) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	h.location = location
	return nil
}

func (h *Hub) setServices(services []order.ServiceType) error {
	if len(services) == 0 {
		return errs.NewValueIsRequiredError("services")
	}
	for _, s := range services {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	h.services = make([]order.ServiceType, len(services))
	copy(h.services, services)
	return nil
}
