package order

import (
	"errors"
	"time"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

const (
	// MinGarmentCount is the smallest accepted number of garments per order.
	MinGarmentCount = 1
	// MaxGarmentCount caps the number of garments a single pickup may carry.
	MaxGarmentCount = 500
)

// Order represents a laundry pickup-and-delivery order. It is the aggregate
// root that manages the order lifecycle from creation through admin approval
// and driver claiming to delivery.
//
// Order follows these invariants:
//   - Must reference exactly one customer and one hub
//   - Garment count is within [MinGarmentCount..MaxGarmentCount]
//   - Pickup address is never empty
//   - Total amount is fixed at creation as unit price times garment count
//   - Status transitions follow the forward-only graph defined on Status
//   - Driver is attached at most once; only the claim/assign transition sets it
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. The one rule the aggregate cannot
// enforce alone is claim atomicity under concurrency; that is delegated to
// the persistence layer's conditional update.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	hubID      kernel.UUID

	// driverID is the assigned driver's ID (nil until claimed)
	driverID *kernel.UUID

	serviceType         ServiceType
	garmentCount        int
	pickupAddress       string
	specialInstructions string

	// totalAmount is computed once at creation and never changes
	totalAmount int

	status Status

	adminApprovedAt *time.Time
	adminApprovedBy *kernel.UUID

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. This is the
// only way to create a fresh order, ensuring all business invariants hold.
//
// The total amount is computed here as serviceType.UnitPrice() times
// garmentCount and is immutable afterwards.
//
// Example:
//
//	o, err := order.NewOrder(
//	    kernel.NewUUID(), customerID, hubID,
//	    order.WashFold, 5, "12 MG Road", "ring twice",
//	)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	hubID kernel.UUID,
	serviceType ServiceType,
	garmentCount int,
	pickupAddress string,
	specialInstructions string,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:              Pending,
		specialInstructions: specialInstructions,
		createdAt:           now,
		updatedAt:           now,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setHubID(hubID),
		o.setServiceType(serviceType),
		o.setGarmentCount(garmentCount),
		o.setPickupAddress(pickupAddress),
	); err != nil {
		return nil, err
	}

	o.totalAmount = o.serviceType.UnitPrice() * o.garmentCount
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running the
// creation-time business rules that already held when the row was written.
// It still validates identifiers, enum values, and status/driver consistency.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	hubID kernel.UUID,
	driverID *kernel.UUID,
	serviceType ServiceType,
	garmentCount int,
	pickupAddress string,
	specialInstructions string,
	totalAmount int,
	status Status,
	adminApprovedAt *time.Time,
	adminApprovedBy *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		specialInstructions: specialInstructions,
		totalAmount:         totalAmount,
		adminApprovedAt:     adminApprovedAt,
		adminApprovedBy:     adminApprovedBy,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setHubID(hubID),
		o.setServiceType(serviceType),
		o.setGarmentCount(garmentCount),
		o.setPickupAddress(pickupAddress),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		o.driverID = driverID
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
// Call it when handing an order across a trust boundary (e.g., persistence).
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// HubID returns the processing facility's identifier.
func (o *Order) HubID() kernel.UUID {
	return o.hubID
}

// Driver returns the assigned driver's ID, or nil if unclaimed.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// ServiceType returns the ordered laundry service.
func (o *Order) ServiceType() ServiceType {
	return o.serviceType
}

// GarmentCount returns the number of garments in the order.
func (o *Order) GarmentCount() int {
	return o.garmentCount
}

// PickupAddress returns the customer's pickup address.
func (o *Order) PickupAddress() string {
	return o.pickupAddress
}

// SpecialInstructions returns the customer's free-text instructions.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// TotalAmount returns the price fixed at creation.
func (o *Order) TotalAmount() int {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// AdminApprovedAt returns when the order was approved, or nil.
func (o *Order) AdminApprovedAt() *time.Time {
	return o.adminApprovedAt
}

// AdminApprovedBy returns the approving admin's ID, or nil.
func (o *Order) AdminApprovedBy() *kernel.UUID {
	return o.adminApprovedBy
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Approve moves a pending order to Approved and stamps the approval.
//
// Business rules:
//   - The order must currently be Pending
//   - adminID must be a valid identifier; the caller verifies the admin role
//
// Returns an InvalidTransitionError if the order is not pending.
func (o *Order) Approve(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.adminApprovedAt = &now
	o.adminApprovedBy = &adminID
	o.touch()
	return nil
}

// Reject moves a pending order to the terminal Cancelled status.
// Returns an InvalidTransitionError if the order is not pending.
func (o *Order) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Assign attaches a driver to an approved, unclaimed order and moves it to
// Assigned. This is the in-memory half of the claim; the repository applies
// the equivalent check-and-set as one conditional write so that exactly one
// of several concurrent claimants wins.
//
// Returns an InvalidTransitionError if the order is not approved or a driver
// is already attached.
func (o *Order) Assign(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.driverID != nil {
		return errs.NewInvalidTransitionErrorWithCause("claim", o.status.String(),
			errors.New("order already has a driver"))
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	o.touch()
	return nil
}

// Advance moves the order one step along the driver's forward chain.
//
// Business rules:
//   - Only the assigned driver may advance the order
//   - The current status must have a successor (see Status.Next)
//
// Returns a PermissionDeniedError when driverID is not the assigned driver
// and an InvalidTransitionError when the status has no successor.
func (o *Order) Advance(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.driverID == nil || !o.driverID.IsEqual(driverID) {
		return errs.NewPermissionDeniedErrorWithCause("driver", "advance order",
			errors.New("order is assigned to another driver"))
	}

	newStatus, err := o.status.Next()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// touch refreshes the updatedAt timestamp; called on every mutation.
func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setHubID(hubID kernel.UUID) error {
	if err := hubID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("hubId", err)
	}
	o.hubID = hubID
	return nil
}

func (o *Order) setServiceType(serviceType ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	o.serviceType = serviceType
	return nil
}

func (o *Order) setGarmentCount(garmentCount int) error {
	if garmentCount < MinGarmentCount || garmentCount > MaxGarmentCount {
		return errs.NewValueIsOutOfRangeError("garmentCount", garmentCount, MinGarmentCount, MaxGarmentCount)
	}
	o.garmentCount = garmentCount
	return nil
}

func (o *Order) setPickupAddress(pickupAddress string) error {
	if pickupAddress == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	o.pickupAddress = pickupAddress
	return nil
}
