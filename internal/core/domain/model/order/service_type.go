package order

import (
	"fmt"

	"laundromart/internal/pkg/errs"
)

// ServiceType identifies a laundry service from the catalog.
// Each service carries a fixed per-garment unit price used to compute the
// order total at creation time.
type ServiceType int

const (
	// ServiceTypeUnknown represents an invalid or undefined service type.
	ServiceTypeUnknown ServiceType = iota

	// WashFold is the standard wash and fold service.
	WashFold

	// DryCleaning is the dry cleaning service.
	DryCleaning

	// Ironing is the ironing-only service.
	Ironing
)

// getServiceTypeStrings returns a map of ServiceType values to their wire names.
func getServiceTypeStrings() map[ServiceType]string {
	return map[ServiceType]string{
		ServiceTypeUnknown: "unknown",
		WashFold:           "wash_fold",
		DryCleaning:        "dry_cleaning",
		Ironing:            "ironing",
	}
}

// getUnitPrices returns the per-garment price of each valid service type.
func getUnitPrices() map[ServiceType]int {
	return map[ServiceType]int{
		WashFold:    50,
		DryCleaning: 120,
		Ironing:     30,
	}
}

// ServiceTypeFromString parses the snake_case wire representation of a
// service type. Returns an error for unknown strings.
func ServiceTypeFromString(s string) (ServiceType, error) {
	for serviceType, str := range getServiceTypeStrings() {
		if serviceType != ServiceTypeUnknown && str == s {
			return serviceType, nil
		}
	}
	return ServiceTypeUnknown, errs.NewValueIsInvalidErrorWithCause("serviceType",
		fmt.Errorf("%q is not a valid service type", s))
}

// Validate checks if the ServiceType value is valid.
func (t ServiceType) Validate() error {
	if _, ok := getUnitPrices()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("serviceType is invalid",
			fmt.Errorf("%d is not a valid service type", t))
	}
	return nil
}

// String returns the snake_case name of the service type, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (t ServiceType) String() string {
	if str, ok := getServiceTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// UnitPrice returns the per-garment price of the service type.
// Returns 0 for invalid service types; callers validate first.
func (t ServiceType) UnitPrice() int {
	return getUnitPrices()[t]
}
