// Package order provides domain entities and business logic for laundry order
// management. It implements the Order aggregate root with lifecycle management
// and state transitions across the three acting roles (customer, driver, admin).
//
// The package includes:
//   - Order: The aggregate root that manages order identity, pricing, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - ServiceType: The laundry service catalog with per-garment unit prices
//   - TrackingEvent: An append-only position/status snapshot written at pickup
//
// Key business rules:
//   - Orders must reference a customer and a hub, and have at least one garment
//   - Total amount is fixed at creation as unit price times garment count
//   - Status only moves forward through the defined graph:
//     pending -> approved -> assigned -> picked -> in_laundry -> ready ->
//     out_for_delivery -> delivered, with pending -> cancelled as the reject branch
//   - delivered and cancelled are terminal; no transition leaves them
//   - A driver is attached exactly once; the claim itself is made race-safe by
//     the persistence layer's conditional update, the aggregate only validates
//     the precondition it can see
package order
