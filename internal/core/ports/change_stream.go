package ports

// OrderChange is one event on the change-notification channel: a row of the
// orders table was inserted or updated. Delivery is at-least-once and
// unordered across orders; consumers must treat every event as "re-fetch
// relevant state", never as a delta to apply blindly.
type OrderChange struct {
	// OrderID identifies the changed row.
	OrderID string `json:"order_id"`

	// Status is the row's status after the change.
	Status string `json:"status"`
}

// ChangeStream fans row-change events out to interested consumers.
type ChangeStream interface {
	// Subscribe registers a consumer. The returned cancel function must be
	// called to release the subscription; after cancel the channel is closed.
	// Slow consumers may miss events; they recover by re-fetching.
	Subscribe() (<-chan OrderChange, func())
}
