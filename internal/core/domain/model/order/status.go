package order

import "baleconnect/internal/pkg/errs"

// Status tracks an order's fulfillment progress. It is an open string rather
// than a closed enum: UpdateStatus accepts any non-empty value from clients,
// so the constants below only name the well-known waypoints of the informal
// sequence
//
//	pending -> farmer_accepted -> baler_assigned -> ... -> delivered
//
// No transition-order validation is performed anywhere.
type Status string

const (
	// Pending is the initial status of every new order.
	Pending Status = "pending"

	// FarmerAccepted is set when a farmer accepts the order.
	FarmerAccepted Status = "farmer_accepted"

	// BalerAssigned is set when the farmer assigns a baler.
	BalerAssigned Status = "baler_assigned"

	// Delivered marks fulfillment; reaching it stamps the delivery time.
	Delivered Status = "delivered"
)

// NewStatus wraps an externally supplied status value.
// Returns an error if the value is empty.
func NewStatus(s string) (Status, error) {
	if s == "" {
		return "", errs.NewValueIsRequiredError("status")
	}
	return Status(s), nil
}

// String returns the status as stored and transmitted.
func (s Status) String() string {
	return string(s)
}

// IsDelivered reports whether the status marks a delivered order.
func (s Status) IsDelivered() bool {
	return s == Delivered
}

// Validate checks that the status is non-empty. Any non-empty value is valid.
func (s Status) Validate() error {
	if s == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}
