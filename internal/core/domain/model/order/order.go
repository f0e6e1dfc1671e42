package order

import (
	"errors"
	"fmt"
	"time"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a bale order in the system. It is the aggregate root that
// manages the order lifecycle from placement by a customer, through acceptance
// by a farmer and assignment of a baler, to delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer identifier
//   - Bale type, delivery address, and pickup date must be non-empty
//   - Quantity must be positive
//   - Creation-time fields are immutable; only the farmer, baler, status, and
//     delivery timestamp change after creation, through the defined methods
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id              kernel.EntityID
	customerID      kernel.EntityID
	farmerID        *kernel.EntityID
	balerID         *kernel.EntityID
	baleType        string
	quantity        int
	deliveryAddress string
	pickupDate      string
	status          Status
	createdAt       time.Time
	deliveredAt     *time.Time
	notes           string

	isConstructed bool
}

// NewOrder places a new order for the given customer. The order receives a
// freshly generated identifier prefixed with "order", starts in the Pending
// status with no farmer or baler assigned, and createdAt set to now.
// Returns a validation error if any required field is missing or invalid.
func NewOrder(
	customerID kernel.EntityID,
	baleType string,
	quantity int,
	deliveryAddress, pickupDate, notes string,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     time.Now(),
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setBaleType(baleType),
		o.setQuantity(quantity),
		o.setDeliveryAddress(deliveryAddress),
		o.setPickupDate(pickupDate),
	); err != nil {
		return nil, err
	}

	o.id = kernel.NewEntityID("order")
	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its full state,
// including any assigned farmer and baler and the delivery timestamp.
func RestoreOrder(
	id, customerID kernel.EntityID,
	farmerID, balerID *kernel.EntityID,
	baleType string,
	quantity int,
	deliveryAddress, pickupDate string,
	status Status,
	createdAt time.Time,
	deliveredAt *time.Time,
	notes string,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		farmerID:      farmerID,
		balerID:       balerID,
		status:        status,
		createdAt:     createdAt,
		deliveredAt:   deliveredAt,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setBaleType(baleType),
		o.setQuantity(quantity),
		o.setDeliveryAddress(deliveryAddress),
		o.setPickupDate(pickupDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
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
func (o *Order) ID() kernel.EntityID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.EntityID {
	return o.customerID
}

// FarmerID returns the accepting farmer's identifier, or nil if none accepted.
func (o *Order) FarmerID() *kernel.EntityID {
	return o.farmerID
}

// BalerID returns the assigned baler's identifier, or nil if none assigned.
func (o *Order) BalerID() *kernel.EntityID {
	return o.balerID
}

// BaleType returns the requested kind of bale.
func (o *Order) BaleType() string {
	return o.baleType
}

// Quantity returns the number of bales ordered.
func (o *Order) Quantity() int {
	return o.quantity
}

// DeliveryAddress returns the delivery destination.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// PickupDate returns the requested pickup date as supplied by the customer.
func (o *Order) PickupDate() string {
	return o.pickupDate
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveredAt returns the delivery timestamp, or nil if not delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Notes returns the optional free-text notes.
func (o *Order) Notes() string {
	return o.notes
}

// Accept records a farmer's acceptance: sets the farmer and moves the status
// to FarmerAccepted. The overwrite is unconditional; a later Accept replaces
// any earlier farmer, and no check is made that the order was Pending.
func (o *Order) Accept(farmerID kernel.EntityID) error {
	if err := farmerID.Validate(); err != nil {
		return err
	}

	o.farmerID = &farmerID
	o.status = FarmerAccepted
	return nil
}

// AssignBaler records the baler assignment: sets the baler and moves the
// status to BalerAssigned, unconditionally and regardless of prior status.
func (o *Order) AssignBaler(balerID kernel.EntityID) error {
	if err := balerID.Validate(); err != nil {
		return err
	}

	o.balerID = &balerID
	o.status = BalerAssigned
	return nil
}

// ChangeStatus sets the order status to any non-empty value. Transitioning to
// Delivered stamps deliveredAt with the current time; any other value leaves
// the delivery timestamp untouched.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	if status.IsDelivered() {
		now := time.Now()
		o.deliveredAt = &now
	}
	return nil
}

func (o *Order) setCustomerID(customerID kernel.EntityID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setBaleType(baleType string) error {
	if baleType == "" {
		return errs.NewValueIsRequiredError("bale_type")
	}
	o.baleType = baleType
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("delivery_address")
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setPickupDate(pickupDate string) error {
	if pickupDate == "" {
		return errs.NewValueIsRequiredError("pickup_date")
	}
	o.pickupDate = pickupDate
	return nil
}
