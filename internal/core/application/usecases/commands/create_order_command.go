package commands

import (
	"errors"
	"fmt"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/pkg/errs"
	"baleconnect/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new bale order.
// Encapsulates the order details required at creation: the ordering customer,
// the kind and quantity of bales, where to deliver, and when to pick up.
//
// Example:
//
//	customerID, _ := kernel.EntityIDFromString("customer_1")
//	cmd, err := NewCreateOrderCommand(customerID, "round", 10, "123 Farm Road", "2024-01-01", "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.EntityID
	baleType        string
	quantity        int
	deliveryAddress string
	pickupDate      string
	notes           string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the customer ID is valid, the bale type, delivery address,
// and pickup date are non-empty, and the quantity is positive.
func NewCreateOrderCommand(
	customerID kernel.EntityID,
	baleType string,
	quantity int,
	deliveryAddress, pickupDate, notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setBaleType(baleType),
		cmd.setQuantity(quantity),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setPickupDate(pickupDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.EntityID {
	return c.customerID
}

// BaleType returns the requested kind of bale.
func (c CreateOrderCommand) BaleType() string {
	return c.baleType
}

// Quantity returns the number of bales ordered.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// DeliveryAddress returns the delivery destination.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// PickupDate returns the requested pickup date.
func (c CreateOrderCommand) PickupDate() string {
	return c.pickupDate
}

// Notes returns the optional free-text notes, which may be empty.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.EntityID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setBaleType(baleType string) error {
	if baleType == "" {
		return errs.NewValueIsRequiredError("bale_type")
	}
	c.baleType = baleType
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("delivery_address")
	}
	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateOrderCommand) setPickupDate(pickupDate string) error {
	if pickupDate == "" {
		return errs.NewValueIsRequiredError("pickup_date")
	}
	c.pickupDate = pickupDate
	return nil
}
