package commands

import (
	"errors"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/pkg/guard"
)

var (
	ErrAcceptOrderCommandIsNotConstructed = errors.New(
		"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
	)
)

// AcceptOrderCommand represents a farmer accepting an order. The farmer is
// not verified against the user directory before acceptance; the reference
// is recorded as supplied.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.EntityID
	farmerID kernel.EntityID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for a farmer to accept an order.
// Validates that both identifiers are present.
func NewAcceptOrderCommand(orderID, farmerID kernel.EntityID) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setFarmerID(farmerID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being accepted.
func (c AcceptOrderCommand) OrderID() kernel.EntityID {
	return c.orderID
}

// FarmerID returns the identifier of the accepting farmer.
func (c AcceptOrderCommand) FarmerID() kernel.EntityID {
	return c.farmerID
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.EntityID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setFarmerID(farmerID kernel.EntityID) error {
	if err := farmerID.Validate(); err != nil {
		return err
	}
	c.farmerID = farmerID
	return nil
}
