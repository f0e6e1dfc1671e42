package commands

import (
	"errors"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/pkg/guard"
)

var (
	ErrAssignBalerCommandIsNotConstructed = errors.New(
		"AssignBalerCommand must be created via NewAssignBalerCommand constructor",
	)
)

// AssignBalerCommand represents assigning a baler to an order. Like
// acceptance, the baler reference is recorded without a directory lookup.
type AssignBalerCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.EntityID
	balerID kernel.EntityID

	guard guard.ConstructorGuard
}

// NewAssignBalerCommand creates a command assigning a baler to an order.
// Validates that both identifiers are present.
func NewAssignBalerCommand(orderID, balerID kernel.EntityID) (AssignBalerCommand, error) {
	cmd := AssignBalerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBalerID(balerID),
	); err != nil {
		return AssignBalerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignBalerCommand) Validate() error {
	return c.guard.Validate(ErrAssignBalerCommandIsNotConstructed)
}

// OrderID returns the identifier of the order receiving a baler.
func (c AssignBalerCommand) OrderID() kernel.EntityID {
	return c.orderID
}

// BalerID returns the identifier of the assigned baler.
func (c AssignBalerCommand) BalerID() kernel.EntityID {
	return c.balerID
}

func (c *AssignBalerCommand) setOrderID(orderID kernel.EntityID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignBalerCommand) setBalerID(balerID kernel.EntityID) error {
	if err := balerID.Validate(); err != nil {
		return err
	}
	c.balerID = balerID
	return nil
}
