package commands

import (
	"context"

	"baleconnect/internal/core/domain/model/order"
)

// AssignBalerCommandHandler handles baler assignment. Assignment moves the
// order to baler_assigned regardless of the current status.
type AssignBalerCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignBalerCommandHandler creates a handler for baler assignment.
func NewAssignBalerCommandHandler(uowFactory OrderUoWFactory) AssignBalerCommandHandler {
	return AssignBalerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command. Loads the order, records the
// baler and the baler_assigned status, and persists the change within a
// transaction. Returns the updated order.
func (h AssignBalerCommandHandler) Handle(ctx context.Context, cmd AssignBalerCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.AssignBaler(cmd.BalerID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
