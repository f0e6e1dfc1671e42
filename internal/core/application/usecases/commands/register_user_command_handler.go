package commands

import (
	"context"
	"errors"

	"baleconnect/internal/core/domain/model/user"
	"baleconnect/internal/pkg/errs"
)

// RegisterUserCommandHandler handles the business logic for user registration.
// Enforces the email-uniqueness invariant: a duplicate email is rejected
// regardless of the existing account's status.
//
// Example:
//
//	handler := NewRegisterUserCommandHandler(uowFactory)
//	registered, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    // email already registered
//	}
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for user registration.
// Requires a UserUoWFactory for transactional persistence.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. Checks email uniqueness, creates
// the user aggregate with a role-prefixed identifier and active status, and
// persists it within a transaction. Returns the registered user so the caller
// can report the generated identifier.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
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

	userRepo := uow.UserRepository()

	existing, err := userRepo.GetByEmail(ctx, cmd.Email())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewObjectAlreadyExistsError("email", cmd.Email())
	}

	newUser, err := user.NewUser(
		cmd.Email(),
		cmd.Password(),
		cmd.UserType(),
		cmd.FullName(),
		cmd.Phone(),
		cmd.Address(),
	)
	if err != nil {
		return nil, err
	}

	if err = userRepo.Add(ctx, newUser); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newUser, nil
}
