package commands

import (
	"errors"

	"baleconnect/internal/pkg/errs"
	"baleconnect/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
)

// RegisterUserCommand represents a request to register a new user in the
// directory. Email, password, role, full name, and phone are required;
// address is optional free text.
//
// Example:
//
//	cmd, err := NewRegisterUserCommand("a@test.com", "pw", "customer", "A", "111", "")
//	if err != nil {
//	    return fmt.Errorf("invalid registration data: %w", err)
//	}
//
//	handler := NewRegisterUserCommandHandler(uowFactory)
//	registered, err := handler.Handle(ctx, cmd)
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string
	userType string
	fullName string
	phone    string
	address  string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new user.
// Validates that all required fields are non-empty.
func NewRegisterUserCommand(email, password, userType, fullName, phone, address string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setUserType(userType),
		cmd.setFullName(fullName),
		cmd.setPhone(phone),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Email returns the registration email address.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the opaque credential string.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// UserType returns the requested role.
func (c RegisterUserCommand) UserType() string {
	return c.userType
}

// FullName returns the user's display name.
func (c RegisterUserCommand) FullName() string {
	return c.fullName
}

// Phone returns the contact phone number.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

// Address returns the optional address, which may be empty.
func (c RegisterUserCommand) Address() string {
	return c.address
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) setUserType(userType string) error {
	if userType == "" {
		return errs.NewValueIsRequiredError("user_type")
	}
	c.userType = userType
	return nil
}

func (c *RegisterUserCommand) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("full_name")
	}
	c.fullName = fullName
	return nil
}

func (c *RegisterUserCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
