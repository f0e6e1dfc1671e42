// Package queries contains read-only operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Query handlers bypass the domain model and read projections straight from
// the database.
package queries

import (
	"errors"

	"baleconnect/internal/pkg/errs"
	"baleconnect/internal/pkg/guard"
)

var (
	ErrAuthenticateUserQueryIsNotConstructed = errors.New(
		"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
	)

	// ErrInvalidCredentials is returned when no active account matches the
	// supplied email, password, and role.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthenticateUserQuery checks a login attempt against the user directory.
// Credentials are compared as stored; the account must also carry the
// requested role and be active.
type AuthenticateUserQuery struct {
	email    string
	password string
	userType string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a login query. All three fields are
// required.
func NewAuthenticateUserQuery(email, password, userType string) (AuthenticateUserQuery, error) {
	q := AuthenticateUserQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setEmail(email),
		q.setPassword(password),
		q.setUserType(userType),
	); err != nil {
		return AuthenticateUserQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Email returns the login email.
func (q AuthenticateUserQuery) Email() string {
	return q.email
}

// Password returns the supplied password.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}

// UserType returns the role the caller is logging in as.
func (q AuthenticateUserQuery) UserType() string {
	return q.userType
}

func (q *AuthenticateUserQuery) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	q.email = email
	return nil
}

func (q *AuthenticateUserQuery) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	q.password = password
	return nil
}

func (q *AuthenticateUserQuery) setUserType(userType string) error {
	if userType == "" {
		return errs.NewValueIsRequiredError("user_type")
	}
	q.userType = userType
	return nil
}

// AuthenticateUserQueryResponse carries the profile of the authenticated
// account.
type AuthenticateUserQueryResponse struct {
	ID       string
	UserType string
	FullName string
	Email    string
	Phone    string
	Address  string
}
