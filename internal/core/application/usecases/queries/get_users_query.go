package queries

import (
	"errors"

	"baleconnect/internal/pkg/guard"
)

var (
	ErrGetUsersQueryIsNotConstructed = errors.New(
		"GetUsersQuery must be created via NewGetUsersQuery constructor",
	)
)

// GetUsersQuery lists active users, optionally narrowed to one role. An
// empty user type means all roles. Deactivated accounts never appear.
//
// Example:
//
//	query := NewGetUsersQuery("farmer")
//	handler := NewGetUsersQueryHandler(db)
//
//	farmers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list users: %w", err)
//	}
type GetUsersQuery struct {
	userType string

	guard guard.ConstructorGuard
}

// NewGetUsersQuery creates a user listing query. Pass an empty userType to
// list every role.
func NewGetUsersQuery(userType string) GetUsersQuery {
	return GetUsersQuery{
		userType: userType,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}

// UserType returns the role filter, empty when unfiltered.
func (q GetUsersQuery) UserType() string {
	return q.userType
}

// GetUsersQueryResponse is one user directory entry.
type GetUsersQueryResponse struct {
	ID       string
	FullName string
	Phone    string
	Email    string
	UserType string
}
