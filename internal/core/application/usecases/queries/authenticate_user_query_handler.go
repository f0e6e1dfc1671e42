package queries

import (
	"context"

	"baleconnect/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// AuthenticateUserQueryHandler resolves login attempts against the users
// table. Passwords are compared verbatim, matching how they are stored.
//
// Example:
//
//	handler := NewAuthenticateUserQueryHandler(db)
//	profile, err := handler.Handle(ctx, query)
//	if errors.Is(err, ErrInvalidCredentials) {
//	    // reject the login
//	}
type AuthenticateUserQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateUserQueryHandler creates a handler for login queries.
// Requires a GORM database connection for query execution.
func NewAuthenticateUserQueryHandler(db *gorm.DB) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{db: db}
}

// Handle executes the login lookup. Returns ErrInvalidCredentials when no
// active account matches all three of email, password, and role.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticateUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			user_id,
			user_type,
			full_name,
			email,
			phone,
			address
		FROM users
		WHERE email = ? AND password = ? AND user_type = ? AND status = ?
	`, query.Email(), query.Password(), query.UserType(), user.StatusActive).Rows()
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return AuthenticateUserQueryResponse{}, err
		}
		return AuthenticateUserQueryResponse{}, ErrInvalidCredentials
	}

	var resp AuthenticateUserQueryResponse
	err = rows.Scan(
		&resp.ID,
		&resp.UserType,
		&resp.FullName,
		&resp.Email,
		&resp.Phone,
		&resp.Address,
	)
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	return resp, nil
}
