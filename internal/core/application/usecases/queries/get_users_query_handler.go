package queries

import (
	"context"

	"baleconnect/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// GetUsersQueryHandler lists active users for participant pickers, sorted
// by name.
type GetUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetUsersQueryHandler creates a handler for user listing queries.
// Requires a GORM database connection for query execution.
func NewGetUsersQueryHandler(db *gorm.DB) GetUsersQueryHandler {
	return GetUsersQueryHandler{db: db}
}

// Handle executes the listing. Only active accounts are returned, ordered
// by full name.
func (h GetUsersQueryHandler) Handle(
	ctx context.Context,
	query GetUsersQuery,
) ([]GetUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	q := `
		SELECT
			user_id,
			full_name,
			phone,
			email,
			user_type
		FROM users
		WHERE status = ?
	`
	args := []any{user.StatusActive}

	if query.UserType() != "" {
		q += " AND user_type = ?"
		args = append(args, query.UserType())
	}

	q += " ORDER BY full_name"

	rows, err := h.db.WithContext(ctx).Raw(q, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]GetUsersQueryResponse, 0)

	for rows.Next() {
		var resp GetUsersQueryResponse

		err = rows.Scan(
			&resp.ID,
			&resp.FullName,
			&resp.Phone,
			&resp.Email,
			&resp.UserType,
		)
		if err != nil {
			return nil, err
		}

		users = append(users, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
