// Package userrepo provides data transfer objects and mapping functions for user persistence.
// This package implements the repository pattern for the user domain aggregate, handling
// the conversion between domain entities and database representations.
package userrepo

import (
	"time"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user aggregates.
// Email carries a unique index so the storage engine backs up the
// application-level duplicate check; user_type and status are indexed for the
// directory listing filters.
type UserDTO struct {
	UserID    string    `gorm:"column:user_id;primaryKey"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Password  string    `gorm:"not null"`
	UserType  string    `gorm:"column:user_type;not null;index"`
	FullName  string    `gorm:"column:full_name;not null"`
	Phone     string    `gorm:"not null"`
	Address   string
	CreatedAt time.Time `gorm:"not null"`
	Status    string    `gorm:"not null;default:active;index"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		UserID:    aggregate.ID().String(),
		Email:     aggregate.Email(),
		Password:  aggregate.Password(),
		UserType:  aggregate.UserType(),
		FullName:  aggregate.FullName(),
		Phone:     aggregate.Phone(),
		Address:   aggregate.Address(),
		CreatedAt: aggregate.CreatedAt(),
		Status:    aggregate.Status(),
	}
}

// toDomain converts a database DTO back to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.EntityIDFromString(dto.UserID)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.Email,
		dto.Password,
		dto.UserType,
		dto.FullName,
		dto.Phone,
		dto.Address,
		dto.CreatedAt,
		dto.Status,
	)
}
