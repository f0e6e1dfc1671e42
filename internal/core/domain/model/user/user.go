package user

import (
	"errors"
	"time"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// StatusActive is the default status for newly registered users. Only active
// users are authenticatable and listable.
const StatusActive = "active"

// User represents a registered participant in the marketplace.
//
// The credential is stored and compared as an opaque string: the original
// system ships plaintext passwords end to end, and the authentication contract
// is an exact string match. This is reproduced for behavioral fidelity and is
// not suitable for production use without a salted-hash credential scheme.
//
// User follows these invariants:
//   - Must have a valid unique identifier, prefixed with the user's role
//   - Email, password, role, full name, and phone must be non-empty
//   - Address is optional free text
//   - Can only be created through NewUser or RestoreUser
type User struct {
	id        kernel.EntityID
	email     string
	password  string
	userType  string
	fullName  string
	phone     string
	address   string
	createdAt time.Time
	status    string

	isConstructed bool
}

// NewUser registers a new user with a freshly generated identifier prefixed
// with the user's role, status set to active, and createdAt set to now.
// Returns a validation error if any required field is empty.
func NewUser(email, password, userType, fullName, phone, address string) (*User, error) {
	u := &User{
		address:       address,
		createdAt:     time.Now(),
		status:        StatusActive,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setEmail(email),
		u.setPassword(password),
		u.setUserType(userType),
		u.setFullName(fullName),
		u.setPhone(phone),
	); err != nil {
		return nil, err
	}

	u.id = kernel.NewEntityID(userType)
	return u, nil
}

// RestoreUser reconstructs a user from persistence without generating a new
// identifier or overriding timestamps.
func RestoreUser(
	id kernel.EntityID,
	email, password, userType, fullName, phone, address string,
	createdAt time.Time,
	status string,
) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	u := &User{
		id:            id,
		address:       address,
		createdAt:     createdAt,
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setEmail(email),
		u.setPassword(password),
		u.setUserType(userType),
		u.setFullName(fullName),
		u.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.EntityID {
	return u.id
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// Password returns the user's opaque credential string.
func (u *User) Password() string {
	return u.password
}

// UserType returns the user's role (customer, farmer, or baler in practice).
func (u *User) UserType() string {
	return u.userType
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.fullName
}

// Phone returns the user's contact phone number.
func (u *User) Phone() string {
	return u.phone
}

// Address returns the user's address, which may be empty.
func (u *User) Address() string {
	return u.address
}

// CreatedAt returns the registration timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// Status returns the user's account status.
func (u *User) Status() string {
	return u.status
}

// IsActive reports whether the user can authenticate and appear in listings.
func (u *User) IsActive() bool {
	return u.status == StatusActive
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.password = password
	return nil
}

func (u *User) setUserType(userType string) error {
	if userType == "" {
		return errs.NewValueIsRequiredError("user_type")
	}
	u.userType = userType
	return nil
}

func (u *User) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("full_name")
	}
	u.fullName = fullName
	return nil
}

func (u *User) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	u.phone = phone
	return nil
}
