package kernel

import (
	"encoding/hex"
	"fmt"
	"time"

	"baleconnect/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrEntityIDIsNotConstructed indicates that an EntityID was not properly
// initialized through NewEntityID or EntityIDFromString.
var ErrEntityIDIsNotConstructed = errs.NewValueIsRequiredError(
	"EntityID must be created via NewEntityID or EntityIDFromString",
)

// idTimestampLayout renders the generation time down to seconds; microseconds
// are appended separately since time.Format has no padded-microsecond verb.
const idTimestampLayout = "20060102150405"

// EntityID is a value object identifying users and orders. IDs are strings of
// the form
//
//	<prefix>_<yyyymmddhhmmss><microseconds>_<random>
//
// for example "customer_20240101123045123456_9f86d081". The leading prefix
// names the role of the entity (customer, farmer, baler, order), the timestamp
// keeps IDs of the same kind time-ordered, and the random suffix makes
// concurrent generation collision-resistant.
//
// EntityIDFromString accepts any non-empty string: the API allows callers to
// reference users by externally chosen identifiers, so no structure beyond
// non-emptiness is enforced on inbound IDs.
type EntityID struct {
	value string
}

// NewEntityID generates a fresh identifier, optionally prefixed.
// An empty prefix yields "<timestamp>_<random>".
func NewEntityID(prefix string) EntityID {
	now := time.Now()
	stamp := fmt.Sprintf("%s%06d", now.Format(idTimestampLayout), now.Nanosecond()/1000)

	raw := uuid.New()
	suffix := hex.EncodeToString(raw[:4])

	if prefix == "" {
		return EntityID{value: stamp + "_" + suffix}
	}
	return EntityID{value: prefix + "_" + stamp + "_" + suffix}
}

// EntityIDFromString wraps an externally supplied identifier.
// Returns an error if the string is empty.
func EntityIDFromString(s string) (EntityID, error) {
	if s == "" {
		return EntityID{}, errs.NewValueIsRequiredError("id")
	}
	return EntityID{value: s}, nil
}

// String returns the identifier as stored and transmitted.
func (id EntityID) String() string {
	return id.value
}

// IsEqual compares two identifiers by value.
func (id EntityID) IsEqual(other EntityID) bool {
	return id.value == other.value
}

// Validate checks that the EntityID was constructed and is non-empty.
func (id EntityID) Validate() error {
	if id.value == "" {
		return ErrEntityIDIsNotConstructed
	}
	return nil
}
