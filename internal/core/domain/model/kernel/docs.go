// Package kernel contains shared value objects used across all domain models.
//
// The package provides:
//   - EntityID: a role-prefixed, time-ordered identifier for users and orders
//
// Value objects in this package are immutable and validated at construction.
// The zero value of each type is invalid and detectable via Validate.
package kernel
