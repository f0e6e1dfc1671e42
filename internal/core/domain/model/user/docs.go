// Package user provides the User aggregate for the BaleConnect directory.
//
// A user is one of the three roles in the marketplace: a customer placing bale
// orders, a farmer accepting them, or a baler performing the baling work. The
// role is an open string rather than an enum, matching the wire contract.
//
// Key business rules:
//   - Email, password, role, full name, and phone are required at registration
//   - Email is unique across all users regardless of status (enforced by the
//     registration use case together with the storage layer)
//   - New users start in the "active" status; only active users can
//     authenticate or appear in listings
//   - Users are never deleted by the core
package user
