// Package order provides the Order aggregate for the bale marketplace.
//
// The package includes:
//   - Order: the aggregate root managing order identity, properties, and lifecycle
//   - Status: a string-backed status value tracking fulfillment progress
//
// Key business rules:
//   - Orders must have a customer, bale type, positive quantity, delivery
//     address, and pickup date at creation
//   - New orders start in the "pending" status with no farmer or baler
//   - Accept, AssignBaler, and ChangeStatus overwrite the corresponding fields
//     unconditionally; the lifecycle is deliberately permissive and performs no
//     transition-order validation, since the API serves trusted internal
//     clients and tightening it would change observable behavior
//   - Transitioning to "delivered" stamps the delivery timestamp
package order
