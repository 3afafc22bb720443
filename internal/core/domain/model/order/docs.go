// Package order models a pressing order and its lifecycle.
//
// The package includes:
//   - Order: the aggregate root (identity, service lines, audit trail)
//   - Status: the closed set of lifecycle states with their transition graph,
//     display labels, permissions and UI actions
//   - the per-edge transition rules (assignee and services to start, all
//     services done to be ready, customer notified to deliver)
//
// Key business rules:
//   - only managers and admins move orders between states
//   - delivered orders never change again
//   - every successful transition appends exactly one StatusChange
//   - Transition returns a new Order, the input snapshot is never mutated
package order
