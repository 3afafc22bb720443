// Package services holds the domain services of the pressing.
//
// OrderLifecycle owns the status graph of orders: it validates transitions
// against roles and business rules, applies them to a fresh snapshot and runs
// the side effects attached to some edges (timestamps, customer
// notifications).
//
//	pending      -> in_progress  notify "order_started"
//	in_progress  -> ready        completedAt = now, notify "order_ready"
//	ready        -> delivered    deliveredAt = now, notify "order_delivered"
//
// Other edges have no side effect.
package services
