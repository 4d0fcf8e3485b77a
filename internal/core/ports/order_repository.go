// Package ports defines the interfaces between the order lifecycle
// orchestrator and its collaborators: the order repository it owns, the
// inventory store and agent directory it mutates, the audit log it appends
// to, and the event publisher it notifies. These contracts enable dependency
// inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. Returns a Conflict error when the order
	// number collides with an existing one.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order using the aggregate's
	// version for an optimistic concurrency check. Returns a Conflict error
	// when a concurrent transition on the same order committed first.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its surrogate identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by its human-facing order number.
	GetByNumber(ctx context.Context, orderNo string) (*order.Order, error)
}
