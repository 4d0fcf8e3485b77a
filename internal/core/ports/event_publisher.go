package ports

import (
	"context"
	"time"
)

// OrderChangedEvent notifies downstream consumers that an order accepted a
// transition. It carries only identifiers and the status pair; consumers
// fetch details through the read side.
type OrderChangedEvent struct {
	OrderID    string    `json:"orderId"`
	OrderNo    string    `json:"orderNo"`
	OperatorID string    `json:"operatorId"`
	Action     string    `json:"action"`
	FromStatus string    `json:"fromStatus,omitempty"`
	ToStatus   string    `json:"toStatus"`
	OccurredAt time.Time `json:"occurredAt"`
}

// OrderEventPublisher publishes order-changed events after a transition
// commits. Like the audit log, publishing is fire-and-forget: failures are
// logged, never propagated, and never roll back state.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, event OrderChangedEvent) error
}
