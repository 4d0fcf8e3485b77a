package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// Clock supplies the current time to handlers. Injected so tests can pin
// timestamps; nil selects time.Now.
type Clock func() time.Time

// TransitionEffects bundles the side channels every transition emits after
// its transaction commits: the audit trail entry and the order-changed event.
// Both are best-effort. A failure is logged and surfaced nowhere else; the
// committed state change stands.
type TransitionEffects struct {
	auditLog  ports.AuditLog
	publisher ports.OrderEventPublisher
	clock     Clock
	logger    *slog.Logger
}

// NewTransitionEffects creates the shared post-commit effects emitter.
// publisher may be nil when no broker is configured; clock nil means time.Now.
func NewTransitionEffects(
	auditLog ports.AuditLog,
	publisher ports.OrderEventPublisher,
	clock Clock,
	logger *slog.Logger,
) TransitionEffects {
	if clock == nil {
		clock = time.Now
	}
	return TransitionEffects{
		auditLog:  auditLog,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

// Now returns the injected clock's current time.
func (e TransitionEffects) Now() time.Time {
	return e.clock()
}

// Record appends one audit entry and publishes one order-changed event for an
// already-committed transition step. fromStatus is nil only for creation.
func (e TransitionEffects) Record(
	ctx context.Context,
	o *order.Order,
	operatorID kernel.UUID,
	action string,
	detail string,
	fromStatus *order.Status,
	toStatus order.Status,
) {
	entry, err := audit.NewEntry(
		kernel.NewUUID(), o.ID(), operatorID, action, detail, fromStatus, toStatus, e.clock(),
	)
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to build audit entry",
			"order_id", o.ID().String(), "action", action, "error", err)
	} else if err = e.auditLog.Append(ctx, entry); err != nil {
		e.logger.ErrorContext(ctx, "failed to append audit entry",
			"order_id", o.ID().String(), "action", action, "error", err)
	}

	if e.publisher == nil {
		return
	}

	event := ports.OrderChangedEvent{
		OrderID:    o.ID().String(),
		OrderNo:    o.OrderNo(),
		OperatorID: operatorID.String(),
		Action:     action,
		ToStatus:   toStatus.String(),
		OccurredAt: e.clock(),
	}
	if fromStatus != nil {
		event.FromStatus = fromStatus.String()
	}
	if err := e.publisher.PublishOrderChanged(ctx, event); err != nil {
		e.logger.ErrorContext(ctx, "failed to publish order changed event",
			"order_id", o.ID().String(), "action", action, "error", err)
	}
}
