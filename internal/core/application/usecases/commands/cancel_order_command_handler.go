package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels a pending or confirmed order. Reserved
// stock is not restored and a confirmed order's claim on an agent never
// exists yet, so nothing beyond the order row changes.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	effects    TransitionEffects
}

// NewCancelOrderCommandHandler creates a handler for the cancel transition.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, effects TransitionEffects) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
	}
}

// Handle processes the cancel command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	// cancel is reachable from both pending and confirmed
	from := o.Status()

	if err = o.Cancel(cmd.CallerID(), cmd.IsAdmin(), h.effects.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.effects.Record(ctx, o, cmd.CallerID(), audit.ActionCancel,
		"order cancelled", &from, order.Cancelled)

	return o, nil
}
