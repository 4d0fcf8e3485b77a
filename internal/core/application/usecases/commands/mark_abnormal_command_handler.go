package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/order"
)

// MarkAbnormalCommandHandler flags an active order as abnormal. The reason is
// stored on the order and becomes the audit entry detail. Stock is not
// restored and the agent, if any, stays bound to the order.
type MarkAbnormalCommandHandler struct {
	uowFactory OrderUoWFactory
	effects    TransitionEffects
}

// NewMarkAbnormalCommandHandler creates a handler for the abnormal transition.
func NewMarkAbnormalCommandHandler(uowFactory OrderUoWFactory, effects TransitionEffects) MarkAbnormalCommandHandler {
	return MarkAbnormalCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
	}
}

// Handle processes the mark-abnormal command.
func (h MarkAbnormalCommandHandler) Handle(ctx context.Context, cmd MarkAbnormalCommand) (*order.Order, error) {
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

	// abnormal is reachable from any active status
	from := o.Status()

	if err = o.MarkAbnormal(cmd.CallerID(), cmd.IsAdmin(), cmd.Reason(), h.effects.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.effects.Record(ctx, o, cmd.CallerID(), audit.ActionMarkAbnormal,
		cmd.Reason(), &from, order.Abnormal)

	return o, nil
}
