package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/order"
)

// DeliverOrderCommandHandler moves an in-transit order to delivered and
// stamps deliveredAt. The agent stays busy until the customer signs.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	effects    TransitionEffects
}

// NewDeliverOrderCommandHandler creates a handler for the deliver transition.
func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory, effects TransitionEffects) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
	}
}

// Handle processes the deliver command.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) (*order.Order, error) {
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

	if err = o.Deliver(cmd.AgentID(), h.effects.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	from := order.InTransit
	h.effects.Record(ctx, o, cmd.AgentID(), audit.ActionDeliver,
		"delivery agent confirmed arrival", &from, order.Delivered)

	return o, nil
}
