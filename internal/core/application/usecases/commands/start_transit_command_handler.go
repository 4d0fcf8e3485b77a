package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/order"
)

// StartTransitCommandHandler moves a picked-up order to in_transit.
type StartTransitCommandHandler struct {
	uowFactory OrderUoWFactory
	effects    TransitionEffects
}

// NewStartTransitCommandHandler creates a handler for the transit transition.
func NewStartTransitCommandHandler(uowFactory OrderUoWFactory, effects TransitionEffects) StartTransitCommandHandler {
	return StartTransitCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
	}
}

// Handle processes the start-transit command.
func (h StartTransitCommandHandler) Handle(ctx context.Context, cmd StartTransitCommand) (*order.Order, error) {
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

	if err = o.StartTransit(cmd.AgentID(), h.effects.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	from := order.PickedUp
	h.effects.Record(ctx, o, cmd.AgentID(), audit.ActionStartTransit,
		"delivery agent started transit", &from, order.InTransit)

	return o, nil
}
