package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/order"
)

// PickUpOrderCommandHandler moves an assigned order to picked_up when the
// assigned agent takes custody.
type PickUpOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	effects    TransitionEffects
}

// NewPickUpOrderCommandHandler creates a handler for the pick-up transition.
func NewPickUpOrderCommandHandler(uowFactory OrderUoWFactory, effects TransitionEffects) PickUpOrderCommandHandler {
	return PickUpOrderCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
	}
}

// Handle processes the pick-up command.
func (h PickUpOrderCommandHandler) Handle(ctx context.Context, cmd PickUpOrderCommand) (*order.Order, error) {
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

	if err = o.PickUp(cmd.AgentID(), h.effects.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	from := order.Assigned
	h.effects.Record(ctx, o, cmd.AgentID(), audit.ActionPickUp,
		"delivery agent picked up the package", &from, order.PickedUp)

	return o, nil
}
