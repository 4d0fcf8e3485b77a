package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/order"
)

// SignOrderCommandHandler moves a delivered order to signed, stamps signedAt,
// and releases the assigned agent back to available. Signing is the only
// operation that releases an agent; cancelled and abnormal endings keep the
// agent bound.
type SignOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	effects    TransitionEffects
}

// NewSignOrderCommandHandler creates a handler for the sign-off transition.
func NewSignOrderCommandHandler(uowFactory FulfillmentUoWFactory, effects TransitionEffects) SignOrderCommandHandler {
	return SignOrderCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
	}
}

// Handle processes the sign command. The order update and the agent release
// share one transaction.
func (h SignOrderCommandHandler) Handle(ctx context.Context, cmd SignOrderCommand) (*order.Order, error) {
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

	if err = o.Sign(cmd.CustomerID(), h.effects.Now()); err != nil {
		return nil, err
	}

	// a delivered order always has an agent; release them with the sign-off
	if agentID := o.AgentID(); agentID != nil {
		if err = uow.AgentDirectory().Release(ctx, *agentID); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	from := order.Delivered
	h.effects.Record(ctx, o, cmd.CustomerID(), audit.ActionSign,
		"customer signed off the delivery", &from, order.Signed)

	return o, nil
}
