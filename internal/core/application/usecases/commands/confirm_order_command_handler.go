package commands

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ConfirmOrderCommandHandler handles merchant confirmation and the best-effort
// agent assignment that follows it. The two steps form an internal saga inside
// one transaction: confirmation always happens; assignment happens only when
// the directory can claim an available agent. Each step gets its own audit
// entry because the trail is consumed as a timeline of discrete causal events.
//
// If no agent is available the order stays in confirmed status and the
// confirmation still succeeds — assignment is a follow-up, not a precondition.
type ConfirmOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	effects    TransitionEffects
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(
	uowFactory FulfillmentUoWFactory,
	effects TransitionEffects,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
	}
}

// Handle processes the confirmation command. Two concurrent confirmations of
// the same order cannot both succeed: the repository's version check fails
// the loser with a Conflict error and its claimed agent (if any) is rolled
// back with the transaction.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (*order.Order, error) {
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

	now := h.effects.Now()
	if err = o.Confirm(cmd.MerchantID(), now); err != nil {
		return nil, err
	}

	claimed, err := uow.AgentDirectory().ClaimAvailable(ctx)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if claimed != nil {
		if err = o.AssignAgent(claimed.ID(), now); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	from := order.Pending
	h.effects.Record(ctx, o, cmd.MerchantID(), audit.ActionConfirm,
		"merchant confirmed the order", &from, order.Confirmed)

	if claimed != nil {
		confirmed := order.Confirmed
		h.effects.Record(ctx, o, claimed.ID(), audit.ActionAssign,
			fmt.Sprintf("delivery agent %s assigned", claimed.Name()),
			&confirmed, order.Assigned)
	}

	return o, nil
}
