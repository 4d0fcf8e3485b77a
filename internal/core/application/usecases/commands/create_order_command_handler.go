package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles order placement. It reads the product,
// validates stock, creates the pending order with all commercial and
// logistics details snapshotted, and reserves stock — all in one transaction.
// Stock is committed at placement time, before merchant confirmation.
type CreateOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	numbers    order.NumberGenerator
	effects    TransitionEffects
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory FulfillmentUoWFactory,
	numbers order.NumberGenerator,
	effects TransitionEffects,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		numbers:    numbers,
		effects:    effects,
	}
}

// Handle processes the order placement command. The conditional stock
// decrement and the order insert share one transaction, so a lost stock race
// rolls the order back. Returns the created order in pending status.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	inventory := uow.InventoryStore()
	prod, err := inventory.GetProduct(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = prod.CanReserve(cmd.Quantity()); err != nil {
		return nil, err
	}

	now := h.effects.Now()
	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		h.numbers.Next(),
		cmd.CustomerID(),
		prod.MerchantID(),
		prod.Name(),
		cmd.Quantity(),
		prod.TotalPriceFor(cmd.Quantity()),
		order.ShippingInfo{
			Address:       cmd.ShippingAddress(),
			ReceiverName:  cmd.ReceiverName(),
			ReceiverPhone: cmd.ReceiverPhone(),
			SenderAddress: prod.SenderAddress(),
			Remark:        cmd.Remark(),
		},
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = inventory.DecrementStock(ctx, cmd.ProductID(), cmd.Quantity()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.effects.Record(ctx, newOrder, cmd.CustomerID(), audit.ActionCreate,
		fmt.Sprintf("order placed: %s x %d", prod.Name(), cmd.Quantity()),
		nil, order.Pending)

	return newOrder, nil
}
