package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents the assigned agent confirming arrival of an
// in-transit order.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command for an agent to confirm delivery.
func NewDeliverOrderCommand(agentID, orderID kernel.UUID) (DeliverOrderCommand, error) {
	if err := errors.Join(agentID.Validate(), orderID.Validate()); err != nil {
		return DeliverOrderCommand{}, err
	}

	return DeliverOrderCommand{
		agentID: agentID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// AgentID returns the acting agent's identifier.
func (c DeliverOrderCommand) AgentID() kernel.UUID {
	return c.agentID
}

// OrderID returns the identifier of the delivered order.
func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
