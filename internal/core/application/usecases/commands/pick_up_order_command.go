package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrPickUpOrderCommandIsNotConstructed = errors.New(
	"PickUpOrderCommand must be created via NewPickUpOrderCommand constructor",
)

// PickUpOrderCommand represents the assigned agent taking custody of the
// package.
type PickUpOrderCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPickUpOrderCommand creates a command for an agent to pick up an order.
func NewPickUpOrderCommand(agentID, orderID kernel.UUID) (PickUpOrderCommand, error) {
	if err := errors.Join(agentID.Validate(), orderID.Validate()); err != nil {
		return PickUpOrderCommand{}, err
	}

	return PickUpOrderCommand{
		agentID: agentID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PickUpOrderCommand) Validate() error {
	return c.guard.Validate(ErrPickUpOrderCommandIsNotConstructed)
}

// AgentID returns the acting agent's identifier.
func (c PickUpOrderCommand) AgentID() kernel.UUID {
	return c.agentID
}

// OrderID returns the identifier of the order to pick up.
func (c PickUpOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
