package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrStartTransitCommandIsNotConstructed = errors.New(
	"StartTransitCommand must be created via NewStartTransitCommand constructor",
)

// StartTransitCommand represents the assigned agent starting the delivery
// run for a picked-up order.
type StartTransitCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartTransitCommand creates a command for an agent to start transit.
func NewStartTransitCommand(agentID, orderID kernel.UUID) (StartTransitCommand, error) {
	if err := errors.Join(agentID.Validate(), orderID.Validate()); err != nil {
		return StartTransitCommand{}, err
	}

	return StartTransitCommand{
		agentID: agentID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartTransitCommand) Validate() error {
	return c.guard.Validate(ErrStartTransitCommandIsNotConstructed)
}

// AgentID returns the acting agent's identifier.
func (c StartTransitCommand) AgentID() kernel.UUID {
	return c.agentID
}

// OrderID returns the identifier of the order entering transit.
func (c StartTransitCommand) OrderID() kernel.UUID {
	return c.orderID
}
