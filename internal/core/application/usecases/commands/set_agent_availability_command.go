package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/agent"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrSetAgentAvailabilityCommandIsNotConstructed = errors.New(
	"SetAgentAvailabilityCommand must be created via NewSetAgentAvailabilityCommand constructor",
)

// SetAgentAvailabilityCommand represents an agent toggling their own
// availability between available and offline. Busy agents cannot change it;
// only signing an order releases them.
type SetAgentAvailabilityCommand struct { //nolint:recvcheck //using for validation
	agentID      kernel.UUID
	availability agent.Availability

	guard guard.ConstructorGuard
}

// NewSetAgentAvailabilityCommand creates a command to change agent availability.
func NewSetAgentAvailabilityCommand(agentID kernel.UUID, availability agent.Availability) (SetAgentAvailabilityCommand, error) {
	if err := errors.Join(agentID.Validate(), availability.Validate()); err != nil {
		return SetAgentAvailabilityCommand{}, err
	}

	return SetAgentAvailabilityCommand{
		agentID:      agentID,
		availability: availability,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetAgentAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetAgentAvailabilityCommandIsNotConstructed)
}

// AgentID returns the identifier of the agent.
func (c SetAgentAvailabilityCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Availability returns the requested availability.
func (c SetAgentAvailabilityCommand) Availability() agent.Availability {
	return c.availability
}
