package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/agent"
)

// SetAgentAvailabilityCommandHandler applies an agent's self-service status
// change. The domain rule check (busy agents cannot switch) runs against the
// loaded agent before the directory write.
type SetAgentAvailabilityCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewSetAgentAvailabilityCommandHandler creates a handler for availability changes.
func NewSetAgentAvailabilityCommandHandler(uowFactory FulfillmentUoWFactory) SetAgentAvailabilityCommandHandler {
	return SetAgentAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability change command.
func (h SetAgentAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetAgentAvailabilityCommand) (*agent.Agent, error) {
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

	directory := uow.AgentDirectory()
	a, err := directory.Get(ctx, cmd.AgentID())
	if err != nil {
		return nil, err
	}

	if err = a.SetAvailability(cmd.Availability()); err != nil {
		return nil, err
	}

	if err = directory.SetAvailability(ctx, a.ID(), a.Availability()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return a, nil
}
