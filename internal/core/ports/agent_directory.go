package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/agent"
	"fulfillment/internal/core/domain/model/kernel"
)

// AgentDirectory defines the contract with the external delivery-agent
// collaborator. The orchestrator claims and releases agents around order
// assignment; it does not own agent accounts.
type AgentDirectory interface {
	// Get retrieves an agent by identifier.
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)

	// ClaimAvailable finds one available, active agent and marks them busy as
	// a single indivisible claim, so two concurrent confirmations can never
	// select the same agent. There is no ranking; the first match wins.
	// Returns an ObjectNotFound error when no agent is available.
	ClaimAvailable(ctx context.Context) (*agent.Agent, error)

	// Release returns a busy agent to available. Called exactly when the
	// agent's order is signed.
	Release(ctx context.Context, id kernel.UUID) error

	// SetAvailability applies an agent's self-service status change (going
	// offline, coming back). Inactive agents are rejected.
	SetAvailability(ctx context.Context, id kernel.UUID, availability agent.Availability) error
}
