package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetAgentStatsQueryIsNotConstructed = errors.New(
	"GetAgentStatsQuery must be created via NewGetAgentStatsQuery constructor",
)

// GetAgentStatsQuery retrieves an agent's delivery workload counters.
type GetAgentStatsQuery struct {
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAgentStatsQuery creates a query for an agent's delivery stats.
func NewGetAgentStatsQuery(agentID kernel.UUID) (GetAgentStatsQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetAgentStatsQuery{}, err
	}

	return GetAgentStatsQuery{
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentStatsQueryIsNotConstructed)
}

// AgentID returns the identifier of the agent.
func (q GetAgentStatsQuery) AgentID() kernel.UUID {
	return q.agentID
}

// GetAgentStatsQueryResponse holds an agent's delivery counters. Completed
// counts signed orders; InProgress counts orders the agent currently carries.
type GetAgentStatsQueryResponse struct {
	AgentID    string `json:"agentId"`
	Total      int    `json:"total"`
	Completed  int    `json:"completed"`
	InProgress int    `json:"inProgress"`
}
