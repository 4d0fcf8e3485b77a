// Package agentrepo implements the agent directory port. Agent accounts are
// owned elsewhere; this adapter reads them and flips availability around
// assignment and sign-off.
package agentrepo

import (
	"fulfillment/internal/core/domain/model/agent"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgentDTO represents the database structure of a delivery agent row.
type AgentDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Availability string `gorm:"size:16;index"`
	Active       bool
}

// TableName specifies the database table name for agent entities.
func (AgentDTO) TableName() string {
	return "agents"
}

func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	availability, err := agent.AvailabilityFromString(dto.Availability)
	if err != nil {
		return nil, err
	}

	return agent.RestoreAgent(id, dto.Name, availability, dto.Active)
}
