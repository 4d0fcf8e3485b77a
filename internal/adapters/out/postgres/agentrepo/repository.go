package agentrepo

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/agent"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAgentDirectory implements AgentDirectory using GORM.
type GormAgentDirectory struct {
	db *gorm.DB
}

// NewGormAgentDirectory creates a new GORM agent directory.
func NewGormAgentDirectory(db *gorm.DB) *GormAgentDirectory {
	return &GormAgentDirectory{db: db}
}

// Get retrieves an agent by ID.
func (d *GormAgentDirectory) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AgentDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("agent", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ClaimAvailable marks one available, active agent busy and returns them.
// The claim is a single statement: the subselect locks the chosen row with
// SKIP LOCKED, so two concurrent confirmations always pick different agents
// or none. There is no ranking; the first available row wins.
func (d *GormAgentDirectory) ClaimAvailable(ctx context.Context) (*agent.Agent, error) {
	row := d.db.WithContext(ctx).Raw(`
		UPDATE agents
		SET availability = ?
		WHERE id = (
			SELECT id FROM agents
			WHERE availability = ? AND active
			ORDER BY id
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, name, availability, active
	`, agent.Busy.String(), agent.Available.String()).Row()

	var dto AgentDTO
	var id uuid.UUID
	err := row.Scan(&id, &dto.Name, &dto.Availability, &dto.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("available agent", nil)
	}
	if err != nil {
		return nil, err
	}
	dto.ID = id

	return toDomain(dto)
}

// Release returns a busy agent to available.
func (d *GormAgentDirectory) Release(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := d.db.WithContext(ctx).Exec(`
		UPDATE agents
		SET availability = ?
		WHERE id = ? AND availability = ?
	`, agent.Available.String(), id.Bytes(), agent.Busy.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("agent", id.String())
	}

	return nil
}

// SetAvailability applies an agent's self-service status change. Busy agents
// and inactive accounts are rejected; release happens only through sign-off.
func (d *GormAgentDirectory) SetAvailability(ctx context.Context, id kernel.UUID, availability agent.Availability) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := availability.Validate(); err != nil {
		return err
	}

	result := d.db.WithContext(ctx).Exec(`
		UPDATE agents
		SET availability = ?
		WHERE id = ? AND active AND availability != ?
	`, availability.String(), id.Bytes(), agent.Busy.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("agent", id.String())
	}

	return nil
}
