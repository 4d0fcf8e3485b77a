package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each operation.
// This ensures proper isolation between concurrent transitions.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents the transactional boundary of one transition. Order,
// inventory, and agent mutations for a transition either all commit or none
// do; the audit log and event publisher sit outside this boundary on purpose.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// InventoryStore returns an InventoryStore bound to the current transaction.
	InventoryStore() InventoryStore

	// AgentDirectory returns an AgentDirectory bound to the current transaction.
	AgentDirectory() AgentDirectory
}
