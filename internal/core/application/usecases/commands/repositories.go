// Package commands contains the orchestrator's write operations: one command
// and handler per lifecycle transition. All handlers follow the same pattern:
// validate the command, run the transition inside a unit of work, and emit
// the post-commit side channels (audit trail, order-changed event).
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across collaborator boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// InventoryStoreFactory provides access to the inventory store within a transaction.
	InventoryStoreFactory interface {
		InventoryStore() ports.InventoryStore
	}

	// AgentDirectoryFactory provides access to the agent directory within a transaction.
	AgentDirectoryFactory interface {
		AgentDirectory() ports.AgentDirectory
	}

	// OrderUoW manages transactions for order-only transitions (pick up,
	// start transit, deliver, cancel, mark abnormal).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// FulfillmentUoW manages transactions that touch collaborators beyond the
	// order itself: creation (inventory), confirmation (agent claim), and
	// signing (agent release).
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		InventoryStoreFactory
		AgentDirectoryFactory
	}

	// FulfillmentUoWFactory creates new cross-collaborator unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}
)
