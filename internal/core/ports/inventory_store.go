package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
)

// InventoryStore defines the contract with the external inventory collaborator.
// The orchestrator reads products and reserves stock; it does not own product
// lifecycle.
type InventoryStore interface {
	// GetProduct retrieves a product by identifier, including the merchant
	// details snapshotted onto new orders.
	GetProduct(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// DecrementStock atomically decrements stock by quantity if and only if
	// enough stock remains; the check and the write are a single indivisible
	// operation. Returns an InsufficientStock error when the condition fails,
	// so two concurrent creations can never drive stock negative.
	DecrementStock(ctx context.Context, productID kernel.UUID, quantity int) error

	// RestoreStock adds quantity back to a product's stock. No lifecycle
	// operation calls it today (cancellation deliberately keeps the
	// reservation); it exists for reconciliation flows.
	RestoreStock(ctx context.Context, productID kernel.UUID, quantity int) error
}
