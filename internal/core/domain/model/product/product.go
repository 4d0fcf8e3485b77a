// Package product provides the inventory view the orchestrator works with: a
// product's stock count, price, and the merchant details snapshotted onto new
// orders. Product lifecycle (creation, pricing, deletion) is owned elsewhere;
// the orchestrator only reads products and reserves stock.
package product

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product was not created
// through RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via RestoreProduct")

// Product is the inventory record referenced at order creation. Stock is a
// non-negative count; the sender address is the merchant's ship-from address
// snapshotted onto orders.
type Product struct {
	id            kernel.UUID
	merchantID    kernel.UUID
	name          string
	price         int64
	stock         int
	senderAddress string

	isConstructed bool
}

// RestoreProduct reconstructs a product loaded from the inventory store.
func RestoreProduct(
	id kernel.UUID,
	merchantID kernel.UUID,
	name string,
	price int64,
	stock int,
	senderAddress string,
) (*Product, error) {
	if err := errors.Join(id.Validate(), merchantID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("product name")
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is negative", price))
	}
	if stock < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}

	return &Product{
		id:            id,
		merchantID:    merchantID,
		name:          name,
		price:         price,
		stock:         stock,
		senderAddress: senderAddress,
		isConstructed: true,
	}, nil
}

// Validate ensures the Product was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// MerchantID returns the identifier of the merchant owning the product.
func (p *Product) MerchantID() kernel.UUID {
	return p.merchantID
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current unit price in cents.
func (p *Product) Price() int64 {
	return p.price
}

// Stock returns the stock count as of the read.
func (p *Product) Stock() int {
	return p.stock
}

// SenderAddress returns the merchant's ship-from address.
func (p *Product) SenderAddress() string {
	return p.senderAddress
}

// CanReserve checks the requested quantity against the stock read. The
// authoritative check is the store's conditional decrement; this pre-check
// exists to fail fast with a typed error before creating the order record.
func (p *Product) CanReserve(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	if p.stock < quantity {
		return errs.NewInsufficientStockError(p.id.String(), quantity, p.stock)
	}
	return nil
}

// TotalPriceFor returns the total price for the given quantity at the current
// unit price. The result is snapshotted onto the order and never recomputed.
func (p *Product) TotalPriceFor(quantity int) int64 {
	return p.price * int64(quantity)
}
