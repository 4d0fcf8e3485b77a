// Package productrepo implements the inventory store port. The orchestrator
// does not own the products table; it reads product rows and adjusts stock
// with conditional updates.
package productrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure of a product row.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID    uuid.UUID `gorm:"type:uuid;index"`
	Name          string
	Price         int64
	Stock         int
	SenderAddress string
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, merchantID, dto.Name, dto.Price, dto.Stock, dto.SenderAddress)
}
