package productrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventoryStore implements InventoryStore using GORM.
type GormInventoryStore struct {
	db *gorm.DB
}

// NewGormInventoryStore creates a new GORM inventory store.
func NewGormInventoryStore(db *gorm.DB) *GormInventoryStore {
	return &GormInventoryStore{db: db}
}

// GetProduct retrieves a product by ID.
func (s *GormInventoryStore) GetProduct(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := s.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DecrementStock reserves stock with one conditional update. The stock check
// and the write are the same statement, so concurrent reservations serialize
// on the row and stock can never go negative.
func (s *GormInventoryStore) DecrementStock(ctx context.Context, productID kernel.UUID, quantity int) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity")
	}

	result := s.db.WithContext(ctx).Exec(`
		UPDATE products
		SET stock = stock - ?
		WHERE id = ? AND stock >= ?
	`, quantity, productID.Bytes(), quantity)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		// the row is missing or the remaining stock lost the race
		prod, err := s.GetProduct(ctx, productID)
		if err != nil {
			return err
		}
		return errs.NewInsufficientStockError(productID.String(), quantity, prod.Stock())
	}

	return nil
}

// RestoreStock adds quantity back to a product's stock.
func (s *GormInventoryStore) RestoreStock(ctx context.Context, productID kernel.UUID, quantity int) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity")
	}

	result := s.db.WithContext(ctx).Exec(`
		UPDATE products
		SET stock = stock + ?
		WHERE id = ?
	`, quantity, productID.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", productID.String())
	}

	return nil
}
