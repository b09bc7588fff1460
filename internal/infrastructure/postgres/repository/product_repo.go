package repository

import (
	"context"

	"github.com/sellora/order-service/internal/domain"
	"github.com/sellora/order-service/internal/infrastructure/postgres/mappers"
	"github.com/sellora/order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductRepository implements domain.ProductCatalog. The locking methods
// only make sense on a transaction-bound handle; the unit of work provides
// one.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) LockForUpdate(ctx context.Context, productID, storeID string) (*domain.Product, error) {
	var productModel models.ProductModel
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND store_id = ? AND is_active = ?", productID, storeID, true).
		First(&productModel).Error
	if err != nil {
		return nil, translate(err)
	}
	return mappers.ToDomainProduct(&productModel), nil
}

func (r *ProductRepository) Lock(ctx context.Context, productID string) (*domain.Product, error) {
	var productModel models.ProductModel
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&productModel, "id = ?", productID).Error
	if err != nil {
		return nil, translate(err)
	}
	return mappers.ToDomainProduct(&productModel), nil
}

func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) error {
	err := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"stock": product.Stock,
			"sold":  product.Sold,
		}).Error
	return translate(err)
}
