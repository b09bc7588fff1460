package repository

import (
	"context"

	"github.com/sellora/order-service/internal/domain"
	"github.com/sellora/order-service/internal/infrastructure/postgres/mappers"
	"github.com/sellora/order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type StoreRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) GetActiveStore(ctx context.Context, storeID string) (*domain.Store, error) {
	var storeModel models.StoreModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", storeID, true).
		First(&storeModel).Error
	if err != nil {
		return nil, translate(err)
	}
	return mappers.ToDomainStore(&storeModel), nil
}

func (r *StoreRepository) GetStoreByOwner(ctx context.Context, ownerID string) (*domain.Store, error) {
	var storeModel models.StoreModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&storeModel).Error
	if err != nil {
		return nil, translate(err)
	}
	return mappers.ToDomainStore(&storeModel), nil
}

func (r *StoreRepository) Save(ctx context.Context, store *domain.Store) error {
	err := r.db.WithContext(ctx).
		Model(&models.StoreModel{}).
		Where("id = ?", store.ID).
		Updates(map[string]any{
			"total_orders":   store.TotalOrders,
			"total_products": store.TotalProducts,
		}).Error
	return translate(err)
}
