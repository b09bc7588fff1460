package repository

import (
	"context"

	"github.com/sellora/order-service/internal/domain"
	"github.com/sellora/order-service/internal/infrastructure/postgres/mappers"
	"github.com/sellora/order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type AddressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) GetOwnedAddress(ctx context.Context, addressID, customerID string) (*domain.Address, error) {
	var addressModel models.AddressModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", addressID, customerID).
		First(&addressModel).Error
	if err != nil {
		return nil, translate(err)
	}
	return mappers.ToDomainAddress(&addressModel), nil
}
