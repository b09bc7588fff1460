package repository

import (
	"context"

	"github.com/sellora/order-service/internal/domain"
	"github.com/sellora/order-service/internal/infrastructure/postgres/mappers"
	"github.com/sellora/order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	paymentModel := mappers.ToGORMPayment(payment)
	if err := r.db.WithContext(ctx).Create(paymentModel).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	var paymentModel models.PaymentModel
	err := r.db.WithContext(ctx).
		Preload("Order").
		First(&paymentModel, "id = ?", paymentID).Error
	if err != nil {
		return nil, translate(err)
	}
	return mappers.ToDomainPayment(&paymentModel), nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, paymentID string, status domain.PaymentStatus) error {
	err := r.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Where("id = ?", paymentID).
		Update("status", string(status)).Error
	return translate(err)
}

func (r *PaymentRepository) HasCompletedForOrder(ctx context.Context, orderID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Where("order_id = ? AND status = ?", orderID, string(domain.PaymentCompleted)).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (r *PaymentRepository) List(ctx context.Context, filter domain.PaymentFilter) ([]*domain.Payment, error) {
	query := r.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Preload("Order").
		Order("payments.created_at DESC")

	if filter.OrderID != "" {
		query = query.Where("payments.order_id = ?", filter.OrderID)
	}
	if filter.CustomerID != "" {
		query = query.
			Joins("JOIN orders ON orders.id = payments.order_id").
			Where("orders.customer_id = ?", filter.CustomerID)
	}

	var paymentModels []models.PaymentModel
	if err := query.Find(&paymentModels).Error; err != nil {
		return nil, translate(err)
	}

	payments := make([]*domain.Payment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = mappers.ToDomainPayment(&paymentModels[i])
	}
	return payments, nil
}
