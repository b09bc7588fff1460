package repository

import (
	"context"

	"github.com/sellora/order-service/internal/domain"
	"github.com/sellora/order-service/internal/infrastructure/postgres/mappers"
	"github.com/sellora/order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.db.WithContext(ctx).Create(orderModel).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	var orderModel models.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		Preload("Store").
		Preload("ShippingAddress").
		First(&orderModel, "id = ?", orderID).Error
	if err != nil {
		return nil, translate(err)
	}
	return mappers.ToDomainOrder(&orderModel), nil
}

// LockForUpdate holds an exclusive lock on the order row until the enclosing
// transaction ends. Items are needed by cancellation, so they ride along;
// the locking clause applies to the orders row only.
func (r *OrderRepository) LockForUpdate(ctx context.Context, orderID string) (*domain.Order, error) {
	var orderModel models.OrderModel
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&orderModel, "id = ?", orderID).Error
	if err != nil {
		return nil, translate(err)
	}
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&orderModel.Items).Error; err != nil {
		return nil, translate(err)
	}
	return mappers.ToDomainOrder(&orderModel), nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Update("status", string(status)).Error
	return translate(err)
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	return r.list(ctx, "customer_id = ?", customerID)
}

func (r *OrderRepository) ListByStore(ctx context.Context, storeID string) ([]*domain.Order, error) {
	return r.list(ctx, "store_id = ?", storeID)
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]*domain.Order, error) {
	return r.list(ctx, "")
}

func (r *OrderRepository) list(ctx context.Context, cond string, args ...any) ([]*domain.Order, error) {
	query := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Store").
		Preload("ShippingAddress").
		Order("created_at DESC")
	if cond != "" {
		query = query.Where(cond, args...)
	}

	var orderModels []models.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, translate(err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}
	return orders, nil
}
