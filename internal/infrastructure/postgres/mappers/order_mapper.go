package mappers

import (
	"github.com/sellora/order-service/internal/domain"
	"github.com/sellora/order-service/internal/infrastructure/postgres/models"
)

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	m := &models.OrderModel{
		ID:                order.ID,
		OrderNumber:       order.OrderNumber,
		Status:            string(order.Status),
		Subtotal:          order.Subtotal,
		ShippingCost:      order.ShippingCost,
		Discount:          order.Discount,
		Commission:        order.Commission,
		Total:             order.Total,
		Notes:             order.Notes,
		CustomerID:        order.CustomerID,
		StoreID:           order.StoreID,
		ShippingAddressID: order.ShippingAddressID,
	}
	m.Items = make([]models.OrderItemModel, len(order.Items))
	for i, item := range order.Items {
		m.Items[i] = models.OrderItemModel{
			ID:        item.ID,
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Discount:  item.Discount,
			Total:     item.Total,
		}
	}
	return m
}

func ToDomainOrder(m *models.OrderModel) *domain.Order {
	order := &domain.Order{
		ID:                m.ID,
		OrderNumber:       m.OrderNumber,
		Status:            domain.OrderStatus(m.Status),
		Subtotal:          m.Subtotal,
		ShippingCost:      m.ShippingCost,
		Discount:          m.Discount,
		Commission:        m.Commission,
		Total:             m.Total,
		Notes:             m.Notes,
		CustomerID:        m.CustomerID,
		StoreID:           m.StoreID,
		ShippingAddressID: m.ShippingAddressID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	order.Items = make([]domain.OrderItem, len(m.Items))
	for i, item := range m.Items {
		order.Items[i] = domain.OrderItem{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Discount:  item.Discount,
			Total:     item.Total,
			CreatedAt: item.CreatedAt,
		}
	}
	for _, payment := range m.Payments {
		order.Payments = append(order.Payments, *ToDomainPayment(&payment))
	}
	if m.Store != nil {
		order.Store = ToDomainStore(m.Store)
	}
	if m.ShippingAddress != nil {
		order.ShippingAddress = ToDomainAddress(m.ShippingAddress)
	}
	return order
}
