package dto

import (
	"time"

	"github.com/sellora/order-service/internal/domain"
)

type OrderItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	StoreID           string             `json:"storeId" binding:"required"`
	ShippingAddressID string             `json:"shippingAddressId"`
	Items             []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes             string             `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type OrderItemResponse struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Discount  float64 `json:"discount"`
	Total     float64 `json:"total"`
}

type OrderResponse struct {
	ID                string              `json:"id"`
	OrderNumber       string              `json:"orderNumber"`
	Status            string              `json:"status"`
	Subtotal          float64             `json:"subtotal"`
	ShippingCost      float64             `json:"shippingCost"`
	Discount          float64             `json:"discount"`
	Commission        float64             `json:"commission"`
	Total             float64             `json:"total"`
	Notes             string              `json:"notes,omitempty"`
	CustomerID        string              `json:"customerId"`
	StoreID           string              `json:"storeId"`
	ShippingAddressID *string             `json:"shippingAddressId,omitempty"`
	Items             []OrderItemResponse `json:"items"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

func FromDomainOrder(order *domain.Order) OrderResponse {
	resp := OrderResponse{
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
		Items:             make([]OrderItemResponse, len(order.Items)),
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
	}
	for i, item := range order.Items {
		resp.Items[i] = OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Discount:  item.Discount,
			Total:     item.Total,
		}
	}
	return resp
}

func FromDomainOrders(orders []*domain.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, order := range orders {
		out[i] = FromDomainOrder(order)
	}
	return out
}
