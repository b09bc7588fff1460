package paymentdto

import "github.com/sellora/order-service/internal/domain"

type CreatePaymentInput struct {
	CustomerID string
	OrderID    string
	Method     domain.PaymentMethod
	Amount     float64
	Notes      string
}
