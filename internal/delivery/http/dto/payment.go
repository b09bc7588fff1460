package dto

import (
	"time"

	"github.com/sellora/order-service/internal/domain"
)

type CreatePaymentRequest struct {
	OrderID string  `json:"orderId" binding:"required"`
	Method  string  `json:"method" binding:"required"`
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	Notes   string  `json:"notes"`
}

type PaymentResponse struct {
	ID            string         `json:"id"`
	TransactionID string         `json:"transactionId"`
	OrderID       string         `json:"orderId"`
	Status        string         `json:"status"`
	Method        string         `json:"method"`
	Amount        float64        `json:"amount"`
	Notes         string         `json:"notes,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func FromDomainPayment(payment *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID,
		TransactionID: payment.TransactionID,
		OrderID:       payment.OrderID,
		Status:        string(payment.Status),
		Method:        string(payment.Method),
		Amount:        payment.Amount,
		Notes:         payment.Notes,
		Metadata:      payment.Metadata,
		CreatedAt:     payment.CreatedAt,
		UpdatedAt:     payment.UpdatedAt,
	}
}

func FromDomainPayments(payments []*domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(payments))
	for i, payment := range payments {
		out[i] = FromDomainPayment(payment)
	}
	return out
}
