package mappers

import (
	"encoding/json"

	"github.com/sellora/order-service/internal/domain"
	"github.com/sellora/order-service/internal/infrastructure/postgres/models"
)

func ToGORMPayment(payment *domain.Payment) *models.PaymentModel {
	metadata := "{}"
	if payment.Metadata != nil {
		if raw, err := json.Marshal(payment.Metadata); err == nil {
			metadata = string(raw)
		}
	}
	return &models.PaymentModel{
		ID:            payment.ID,
		TransactionID: payment.TransactionID,
		OrderID:       payment.OrderID,
		Status:        string(payment.Status),
		Method:        string(payment.Method),
		Amount:        payment.Amount,
		Notes:         payment.Notes,
		Metadata:      metadata,
	}
}

func ToDomainPayment(m *models.PaymentModel) *domain.Payment {
	payment := &domain.Payment{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		OrderID:       m.OrderID,
		Status:        domain.PaymentStatus(m.Status),
		Method:        domain.PaymentMethod(m.Method),
		Amount:        m.Amount,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Metadata != "" {
		var metadata map[string]any
		if err := json.Unmarshal([]byte(m.Metadata), &metadata); err == nil {
			payment.Metadata = metadata
		}
	}
	if m.Order != nil {
		payment.Order = ToDomainOrder(m.Order)
	}
	return payment
}
