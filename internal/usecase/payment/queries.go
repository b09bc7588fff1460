package usecase

import (
	"context"
	"fmt"

	"github.com/sellora/order-service/internal/domain"
)

// ListPayments returns payments visible to the actor, optionally filtered by
// order. Customers only ever see payments of their own orders.
func (uc *DefaultPaymentUsecase) ListPayments(ctx context.Context, actor domain.Actor, orderID string) ([]*domain.Payment, error) {
	filter := domain.PaymentFilter{OrderID: orderID}
	switch actor.Role {
	case domain.RoleAdmin:
	case domain.RoleCustomer:
		filter.CustomerID = actor.ID
	default:
		return nil, fmt.Errorf("role %q may not list payments: %w", actor.Role, domain.ErrForbidden)
	}
	return uc.PaymentRepo.List(ctx, filter)
}

func (uc *DefaultPaymentUsecase) GetPayment(ctx context.Context, paymentID string, actor domain.Actor) (*domain.Payment, error) {
	payment, err := uc.PaymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("payment %s: %w", paymentID, err)
	}

	if actor.Role == domain.RoleAdmin {
		return payment, nil
	}
	if payment.Order == nil || payment.Order.CustomerID != actor.ID {
		return nil, fmt.Errorf("payment %s: %w", paymentID, domain.ErrForbidden)
	}
	return payment, nil
}
