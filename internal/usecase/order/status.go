package usecase

import (
	"context"
	"fmt"

	"github.com/sellora/order-service/internal/domain"
	"go.uber.org/zap"
)

// UpdateStatus applies an authorized lifecycle transition. Customers may
// never transition an order; sellers only for their own store. The lifecycle
// table rejects backwards and repeated transitions.
func (uc *DefaultOrderUsecase) UpdateStatus(ctx context.Context, orderID string, actor domain.Actor, newStatus domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidOrderStatus(newStatus) {
		return nil, fmt.Errorf("unknown status %q: %w", newStatus, domain.ErrInvalidInput)
	}

	order, err := uc.OrderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", orderID, err)
	}

	actor = uc.resolveActor(ctx, actor)
	if !domain.CanTransitionOrder(actor, order) {
		return nil, fmt.Errorf("actor %s may not transition order %s: %w",
			actor.ID, orderID, domain.ErrForbidden)
	}

	if !domain.CanTransition(order.Status, newStatus) {
		return nil, fmt.Errorf("order %s: %s -> %s: %w",
			orderID, order.Status, newStatus, domain.ErrInvalidStatusTransition)
	}

	if err := uc.OrderRepo.UpdateStatus(ctx, orderID, newStatus); err != nil {
		return nil, fmt.Errorf("update order %s: %w", orderID, err)
	}

	uc.Metrics.StatusTransitionsTotal.WithLabelValues(string(order.Status), string(newStatus)).Inc()
	uc.Log.Info("order status updated",
		zap.String("order_id", orderID),
		zap.String("from", string(order.Status)),
		zap.String("to", string(newStatus)),
		zap.String("actor_id", actor.ID))

	order.Status = newStatus
	uc.publishOrderEvent(order)

	return uc.OrderRepo.GetByID(ctx, orderID)
}
