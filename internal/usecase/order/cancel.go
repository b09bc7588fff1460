package usecase

import (
	"context"
	"fmt"

	"github.com/sellora/order-service/internal/domain"
	"go.uber.org/zap"
)

// CancelOrder restores stock for every item and moves the order to CANCELLED
// in one transaction. The order row is locked first, then each product row,
// mirroring the locking of CreateOrder so a concurrent reservation on the
// same product cannot lose the update.
func (uc *DefaultOrderUsecase) CancelOrder(ctx context.Context, orderID, customerID string) (*domain.Order, error) {
	uow, err := uc.UoW.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			if rbErr := uow.Rollback(); rbErr != nil {
				uc.Log.Error("rollback failed", zap.Error(rbErr))
			}
		}
	}()

	order, err := uow.Orders().LockForUpdate(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", orderID, err)
	}
	if order.CustomerID != customerID {
		return nil, fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
	}

	if order.Status == domain.OrderDelivered || order.Status == domain.OrderCancelled {
		return nil, fmt.Errorf("order %s is %s: %w", orderID, order.Status, domain.ErrInvalidState)
	}

	for _, item := range order.Items {
		if err := uc.Ledger.Release(ctx, uow.Products(), item.ProductID, item.Quantity); err != nil {
			return nil, err
		}
	}

	if err := uow.Orders().UpdateStatus(ctx, orderID, domain.OrderCancelled); err != nil {
		return nil, fmt.Errorf("cancel order %s: %w", orderID, err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit cancellation of %s: %w", orderID, err)
	}
	committed = true

	uc.Metrics.OrdersCancelledTotal.WithLabelValues(order.StoreID).Inc()
	uc.Metrics.StatusTransitionsTotal.WithLabelValues(string(order.Status), string(domain.OrderCancelled)).Inc()
	uc.Log.Info("order cancelled",
		zap.String("order_id", orderID),
		zap.String("previous_status", string(order.Status)))

	order.Status = domain.OrderCancelled
	uc.publishOrderEvent(order)

	return uc.OrderRepo.GetByID(ctx, orderID)
}
