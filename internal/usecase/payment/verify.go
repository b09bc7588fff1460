package usecase

import (
	"context"
	"fmt"

	"github.com/sellora/order-service/internal/domain"
	"go.uber.org/zap"
)

// VerifyPayment force-settles a payment administratively. The payment and its
// order move together in one transaction: COMPLETED never commits without the
// order being CONFIRMED.
func (uc *DefaultPaymentUsecase) VerifyPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
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

	payment, err := uow.Payments().GetByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("payment %s: %w", paymentID, err)
	}
	if payment.Status == domain.PaymentCompleted {
		return nil, fmt.Errorf("payment %s: %w", paymentID, domain.ErrAlreadyCompleted)
	}

	// Lock the order so a concurrent CreatePayment cannot interleave between
	// the two status writes.
	if _, err := uow.Orders().LockForUpdate(ctx, payment.OrderID); err != nil {
		return nil, fmt.Errorf("order %s: %w", payment.OrderID, err)
	}

	if err := uow.Payments().UpdateStatus(ctx, paymentID, domain.PaymentCompleted); err != nil {
		return nil, fmt.Errorf("complete payment %s: %w", paymentID, err)
	}
	if err := uow.Orders().UpdateStatus(ctx, payment.OrderID, domain.OrderConfirmed); err != nil {
		return nil, fmt.Errorf("confirm order %s: %w", payment.OrderID, err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit verification of %s: %w", paymentID, err)
	}
	committed = true

	uc.Metrics.PaymentsVerifiedTotal.Inc()
	uc.Log.Info("payment verified",
		zap.String("payment_id", paymentID),
		zap.String("order_id", payment.OrderID))

	payment.Status = domain.PaymentCompleted
	uc.publishPaymentEvent(payment)

	return uc.PaymentRepo.GetByID(ctx, paymentID)
}
