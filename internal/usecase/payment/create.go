package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/sellora/order-service/internal/domain"
	"github.com/sellora/order-service/internal/usecase"
	paymentdto "github.com/sellora/order-service/internal/usecase/dto/payment"
	"go.uber.org/zap"
)

const transactionIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func newTransactionID() (string, error) {
	gen, err := nanoid.CustomASCII(transactionIDAlphabet, 8)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("TXN-%d-%s", time.Now().UnixMilli(), gen()), nil
}

// CreatePayment settles an order. The order row is locked for the whole
// transaction, so two concurrent attempts serialize and the second sees the
// first one's completed payment. A gateway failure or timeout is recorded as
// a FAILED payment; the order keeps its status in that case.
func (uc *DefaultPaymentUsecase) CreatePayment(ctx context.Context, input *paymentdto.CreatePaymentInput) (*domain.Payment, error) {
	if !domain.ValidPaymentMethod(input.Method) {
		return nil, fmt.Errorf("unknown payment method %q: %w", input.Method, domain.ErrInvalidInput)
	}

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

	order, err := uow.Orders().LockForUpdate(ctx, input.OrderID)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", input.OrderID, err)
	}
	if order.CustomerID != input.CustomerID {
		return nil, fmt.Errorf("order %s: %w", input.OrderID, domain.ErrNotFound)
	}

	if order.Status == domain.OrderCancelled {
		return nil, fmt.Errorf("cannot pay for cancelled order %s: %w", order.ID, domain.ErrInvalidState)
	}

	paid, err := uow.Payments().HasCompletedForOrder(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("check existing payments for %s: %w", order.ID, err)
	}
	if paid {
		return nil, fmt.Errorf("order %s: %w", order.ID, domain.ErrAlreadyPaid)
	}

	if math.Abs(input.Amount-order.Total) > usecase.AmountTolerance {
		uc.Metrics.AmountMismatchTotal.Inc()
		return nil, fmt.Errorf("amount %.2f vs order total %.2f: %w",
			input.Amount, order.Total, domain.ErrAmountMismatch)
	}

	result := uc.charge(ctx, input.Method, input.Amount)

	transactionID, err := newTransactionID()
	if err != nil {
		return nil, fmt.Errorf("generate transaction id: %w", err)
	}

	status := domain.PaymentFailed
	if result.Success {
		status = domain.PaymentCompleted
	}
	payment := &domain.Payment{
		ID:            uuid.New().String(),
		TransactionID: transactionID,
		OrderID:       order.ID,
		Status:        status,
		Method:        input.Method,
		Amount:        input.Amount,
		Notes:         input.Notes,
		Metadata:      result.Metadata,
	}
	if err := uow.Payments().Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("persist payment: %w", err)
	}

	if result.Success {
		if err := uow.Orders().UpdateStatus(ctx, order.ID, domain.OrderConfirmed); err != nil {
			return nil, fmt.Errorf("confirm order %s: %w", order.ID, err)
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit payment %s: %w", transactionID, err)
	}
	committed = true

	uc.Metrics.PaymentsTotal.WithLabelValues(string(status), string(input.Method)).Inc()
	if result.Success {
		uc.Metrics.SettledAmountTotal.WithLabelValues(string(input.Method)).Add(input.Amount)
	}
	uc.Log.Info("payment recorded",
		zap.String("payment_id", payment.ID),
		zap.String("transaction_id", transactionID),
		zap.String("order_id", order.ID),
		zap.String("status", string(status)))
	uc.publishPaymentEvent(payment)

	return uc.PaymentRepo.GetByID(ctx, payment.ID)
}

// charge invokes the gateway under a deadline. Gateway errors and timeouts
// collapse into an unsuccessful result so the attempt is still recorded.
func (uc *DefaultPaymentUsecase) charge(ctx context.Context, method domain.PaymentMethod, amount float64) *domain.ChargeResult {
	chargeCtx, cancel := context.WithTimeout(ctx, uc.ChargeTimeout)
	defer cancel()

	start := time.Now()
	result, err := uc.Gateway.Charge(chargeCtx, method, amount)
	if err != nil {
		uc.Metrics.GatewayChargeDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		uc.Log.Warn("gateway charge failed",
			zap.String("method", string(method)), zap.Error(err))
		return &domain.ChargeResult{
			Success:  false,
			Metadata: map[string]any{"error": err.Error()},
		}
	}

	outcome := "declined"
	if result.Success {
		outcome = "success"
	}
	uc.Metrics.GatewayChargeDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	return result
}
