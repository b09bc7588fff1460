package usecase

import (
	"context"
	"time"

	"github.com/sellora/order-service/internal/domain"
	publisher "github.com/sellora/order-service/internal/infrastructure/kafka"
	"github.com/sellora/order-service/internal/infrastructure/metrics"
	paymentdto "github.com/sellora/order-service/internal/usecase/dto/payment"
	"go.uber.org/zap"
)

// DefaultChargeTimeout bounds the external gateway call; expiry is treated as
// a failed charge, never as an indefinitely pending one.
const DefaultChargeTimeout = 5 * time.Second

type PaymentUsecase interface {
	CreatePayment(ctx context.Context, input *paymentdto.CreatePaymentInput) (*domain.Payment, error)
	VerifyPayment(ctx context.Context, paymentID string) (*domain.Payment, error)
	GetPayment(ctx context.Context, paymentID string, actor domain.Actor) (*domain.Payment, error)
	ListPayments(ctx context.Context, actor domain.Actor, orderID string) ([]*domain.Payment, error)
}

type DefaultPaymentUsecase struct {
	UoW           domain.UnitOfWorkFactory
	PaymentRepo   domain.PaymentRepository
	Gateway       domain.PaymentGateway
	ChargeTimeout time.Duration
	Publisher     publisher.Publisher
	Metrics       *metrics.PaymentMetrics
	Log           *zap.Logger
}

func NewDefaultPaymentUsecase(
	uow domain.UnitOfWorkFactory,
	paymentRepo domain.PaymentRepository,
	gateway domain.PaymentGateway,
	chargeTimeout time.Duration,
	pub publisher.Publisher,
	paymentMetrics *metrics.PaymentMetrics,
	log *zap.Logger,
) *DefaultPaymentUsecase {
	if chargeTimeout <= 0 {
		chargeTimeout = DefaultChargeTimeout
	}
	return &DefaultPaymentUsecase{
		UoW:           uow,
		PaymentRepo:   paymentRepo,
		Gateway:       gateway,
		ChargeTimeout: chargeTimeout,
		Publisher:     pub,
		Metrics:       paymentMetrics,
		Log:           log,
	}
}

func (uc *DefaultPaymentUsecase) publishPaymentEvent(payment *domain.Payment) {
	if uc.Publisher == nil {
		return
	}
	event := publisher.PaymentEvent{
		PaymentID:     payment.ID,
		TransactionID: payment.TransactionID,
		OrderID:       payment.OrderID,
		Status:        string(payment.Status),
		Method:        string(payment.Method),
		Amount:        payment.Amount,
	}
	go func() {
		if err := uc.Publisher.PublishPaymentEvent(context.Background(), event); err != nil {
			uc.Log.Error("failed to publish payment event",
				zap.String("payment_id", event.PaymentID), zap.Error(err))
		}
	}()
}
