package usecase

import (
	"context"

	"github.com/sellora/order-service/internal/domain"
	publisher "github.com/sellora/order-service/internal/infrastructure/kafka"
	"github.com/sellora/order-service/internal/infrastructure/metrics"
	"github.com/sellora/order-service/internal/usecase"
	orderdto "github.com/sellora/order-service/internal/usecase/dto/order"
	"go.uber.org/zap"
)

type OrderUsecase interface {
	CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID, customerID string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, actor domain.Actor, newStatus domain.OrderStatus) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID string, actor domain.Actor) (*domain.Order, error)
	ListOrders(ctx context.Context, actor domain.Actor) ([]*domain.Order, error)
}

type DefaultOrderUsecase struct {
	UoW       domain.UnitOfWorkFactory
	OrderRepo domain.OrderRepository
	StoreDir  domain.StoreDirectory
	Ledger    usecase.InventoryLedger
	Publisher publisher.Publisher
	Metrics   *metrics.OrderMetrics
	Log       *zap.Logger
}

func NewDefaultOrderUsecase(
	uow domain.UnitOfWorkFactory,
	orderRepo domain.OrderRepository,
	storeDir domain.StoreDirectory,
	pub publisher.Publisher,
	orderMetrics *metrics.OrderMetrics,
	log *zap.Logger,
) *DefaultOrderUsecase {
	return &DefaultOrderUsecase{
		UoW:       uow,
		OrderRepo: orderRepo,
		StoreDir:  storeDir,
		Publisher: pub,
		Metrics:   orderMetrics,
		Log:       log,
	}
}

// resolveActor fills in the seller's store so capability checks can compare
// store ownership without reaching back into persistence.
func (uc *DefaultOrderUsecase) resolveActor(ctx context.Context, actor domain.Actor) domain.Actor {
	if actor.Role != domain.RoleSeller || actor.StoreID != "" {
		return actor
	}
	store, err := uc.StoreDir.GetStoreByOwner(ctx, actor.ID)
	if err != nil {
		return actor
	}
	actor.StoreID = store.ID
	return actor
}

func (uc *DefaultOrderUsecase) publishOrderEvent(order *domain.Order) {
	if uc.Publisher == nil {
		return
	}
	event := publisher.OrderEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		CustomerID:  order.CustomerID,
		StoreID:     order.StoreID,
		Status:      string(order.Status),
		Total:       order.Total,
	}
	go func() {
		if err := uc.Publisher.PublishOrderEvent(context.Background(), event); err != nil {
			uc.Log.Error("failed to publish order event",
				zap.String("order_id", event.OrderID), zap.Error(err))
		}
	}()
}
