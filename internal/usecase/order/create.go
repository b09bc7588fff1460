package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/sellora/order-service/internal/domain"
	"github.com/sellora/order-service/internal/usecase"
	orderdto "github.com/sellora/order-service/internal/usecase/dto/order"
	"go.uber.org/zap"
)

const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newOrderNumber builds a time-prefixed, random-suffixed order number.
// Collisions are treated as negligible, not impossible; the column's unique
// constraint is the backstop.
func newOrderNumber() (string, error) {
	gen, err := nanoid.CustomASCII(orderNumberAlphabet, 8)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), gen()), nil
}

// CreateOrder reserves stock for every requested item, prices the cart and
// persists the order atomically. Any failure rolls the whole transaction
// back: no partial reservation survives.
func (uc *DefaultOrderUsecase) CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*domain.Order, error) {
	start := time.Now()

	if len(input.Items) == 0 {
		return nil, fmt.Errorf("order has no items: %w", domain.ErrInvalidInput)
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("product %s: quantity must be positive: %w",
				item.ProductID, domain.ErrInvalidInput)
		}
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

	store, err := uow.Stores().GetActiveStore(ctx, input.StoreID)
	if err != nil {
		return nil, fmt.Errorf("store %s: %w", input.StoreID, err)
	}

	var addressID *string
	if input.ShippingAddressID != "" {
		address, err := uow.Addresses().GetOwnedAddress(ctx, input.ShippingAddressID, input.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("shipping address %s: %w", input.ShippingAddressID, err)
		}
		addressID = &address.ID
	}

	// Items are reserved in request order; each reservation keeps its row
	// lock until commit, so a concurrent order on the same product waits here.
	items := make([]domain.OrderItem, 0, len(input.Items))
	lines := make([]usecase.PricingLine, 0, len(input.Items))
	for _, item := range input.Items {
		product, err := uc.Ledger.Reserve(ctx, uow.Products(), item.ProductID, store.ID, item.Quantity)
		if err != nil {
			if errors.Is(err, domain.ErrInsufficientStock) {
				uc.Metrics.OversellRejectionsTotal.WithLabelValues(store.ID).Inc()
			}
			uc.Metrics.ObserveCreate(start, "rejected")
			return nil, err
		}

		line := usecase.LineFromProduct(product, item.Quantity)
		lineTotal, lineDiscount := usecase.LineAmounts(line)
		items = append(items, domain.OrderItem{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Price:     product.Price,
			Discount:  lineDiscount,
			Total:     lineTotal,
		})
		lines = append(lines, line)
	}

	quote := usecase.QuoteLines(lines, store.CommissionRate)

	number, err := newOrderNumber()
	if err != nil {
		return nil, fmt.Errorf("generate order number: %w", err)
	}

	order := &domain.Order{
		ID:                uuid.New().String(),
		OrderNumber:       number,
		Status:            domain.OrderPending,
		Subtotal:          quote.Subtotal,
		ShippingCost:      quote.Shipping,
		Discount:          quote.Discount,
		Commission:        quote.Commission,
		Total:             quote.Total,
		Notes:             strings.TrimSpace(input.Notes),
		CustomerID:        input.CustomerID,
		StoreID:           store.ID,
		ShippingAddressID: addressID,
		Items:             items,
	}
	if err := uow.Orders().Create(ctx, order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	store.TotalOrders++
	if err := uow.Stores().Save(ctx, store); err != nil {
		return nil, fmt.Errorf("update store counters: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit order %s: %w", order.OrderNumber, err)
	}
	committed = true

	uc.Metrics.OrdersCreatedTotal.WithLabelValues(store.ID).Inc()
	uc.Metrics.ObserveCreate(start, "created")
	uc.Log.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.String("store_id", store.ID),
		zap.Float64("total", order.Total),
		zap.Duration("elapsed", time.Since(start)))
	uc.publishOrderEvent(order)

	return uc.OrderRepo.GetByID(ctx, order.ID)
}
