package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sellora/order-service/internal/domain"
	"github.com/sellora/order-service/internal/infrastructure/metrics"
)

// memDB stands in for the persistence layer. A transaction holds the mutex
// from Begin to Commit or Rollback and Rollback restores a snapshot, which
// models row-lock serialization and transactional atomicity respectively.
type memDB struct {
	mu       sync.Mutex
	orders   map[string]domain.Order
	payments map[string]domain.Payment
}

func newMemDB() *memDB {
	return &memDB{
		orders:   make(map[string]domain.Order),
		payments: make(map[string]domain.Payment),
	}
}

func (db *memDB) seedOrder(order domain.Order)       { db.orders[order.ID] = order }
func (db *memDB) seedPayment(payment domain.Payment) { db.payments[payment.ID] = payment }

func (db *memDB) order(id string) domain.Order {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.orders[id]
}

func (db *memDB) paymentsForOrder(orderID string) []domain.Payment {
	db.mu.Lock()
	defer db.mu.Unlock()
	var out []domain.Payment
	for _, payment := range db.payments {
		if payment.OrderID == orderID {
			out = append(out, payment)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type memFactory struct{ db *memDB }

func (f *memFactory) Begin(context.Context) (domain.UnitOfWork, error) {
	f.db.mu.Lock()
	u := &memUnitOfWork{db: f.db}
	u.ordersSnap = make(map[string]domain.Order, len(f.db.orders))
	for k, v := range f.db.orders {
		u.ordersSnap[k] = v
	}
	u.paymentsSnap = make(map[string]domain.Payment, len(f.db.payments))
	for k, v := range f.db.payments {
		u.paymentsSnap[k] = v
	}
	return u, nil
}

type memUnitOfWork struct {
	db           *memDB
	ordersSnap   map[string]domain.Order
	paymentsSnap map[string]domain.Payment
	done         bool
}

func (u *memUnitOfWork) Orders() domain.OrderRepository     { return memOrders{db: u.db, tx: true} }
func (u *memUnitOfWork) Payments() domain.PaymentRepository { return memPayments{db: u.db, tx: true} }
func (u *memUnitOfWork) Products() domain.ProductCatalog    { return nil }
func (u *memUnitOfWork) Stores() domain.StoreDirectory      { return nil }
func (u *memUnitOfWork) Addresses() domain.AddressBook      { return nil }

func (u *memUnitOfWork) Commit() error {
	if u.done {
		return nil
	}
	u.done = true
	u.db.mu.Unlock()
	return nil
}

func (u *memUnitOfWork) Rollback() error {
	if u.done {
		return nil
	}
	u.done = true
	u.db.orders = u.ordersSnap
	u.db.payments = u.paymentsSnap
	u.db.mu.Unlock()
	return nil
}

type memOrders struct {
	db *memDB
	tx bool
}

func (r memOrders) enter() func() {
	if r.tx {
		return func() {}
	}
	r.db.mu.Lock()
	return r.db.mu.Unlock
}

func (r memOrders) Create(_ context.Context, order *domain.Order) error {
	defer r.enter()()
	r.db.orders[order.ID] = *order
	return nil
}

func (r memOrders) GetByID(_ context.Context, orderID string) (*domain.Order, error) {
	defer r.enter()()
	order, ok := r.db.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := order
	return &cp, nil
}

func (r memOrders) LockForUpdate(ctx context.Context, orderID string) (*domain.Order, error) {
	return r.GetByID(ctx, orderID)
}

func (r memOrders) UpdateStatus(_ context.Context, orderID string, status domain.OrderStatus) error {
	defer r.enter()()
	order, ok := r.db.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	order.Status = status
	r.db.orders[orderID] = order
	return nil
}

func (r memOrders) ListByCustomer(context.Context, string) ([]*domain.Order, error) { return nil, nil }
func (r memOrders) ListByStore(context.Context, string) ([]*domain.Order, error)    { return nil, nil }
func (r memOrders) ListAll(context.Context) ([]*domain.Order, error)                { return nil, nil }

type memPayments struct {
	db *memDB
	tx bool
}

func (r memPayments) enter() func() {
	if r.tx {
		return func() {}
	}
	r.db.mu.Lock()
	return r.db.mu.Unlock
}

func (r memPayments) Create(_ context.Context, payment *domain.Payment) error {
	defer r.enter()()
	cp := *payment
	cp.Order = nil
	r.db.payments[payment.ID] = cp
	return nil
}

func (r memPayments) GetByID(_ context.Context, paymentID string) (*domain.Payment, error) {
	defer r.enter()()
	payment, ok := r.db.payments[paymentID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := payment
	if order, ok := r.db.orders[payment.OrderID]; ok {
		o := order
		cp.Order = &o
	}
	return &cp, nil
}

func (r memPayments) UpdateStatus(_ context.Context, paymentID string, status domain.PaymentStatus) error {
	defer r.enter()()
	payment, ok := r.db.payments[paymentID]
	if !ok {
		return domain.ErrNotFound
	}
	payment.Status = status
	r.db.payments[paymentID] = payment
	return nil
}

func (r memPayments) HasCompletedForOrder(_ context.Context, orderID string) (bool, error) {
	defer r.enter()()
	for _, payment := range r.db.payments {
		if payment.OrderID == orderID && payment.Status == domain.PaymentCompleted {
			return true, nil
		}
	}
	return false, nil
}

func (r memPayments) List(_ context.Context, filter domain.PaymentFilter) ([]*domain.Payment, error) {
	defer r.enter()()
	var out []*domain.Payment
	for _, payment := range r.db.payments {
		if filter.OrderID != "" && payment.OrderID != filter.OrderID {
			continue
		}
		if filter.CustomerID != "" {
			order, ok := r.db.orders[payment.OrderID]
			if !ok || order.CustomerID != filter.CustomerID {
				continue
			}
		}
		cp := payment
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// scriptedGateway returns a fixed verdict, optionally after a delay that a
// canceled context interrupts.
type scriptedGateway struct {
	result *domain.ChargeResult
	err    error
	delay  time.Duration
	calls  int
}

func (g *scriptedGateway) Charge(ctx context.Context, _ domain.PaymentMethod, _ float64) (*domain.ChargeResult, error) {
	g.calls++
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

// Registered once per test binary; promauto panics on re-registration.
var paymentTestMetrics = metrics.NewPaymentMetrics()

func newTestPaymentUsecase(db *memDB, gateway domain.PaymentGateway, timeout time.Duration) *DefaultPaymentUsecase {
	return NewDefaultPaymentUsecase(
		&memFactory{db: db},
		memPayments{db: db},
		gateway,
		timeout,
		nil,
		paymentTestMetrics,
		zap.NewNop(),
	)
}
