package usecase

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/sellora/order-service/internal/domain"
	"github.com/sellora/order-service/internal/infrastructure/metrics"
)

// memDB is an in-memory stand-in for the persistence layer. A transaction
// holds the single mutex from Begin until Commit or Rollback, which models
// the serialization the row locks provide, and Rollback restores a snapshot
// taken at Begin, which models transactional atomicity.
type memDB struct {
	mu    sync.Mutex
	state memState
}

type memState struct {
	products  map[string]domain.Product
	stores    map[string]domain.Store
	addresses map[string]domain.Address
	orders    map[string]domain.Order
	payments  map[string]domain.Payment
}

func newMemDB() *memDB {
	return &memDB{state: memState{
		products:  make(map[string]domain.Product),
		stores:    make(map[string]domain.Store),
		addresses: make(map[string]domain.Address),
		orders:    make(map[string]domain.Order),
		payments:  make(map[string]domain.Payment),
	}}
}

func (s memState) clone() memState {
	out := memState{
		products:  make(map[string]domain.Product, len(s.products)),
		stores:    make(map[string]domain.Store, len(s.stores)),
		addresses: make(map[string]domain.Address, len(s.addresses)),
		orders:    make(map[string]domain.Order, len(s.orders)),
		payments:  make(map[string]domain.Payment, len(s.payments)),
	}
	for k, v := range s.products {
		out.products[k] = v
	}
	for k, v := range s.stores {
		out.stores[k] = v
	}
	for k, v := range s.addresses {
		out.addresses[k] = v
	}
	for k, v := range s.orders {
		v.Items = append([]domain.OrderItem(nil), v.Items...)
		v.Payments = nil
		v.Store = nil
		v.ShippingAddress = nil
		out.orders[k] = v
	}
	for k, v := range s.payments {
		v.Order = nil
		out.payments[k] = v
	}
	return out
}

func (db *memDB) seedStore(store domain.Store)         { db.state.stores[store.ID] = store }
func (db *memDB) seedProduct(product domain.Product)   { db.state.products[product.ID] = product }
func (db *memDB) seedAddress(address domain.Address)   { db.state.addresses[address.ID] = address }
func (db *memDB) seedOrder(order domain.Order)         { db.state.orders[order.ID] = order }
func (db *memDB) seedPayment(payment domain.Payment)   { db.state.payments[payment.ID] = payment }

func (db *memDB) product(id string) domain.Product {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.state.products[id]
}

func (db *memDB) order(id string) domain.Order {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.state.orders[id]
}

func (db *memDB) store(id string) domain.Store {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.state.stores[id]
}

// memFactory begins transactions against the shared memDB.
type memFactory struct{ db *memDB }

func (f *memFactory) Begin(context.Context) (domain.UnitOfWork, error) {
	f.db.mu.Lock()
	return &memUnitOfWork{db: f.db, snapshot: f.db.state.clone()}, nil
}

type memUnitOfWork struct {
	db       *memDB
	snapshot memState
	done     bool
}

func (u *memUnitOfWork) Orders() domain.OrderRepository     { return memOrders{db: u.db, tx: true} }
func (u *memUnitOfWork) Payments() domain.PaymentRepository { return memPayments{db: u.db, tx: true} }
func (u *memUnitOfWork) Products() domain.ProductCatalog    { return memProducts{db: u.db, tx: true} }
func (u *memUnitOfWork) Stores() domain.StoreDirectory      { return memStores{db: u.db, tx: true} }
func (u *memUnitOfWork) Addresses() domain.AddressBook      { return memAddresses{db: u.db, tx: true} }

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
	u.db.state = u.snapshot
	u.db.mu.Unlock()
	return nil
}

// memOrders serves both transactional and standalone use; standalone calls
// take the database mutex themselves.
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
	cp := *order
	cp.Items = append([]domain.OrderItem(nil), order.Items...)
	r.db.state.orders[order.ID] = cp
	return nil
}

func (r memOrders) GetByID(_ context.Context, orderID string) (*domain.Order, error) {
	defer r.enter()()
	order, ok := r.db.state.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := order
	cp.Items = append([]domain.OrderItem(nil), order.Items...)
	if store, ok := r.db.state.stores[order.StoreID]; ok {
		s := store
		cp.Store = &s
	}
	for _, payment := range r.db.state.payments {
		if payment.OrderID == orderID {
			cp.Payments = append(cp.Payments, payment)
		}
	}
	return &cp, nil
}

func (r memOrders) LockForUpdate(_ context.Context, orderID string) (*domain.Order, error) {
	defer r.enter()()
	order, ok := r.db.state.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := order
	cp.Items = append([]domain.OrderItem(nil), order.Items...)
	return &cp, nil
}

func (r memOrders) UpdateStatus(_ context.Context, orderID string, status domain.OrderStatus) error {
	defer r.enter()()
	order, ok := r.db.state.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	order.Status = status
	r.db.state.orders[orderID] = order
	return nil
}

func (r memOrders) list(match func(domain.Order) bool) []*domain.Order {
	var out []*domain.Order
	for _, order := range r.db.state.orders {
		if match(order) {
			cp := order
			cp.Items = append([]domain.OrderItem(nil), order.Items...)
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r memOrders) ListByCustomer(_ context.Context, customerID string) ([]*domain.Order, error) {
	defer r.enter()()
	return r.list(func(o domain.Order) bool { return o.CustomerID == customerID }), nil
}

func (r memOrders) ListByStore(_ context.Context, storeID string) ([]*domain.Order, error) {
	defer r.enter()()
	return r.list(func(o domain.Order) bool { return o.StoreID == storeID }), nil
}

func (r memOrders) ListAll(_ context.Context) ([]*domain.Order, error) {
	defer r.enter()()
	return r.list(func(domain.Order) bool { return true }), nil
}

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
	r.db.state.payments[payment.ID] = cp
	return nil
}

func (r memPayments) GetByID(_ context.Context, paymentID string) (*domain.Payment, error) {
	defer r.enter()()
	payment, ok := r.db.state.payments[paymentID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := payment
	if order, ok := r.db.state.orders[payment.OrderID]; ok {
		o := order
		cp.Order = &o
	}
	return &cp, nil
}

func (r memPayments) UpdateStatus(_ context.Context, paymentID string, status domain.PaymentStatus) error {
	defer r.enter()()
	payment, ok := r.db.state.payments[paymentID]
	if !ok {
		return domain.ErrNotFound
	}
	payment.Status = status
	r.db.state.payments[paymentID] = payment
	return nil
}

func (r memPayments) HasCompletedForOrder(_ context.Context, orderID string) (bool, error) {
	defer r.enter()()
	for _, payment := range r.db.state.payments {
		if payment.OrderID == orderID && payment.Status == domain.PaymentCompleted {
			return true, nil
		}
	}
	return false, nil
}

func (r memPayments) List(_ context.Context, filter domain.PaymentFilter) ([]*domain.Payment, error) {
	defer r.enter()()
	var out []*domain.Payment
	for _, payment := range r.db.state.payments {
		if filter.OrderID != "" && payment.OrderID != filter.OrderID {
			continue
		}
		if filter.CustomerID != "" {
			order, ok := r.db.state.orders[payment.OrderID]
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

type memProducts struct {
	db *memDB
	tx bool
}

func (r memProducts) enter() func() {
	if r.tx {
		return func() {}
	}
	r.db.mu.Lock()
	return r.db.mu.Unlock
}

func (r memProducts) LockForUpdate(_ context.Context, productID, storeID string) (*domain.Product, error) {
	defer r.enter()()
	product, ok := r.db.state.products[productID]
	if !ok || product.StoreID != storeID || !product.IsActive {
		return nil, domain.ErrNotFound
	}
	cp := product
	return &cp, nil
}

func (r memProducts) Lock(_ context.Context, productID string) (*domain.Product, error) {
	defer r.enter()()
	product, ok := r.db.state.products[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := product
	return &cp, nil
}

func (r memProducts) Save(_ context.Context, product *domain.Product) error {
	defer r.enter()()
	r.db.state.products[product.ID] = *product
	return nil
}

type memStores struct {
	db *memDB
	tx bool
}

func (r memStores) enter() func() {
	if r.tx {
		return func() {}
	}
	r.db.mu.Lock()
	return r.db.mu.Unlock
}

func (r memStores) GetActiveStore(_ context.Context, storeID string) (*domain.Store, error) {
	defer r.enter()()
	store, ok := r.db.state.stores[storeID]
	if !ok || !store.IsActive {
		return nil, domain.ErrNotFound
	}
	cp := store
	return &cp, nil
}

func (r memStores) GetStoreByOwner(_ context.Context, ownerID string) (*domain.Store, error) {
	defer r.enter()()
	for _, store := range r.db.state.stores {
		if store.OwnerID == ownerID {
			cp := store
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r memStores) Save(_ context.Context, store *domain.Store) error {
	defer r.enter()()
	r.db.state.stores[store.ID] = *store
	return nil
}

type memAddresses struct {
	db *memDB
	tx bool
}

func (r memAddresses) enter() func() {
	if r.tx {
		return func() {}
	}
	r.db.mu.Lock()
	return r.db.mu.Unlock
}

func (r memAddresses) GetOwnedAddress(_ context.Context, addressID, customerID string) (*domain.Address, error) {
	defer r.enter()()
	address, ok := r.db.state.addresses[addressID]
	if !ok || address.UserID != customerID {
		return nil, domain.ErrNotFound
	}
	cp := address
	return &cp, nil
}

// Registered once per test binary; promauto panics on re-registration.
var orderTestMetrics = metrics.NewOrderMetrics()

func newTestOrderUsecase(db *memDB) *DefaultOrderUsecase {
	return NewDefaultOrderUsecase(
		&memFactory{db: db},
		memOrders{db: db},
		memStores{db: db},
		nil,
		orderTestMetrics,
		zap.NewNop(),
	)
}
