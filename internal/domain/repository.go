package domain

import "context"

// OrderRepository persists orders with their items. Implementations bound to
// a unit of work stage writes in that transaction.
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	// GetByID loads an order with items, store, shipping address and payments.
	GetByID(ctx context.Context, orderID string) (*Order, error)
	// LockForUpdate loads the order row under an exclusive lock held for the
	// rest of the enclosing transaction. Items are loaded, relations are not.
	LockForUpdate(ctx context.Context, orderID string) (*Order, error)
	UpdateStatus(ctx context.Context, orderID string, status OrderStatus) error
	ListByCustomer(ctx context.Context, customerID string) ([]*Order, error)
	ListByStore(ctx context.Context, storeID string) ([]*Order, error)
	ListAll(ctx context.Context) ([]*Order, error)
}

type PaymentFilter struct {
	OrderID    string
	CustomerID string
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	// GetByID loads a payment with its order attached.
	GetByID(ctx context.Context, paymentID string) (*Payment, error)
	UpdateStatus(ctx context.Context, paymentID string, status PaymentStatus) error
	HasCompletedForOrder(ctx context.Context, orderID string) (bool, error)
	List(ctx context.Context, filter PaymentFilter) ([]*Payment, error)
}

// ProductCatalog is the inventory-facing slice of the product store.
type ProductCatalog interface {
	// LockForUpdate returns the active product of the given store under an
	// exclusive row lock, or ErrNotFound if it is absent, foreign or inactive.
	LockForUpdate(ctx context.Context, productID, storeID string) (*Product, error)
	// Lock locks a product row regardless of store or active flag. Used when
	// restoring stock on cancellation.
	Lock(ctx context.Context, productID string) (*Product, error)
	Save(ctx context.Context, product *Product) error
}

type StoreDirectory interface {
	// GetActiveStore returns the store or ErrNotFound if absent or inactive.
	GetActiveStore(ctx context.Context, storeID string) (*Store, error)
	// GetStoreByOwner resolves a seller's store, ErrNotFound if none.
	GetStoreByOwner(ctx context.Context, ownerID string) (*Store, error)
	Save(ctx context.Context, store *Store) error
}

type AddressBook interface {
	// GetOwnedAddress returns the address only when it belongs to customerID.
	GetOwnedAddress(ctx context.Context, addressID, customerID string) (*Address, error)
}
