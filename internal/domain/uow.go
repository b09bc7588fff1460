package domain

import "context"

// UnitOfWork scopes one database transaction. Repositories obtained from it
// stage all reads and writes in that transaction; row locks taken through
// them are held until Commit or Rollback.
type UnitOfWork interface {
	Orders() OrderRepository
	Payments() PaymentRepository
	Products() ProductCatalog
	Stores() StoreDirectory
	Addresses() AddressBook
	Commit() error
	Rollback() error
}

type UnitOfWorkFactory interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}
