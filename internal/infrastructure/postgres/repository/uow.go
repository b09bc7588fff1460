package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sellora/order-service/internal/domain"
	"gorm.io/gorm"
)

// UnitOfWorkFactory opens gorm transactions and hands out repositories bound
// to them. Row locks taken through those repositories live until Commit or
// Rollback.
type UnitOfWorkFactory struct {
	db *gorm.DB
}

func NewUnitOfWorkFactory(db *gorm.DB) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{db: db}
}

func (f *UnitOfWorkFactory) Begin(ctx context.Context) (domain.UnitOfWork, error) {
	tx := f.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("begin transaction: %w", translate(tx.Error))
	}
	return &unitOfWork{tx: tx}, nil
}

type unitOfWork struct {
	tx   *gorm.DB
	done bool
}

func (u *unitOfWork) Orders() domain.OrderRepository     { return NewOrderRepository(u.tx) }
func (u *unitOfWork) Payments() domain.PaymentRepository { return NewPaymentRepository(u.tx) }
func (u *unitOfWork) Products() domain.ProductCatalog    { return NewProductRepository(u.tx) }
func (u *unitOfWork) Stores() domain.StoreDirectory      { return NewStoreRepository(u.tx) }
func (u *unitOfWork) Addresses() domain.AddressBook      { return NewAddressRepository(u.tx) }

func (u *unitOfWork) Commit() error {
	if u.done {
		return errors.New("unit of work already finished")
	}
	u.done = true
	return translate(u.tx.Commit().Error)
}

func (u *unitOfWork) Rollback() error {
	if u.done {
		return nil
	}
	u.done = true
	return translate(u.tx.Rollback().Error)
}
