package usecase

import (
	"context"
	"fmt"

	"github.com/sellora/order-service/internal/domain"
)

// InventoryLedger mutates per-product stock and sold counters. It holds no
// state of its own: every call stages its writes in the caller's transaction
// through the catalog it is handed, and the row lock taken by the catalog is
// held for the rest of that transaction.
type InventoryLedger struct{}

// Reserve locks the product row, checks availability and moves quantity from
// stock to sold. The returned product is the post-reservation row; its
// pricing fields are unchanged and safe to snapshot into an order item.
func (InventoryLedger) Reserve(ctx context.Context, catalog domain.ProductCatalog, productID, storeID string, quantity int) (*domain.Product, error) {
	product, err := catalog.LockForUpdate(ctx, productID, storeID)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", productID, err)
	}

	if quantity > product.Stock {
		return nil, &domain.InsufficientStockError{
			ProductID: productID,
			Requested: quantity,
			Available: product.Stock,
		}
	}

	product.Stock -= quantity
	product.Sold += quantity
	if err := catalog.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("reserve product %s: %w", productID, err)
	}
	return product, nil
}

// Release restores quantity to stock and takes it back off sold, flooring
// sold at zero. Used by cancellation; locks the row symmetrically with
// Reserve to avoid lost updates against a concurrent reservation.
func (InventoryLedger) Release(ctx context.Context, catalog domain.ProductCatalog, productID string, quantity int) error {
	product, err := catalog.Lock(ctx, productID)
	if err != nil {
		return fmt.Errorf("product %s: %w", productID, err)
	}

	product.Stock += quantity
	product.Sold -= quantity
	if product.Sold < 0 {
		product.Sold = 0
	}
	if err := catalog.Save(ctx, product); err != nil {
		return fmt.Errorf("release product %s: %w", productID, err)
	}
	return nil
}
