package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/sellora/order-service/internal/domain"
)

// ListOrders returns the orders visible to the actor: customers their own,
// sellers their store's, admins all.
func (uc *DefaultOrderUsecase) ListOrders(ctx context.Context, actor domain.Actor) ([]*domain.Order, error) {
	switch actor.Role {
	case domain.RoleCustomer:
		return uc.OrderRepo.ListByCustomer(ctx, actor.ID)
	case domain.RoleSeller:
		actor = uc.resolveActor(ctx, actor)
		if actor.StoreID == "" {
			return []*domain.Order{}, nil
		}
		return uc.OrderRepo.ListByStore(ctx, actor.StoreID)
	case domain.RoleAdmin:
		return uc.OrderRepo.ListAll(ctx)
	default:
		return nil, fmt.Errorf("unknown role %q: %w", actor.Role, domain.ErrForbidden)
	}
}

func (uc *DefaultOrderUsecase) GetOrder(ctx context.Context, orderID string, actor domain.Actor) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("order %s: %w", orderID, err)
		}
		return nil, err
	}

	actor = uc.resolveActor(ctx, actor)
	if !domain.CanViewOrder(actor, order) {
		return nil, fmt.Errorf("order %s: %w", orderID, domain.ErrForbidden)
	}
	return order, nil
}
