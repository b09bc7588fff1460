package mappers

import (
	"github.com/sellora/order-service/internal/domain"
	"github.com/sellora/order-service/internal/infrastructure/postgres/models"
)

func ToDomainProduct(m *models.ProductModel) *domain.Product {
	return &domain.Product{
		ID:            m.ID,
		StoreID:       m.StoreID,
		Name:          m.Name,
		Price:         m.Price,
		DiscountPrice: m.DiscountPrice,
		Stock:         m.Stock,
		Sold:          m.Sold,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToGORMProduct(p *domain.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:            p.ID,
		StoreID:       p.StoreID,
		Name:          p.Name,
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		Stock:         p.Stock,
		Sold:          p.Sold,
		IsActive:      p.IsActive,
	}
}

func ToDomainStore(m *models.StoreModel) *domain.Store {
	return &domain.Store{
		ID:             m.ID,
		OwnerID:        m.OwnerID,
		Name:           m.Name,
		CommissionRate: m.CommissionRate,
		TotalOrders:    m.TotalOrders,
		TotalProducts:  m.TotalProducts,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToGORMStore(s *domain.Store) *models.StoreModel {
	return &models.StoreModel{
		ID:             s.ID,
		OwnerID:        s.OwnerID,
		Name:           s.Name,
		CommissionRate: s.CommissionRate,
		TotalOrders:    s.TotalOrders,
		TotalProducts:  s.TotalProducts,
		IsActive:       s.IsActive,
	}
}

func ToDomainAddress(m *models.AddressModel) *domain.Address {
	return &domain.Address{
		ID:         m.ID,
		UserID:     m.UserID,
		Line1:      m.Line1,
		Line2:      m.Line2,
		City:       m.City,
		PostalCode: m.PostalCode,
		Country:    m.Country,
	}
}
