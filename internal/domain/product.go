package domain

import "time"

type Product struct {
	ID            string
	StoreID       string
	Name          string
	Price         float64
	DiscountPrice *float64
	Stock         int
	Sold          int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EffectivePrice is the unit price a buyer actually pays.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

type Store struct {
	ID             string
	OwnerID        string
	Name           string
	CommissionRate float64
	TotalOrders    int64
	TotalProducts  int64
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Address struct {
	ID         string
	UserID     string
	Line1      string
	Line2      string
	City       string
	PostalCode string
	Country    string
}
