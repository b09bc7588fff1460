package models

import (
	"time"

	"gorm.io/gorm"
)

type OrderModel struct {
	ID                string `gorm:"primaryKey;type:uuid"`
	OrderNumber       string `gorm:"uniqueIndex;not null"`
	Status            string `gorm:"index;not null"`
	Subtotal          float64
	ShippingCost      float64
	Discount          float64
	Commission        float64
	Total             float64
	Notes             string  `gorm:"type:text"`
	CustomerID        string  `gorm:"type:uuid;index"`
	StoreID           string  `gorm:"type:uuid;index"`
	ShippingAddressID *string `gorm:"type:uuid"`

	Items           []OrderItemModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	Payments        []PaymentModel   `gorm:"foreignKey:OrderID;references:ID"`
	Store           *StoreModel      `gorm:"foreignKey:StoreID;references:ID"`
	ShippingAddress *AddressModel    `gorm:"foreignKey:ShippingAddressID;references:ID"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (OrderModel) TableName() string {
	return "orders"
}

type OrderItemModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	OrderID   string `gorm:"type:uuid;index;not null"`
	ProductID string `gorm:"type:uuid;index;not null"`
	Quantity  int    `gorm:"not null;check:quantity > 0"`
	Price     float64
	Discount  float64
	Total     float64
	CreatedAt time.Time
}

func (OrderItemModel) TableName() string {
	return "order_items"
}
