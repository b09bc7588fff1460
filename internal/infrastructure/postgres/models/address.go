package models

import "time"

type AddressModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	UserID     string `gorm:"type:uuid;index"`
	Line1      string
	Line2      string
	City       string
	PostalCode string
	Country    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (AddressModel) TableName() string {
	return "addresses"
}
