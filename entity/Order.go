package entity

import "time"

type Order struct {
	ID    string `gorm:"primaryKey;size:64" json:"id"`
	Token string `gorm:"uniqueIndex;size:32;not null" json:"token"` // public lookup key

	Items    []CartEntry `gorm:"serializer:json" json:"items"`
	Customer Customer    `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`

	// snapshot of catalog prices at checkout, never re-derived
	TotalCents int64 `json:"totalCents"`

	Status        OrderStatus   `gorm:"size:20;index" json:"status"`
	PaymentMethod PaymentMethod `gorm:"size:10" json:"paymentMethod"`
	CreatedAt     time.Time     `json:"createdAt"`
}
