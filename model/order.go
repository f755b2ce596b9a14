package model

import "github.com/shopspring/decimal"

type Order struct {
	DTO
	UserId uint `gorm:"not null;index" json:"userId"`
	User   User `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"-"`

	Total decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`

	// OrderKey is a random secret component of the order's ticket keys.
	// It never appears in URLs or responses.
	OrderKey string `gorm:"type:uuid;not null" json:"-"`

	IsConfirmed bool `gorm:"default:true" json:"isConfirmed"`

	Items   []OrderItem `gorm:"foreignKey:OrderId" json:"items,omitempty"`
	Tickets []Ticket    `gorm:"foreignKey:OrderId" json:"-"`
}

type Orders []Order

// OrderItem is an immutable snapshot of one offer at purchase time. Name and
// unit price are copied so later catalog edits do not rewrite history; the
// offer reference remains for analytics only.
type OrderItem struct {
	DTO
	OrderId uint  `gorm:"not null;index" json:"orderId"`
	Order   Order `gorm:"foreignKey:OrderId;constraint:OnDelete:CASCADE" json:"-"`
	OfferId uint  `gorm:"not null;index" json:"offerId"`
	Offer   Offer `gorm:"foreignKey:OfferId;constraint:OnDelete:CASCADE" json:"-"`

	Name     string          `gorm:"not null;size:255" json:"name"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity uint            `gorm:"not null" json:"quantity"`
}
