package model

import "github.com/shopspring/decimal"

type Offer struct {
	DTO
	Name        string          `gorm:"unique;not null;size:100" json:"name"`
	Slug        string          `gorm:"uniqueIndex;not null;size:120" json:"slug"`
	Thumbnail   string          `json:"thumbnail"`
	Description string          `json:"description"`
	Seats       uint            `gorm:"not null;default:1" json:"seats"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	IsActive    bool            `gorm:"default:true" json:"isActive"`
	Sales       uint            `gorm:"not null;default:0" json:"sales"`
}

type Offers []Offer

type CreateOfferInput struct {
	Name        string `validate:"required,max=100" json:"name"`
	Description string `validate:"required" json:"description"`
	Seats       uint   `validate:"required,min=1" json:"seats"`
	Price       string `validate:"required" json:"price"`
}

type EditOfferInput struct {
	Name        *string `validate:"omitempty,max=100" json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Seats       *uint   `validate:"omitempty,min=1" json:"seats,omitempty"`
	Price       *string `json:"price,omitempty"`
}
