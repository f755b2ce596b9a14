package model

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// CartEntry is the session snapshot of one offer: name, thumbnail, seat count
// and unit price are captured at add time so the summary can render without a
// catalog lookup. Quantity starts at 1 and only changes through an explicit
// quantity update.
type CartEntry struct {
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail"`
	Seats     uint   `json:"seats"`
	Price     string `json:"price"`
	Quantity  uint   `json:"quantity"`
}

// Cart is the per-session selection of offers, keyed by offer id. It carries
// no database handle; resolution against live offers happens in helper.
type Cart struct {
	Entries map[string]CartEntry `json:"entries"`
}

func NewCart() *Cart {
	return &Cart{Entries: map[string]CartEntry{}}
}

// Add inserts a new entry with quantity 1. Adding an offer that is already in
// the cart is a no-op; the quantity is not incremented. Reports whether the
// cart changed.
func (c *Cart) Add(offer Offer) bool {
	key := strconv.FormatUint(uint64(offer.ID), 10)
	if _, ok := c.Entries[key]; ok {
		return false
	}
	c.Entries[key] = CartEntry{
		Name:      offer.Name,
		Thumbnail: offer.Thumbnail,
		Seats:     offer.Seats,
		Price:     offer.Price.StringFixed(2),
		Quantity:  1,
	}
	return true
}

// UpdateQuantity sets the quantity of an offer already in the cart. Reports
// whether the offer was present.
func (c *Cart) UpdateQuantity(offerID uint, quantity uint) bool {
	key := strconv.FormatUint(uint64(offerID), 10)
	entry, ok := c.Entries[key]
	if !ok || quantity < 1 {
		return false
	}
	entry.Quantity = quantity
	c.Entries[key] = entry
	return true
}

func (c *Cart) Remove(offerID uint) {
	delete(c.Entries, strconv.FormatUint(uint64(offerID), 10))
}

// Len is the total number of selected units, not the number of entries.
func (c *Cart) Len() uint {
	var n uint
	for _, entry := range c.Entries {
		n += entry.Quantity
	}
	return n
}

func (c *Cart) Clear() {
	c.Entries = map[string]CartEntry{}
}

type CartOfferInput struct {
	OfferId uint `validate:"required,min=1" json:"offerId"`
}

type CartQuantityInput struct {
	OfferId  uint `validate:"required,min=1" json:"offerId"`
	Quantity uint `validate:"required,min=1" json:"quantity"`
}

// CartItem is a cart entry resolved against the live catalog: the current
// Offer row plus the priced line computed from the session snapshot.
type CartItem struct {
	Offer      Offer           `json:"offer"`
	Quantity   uint            `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}
