package model

// Ticket is one physical seat of a confirmed order. FinalKey is derived once
// from three independent random identifiers (user registration key, order key,
// unique suffix) and never recomputed; the QR image encodes it.
type Ticket struct {
	DTO
	OrderId uint  `gorm:"not null;index" json:"orderId"`
	Order   Order `gorm:"foreignKey:OrderId;constraint:OnDelete:CASCADE" json:"-"`
	OfferId uint  `gorm:"not null;index" json:"offerId"`
	Offer   Offer `gorm:"foreignKey:OfferId;constraint:OnDelete:CASCADE" json:"-"`

	UniqueSuffix string `gorm:"type:uuid;not null" json:"-"`
	FinalKey     string `gorm:"size:200;uniqueIndex;not null" json:"finalKey"`
	QRCodeUrl    string `json:"qrCodeUrl"`
}

type Tickets []Ticket
