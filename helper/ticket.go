package helper

import (
	"bytes"
	"context"
	"fmt"
	"olympic_ticketing/model"
	"olympic_ticketing/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const ticketQRSize = 256

// BuildTicketKey derives a ticket's final key from three independent random
// identifiers. Pure function; the collision probability is bounded by UUID
// collision probability even across users and orders.
func BuildTicketKey(registrationKey, orderKey, uniqueSuffix string) string {
	return fmt.Sprintf("%s-%s-%s", registrationKey, orderKey, uniqueSuffix)
}

// TicketFilename is the deterministic storage name of a ticket's QR image.
func TicketFilename(orderID, offerID uint, uniqueSuffix string) string {
	return fmt.Sprintf("ticket_%d_%d_%s.png", orderID, offerID, uniqueSuffix)
}

// IssueTicket mints one ticket for a single seat of the given order: assigns
// the suffix, derives the final key, persists the row and renders its QR code.
// Runs inside the caller's transaction so a duplicate key or a rendering
// failure aborts the whole order.
func IssueTicket(tx *gorm.DB, order model.Order, user model.User, offer model.Offer) (model.Ticket, error) {
	ticket := model.Ticket{
		OrderId:      order.ID,
		OfferId:      offer.ID,
		UniqueSuffix: uuid.NewString(),
	}
	ticket.FinalKey = BuildTicketKey(user.RegistrationKey, order.OrderKey, ticket.UniqueSuffix)

	if err := tx.Create(&ticket).Error; err != nil {
		return ticket, err
	}
	if err := GenerateTicketQR(tx, &ticket); err != nil {
		return ticket, err
	}
	return ticket, nil
}

// GenerateTicketQR renders the ticket's final key as a PNG, uploads it and
// records the URL. The final key is never recomputed here; calling this twice
// stores a second image and repoints the ticket at it.
func GenerateTicketQR(tx *gorm.DB, ticket *model.Ticket) error {
	qrBytes, err := utils.GenerateQRCode(ticket.FinalKey, ticketQRSize)
	if err != nil {
		return err
	}

	filename := TicketFilename(ticket.OrderId, ticket.OfferId, ticket.UniqueSuffix)
	url, err := Store.Upload(context.Background(), "tickets", filename, bytes.NewReader(qrBytes))
	if err != nil {
		return err
	}

	ticket.QRCodeUrl = url
	return tx.Model(ticket).Update("qr_code_url", url).Error
}

// IssueOrderTickets mints the complete ticket set for an order: one ticket per
// purchased seat, i.e. quantity × seats for every line item.
func IssueOrderTickets(tx *gorm.DB, order model.Order, user model.User) error {
	var items []model.OrderItem
	if err := tx.Preload("Offer").Where("order_id = ?", order.ID).Order("id").Find(&items).Error; err != nil {
		return err
	}

	for _, item := range items {
		seats := item.Quantity * item.Offer.Seats
		for i := uint(0); i < seats; i++ {
			if _, err := IssueTicket(tx, order, user, item.Offer); err != nil {
				return err
			}
		}
	}
	return nil
}
