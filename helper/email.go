package helper

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"
	"olympic_ticketing/config"
	"olympic_ticketing/model"
	"olympic_ticketing/utils"

	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"
)

type OrderConfirmationData struct {
	FirstName string
	OrderId   uint
	Total     decimal.Decimal
	Items     []model.OrderItem
	Tickets   int
}

// SendOrderConfirmationEmail mails the buyer a recap with one QR attachment
// per ticket. Called in a goroutine after commit; failures are logged, never
// surfaced to the order flow.
func SendOrderConfirmationEmail(order model.Order, user model.User, tickets []model.Ticket) {
	host := config.Config("SMTP_HOST")
	if host == "" {
		log.Printf("SMTP not configured, skipping confirmation email for order #%d", order.ID)
		return
	}

	data := OrderConfirmationData{
		FirstName: user.FirstName,
		OrderId:   order.ID,
		Total:     order.Total,
		Items:     order.Items,
		Tickets:   len(tickets),
	}

	tmpl, err := template.ParseFiles("templates/order_confirmation.html")
	if err != nil {
		log.Printf("failed to load order confirmation template: %v", err)
		return
	}

	var htmlBody bytes.Buffer
	if err := tmpl.Execute(&htmlBody, data); err != nil {
		log.Printf("failed to render order confirmation template: %v", err)
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.Config("SMTP_FROM"))
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", fmt.Sprintf("Confirmation de commande #%d", order.ID))
	m.SetBody("text/html", htmlBody.String())

	for _, ticket := range tickets {
		qrBytes, err := utils.GenerateQRCode(ticket.FinalKey, ticketQRSize)
		if err != nil {
			log.Printf("failed to render QR for ticket #%d: %v", ticket.ID, err)
			continue
		}

		filename := TicketFilename(ticket.OrderId, ticket.OfferId, ticket.UniqueSuffix)
		m.Attach(filename, gomail.Rename(filename), gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(qrBytes))
			return err
		}))
	}

	d := gomail.NewDialer(host, 587, config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"))
	if err := d.DialAndSend(m); err != nil {
		log.Printf("failed to send confirmation email for order #%d: %v", order.ID, err)
	}
}
