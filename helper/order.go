package helper

import (
	"errors"
	"olympic_ticketing/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCartEmpty = errors.New("cart is empty")

// PlaceOrder turns resolved cart items into a confirmed order inside a single
// transaction: order header, batch line items, one atomic sales increment per
// item, then the full ticket set with QR codes. Any failure rolls everything
// back; nothing partial ever becomes visible.
func PlaceOrder(db *gorm.DB, user model.User, items []model.CartItem) (model.Order, error) {
	if len(items) == 0 {
		return model.Order{}, ErrCartEmpty
	}

	var order model.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		order = model.Order{
			UserId:      user.ID,
			Total:       CartTotal(items),
			OrderKey:    uuid.NewString(),
			IsConfirmed: true,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		orderItems := make([]model.OrderItem, 0, len(items))
		for _, item := range items {
			orderItems = append(orderItems, model.OrderItem{
				OrderId:  order.ID,
				OfferId:  item.Offer.ID,
				Name:     item.Offer.Name,
				Price:    item.UnitPrice,
				Quantity: item.Quantity,
			})
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return err
		}
		// The confirmation email renders from the returned header, so it
		// must carry the line items.
		order.Items = orderItems

		// Relative update so two simultaneous orders for the same offer
		// cannot lose an increment.
		for _, item := range orderItems {
			if err := tx.Model(&model.Offer{}).
				Where("id = ?", item.OfferId).
				UpdateColumn("sales", gorm.Expr("sales + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		return IssueOrderTickets(tx, order, user)
	})
	if err != nil {
		return model.Order{}, err
	}
	return order, nil
}
