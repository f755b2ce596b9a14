package handler

import (
	"context"
	"errors"
	"log"
	"olympic_ticketing/constants"
	"olympic_ticketing/database"
	"olympic_ticketing/helper"
	"olympic_ticketing/model"
	"olympic_ticketing/utils"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateOrder drains the session cart into a confirmed order with its full
// ticket set. The database work is one transaction; the cart is cleared only
// after commit, so a failed order leaves it intact for another attempt.
func CreateOrder(c *fiber.Ctx) error {
	_, user := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_REQUIRED, nil)
	}

	sessionID := helper.CartSessionID(c)
	cart, err := helper.Carts.Load(context.Background(), sessionID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	items, err := helper.ResolveCartItems(database.DB, cart)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	order, err := helper.PlaceOrder(database.DB, *user, items)
	if err != nil {
		if errors.Is(err, helper.ErrCartEmpty) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CART_EMPTY, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ORDER_FAILED, err)
	}

	if err := helper.Carts.Clear(context.Background(), sessionID); err != nil {
		log.Printf("failed to clear cart for session %s: %v", sessionID, err)
	}

	var tickets model.Tickets
	database.DB.Where("order_id = ?", order.ID).Find(&tickets)
	go helper.SendOrderConfirmationEmail(order, *user, tickets)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"orderId": order.ID,
		"total":   order.Total,
		"tickets": len(tickets),
	})
}

// GetOrderConfirmation renders the user's most recent order with its line
// items and tickets grouped by offer name.
func GetOrderConfirmation(c *fiber.Ctx) error {
	_, user := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_REQUIRED, nil)
	}

	var order model.Order
	err := database.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"order": nil})
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var tickets model.Tickets
	if err := database.DB.
		Preload("Offer").
		Where("order_id = ?", order.ID).
		Order("created_at desc").
		Find(&tickets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	ticketsByOffer := map[string][]fiber.Map{}
	for _, ticket := range tickets {
		offerName := ticket.Offer.Name
		ticketsByOffer[offerName] = append(ticketsByOffer[offerName], fiber.Map{
			"id":        ticket.ID,
			"finalKey":  ticket.FinalKey,
			"qrCodeUrl": ticket.QRCodeUrl,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"order":          order,
		"ticketsByOffer": ticketsByOffer,
	})
}

// GetMyOrders lists the user's orders, most recently updated first.
func GetMyOrders(c *fiber.Ctx) error {
	_, user := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_REQUIRED, nil)
	}

	var limit, page *int
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		limit = &v
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		page = &v
	}

	var orders model.Orders
	query := database.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		Where("user_id = ?", user.ID).
		Order("updated_at desc")
	if err := utils.ApplyPagination(query, limit, page).Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}
