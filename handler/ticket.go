package handler

import (
	"errors"
	"olympic_ticketing/constants"
	"olympic_ticketing/database"
	"olympic_ticketing/helper"
	"olympic_ticketing/model"
	"olympic_ticketing/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GenerateTicketsForOrder is the recovery entry point for an order whose
// tickets are missing. It is a no-op when tickets already exist and is
// restricted to the order's owner.
func GenerateTicketsForOrder(c *fiber.Ctx) error {
	_, user := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_REQUIRED, nil)
	}

	orderId := c.Locals("inputId").(int)

	var order model.Order
	if err := database.DB.First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if order.UserId != user.ID {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_AUTHORIZED, errors.New("order owned by another user"))
	}

	var count int64
	if err := database.DB.Model(&model.Ticket{}).Where("order_id = ?", order.ID).Count(&count).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if count > 0 {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"generated": false,
			"tickets":   count,
		})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return helper.IssueOrderTickets(tx, order, *user)
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	database.DB.Model(&model.Ticket{}).Where("order_id = ?", order.ID).Count(&count)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"generated": true,
		"tickets":   count,
	})
}
