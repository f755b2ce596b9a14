package handler

import (
	"context"
	"errors"
	"olympic_ticketing/constants"
	"olympic_ticketing/database"
	"olympic_ticketing/helper"
	"olympic_ticketing/model"
	"olympic_ticketing/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetCartSummary resolves the session cart against the live catalog and
// returns the priced items, the total and the unit count.
func GetCartSummary(c *fiber.Ctx) error {
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

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"items": items,
		"total": helper.CartTotal(items),
		"size":  cart.Len(),
	})
}

func AddOfferToCart(c *fiber.Ctx) error {
	_, user := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_REQUIRED, nil)
	}

	input := c.Locals("input").(model.CartOfferInput)

	var offer model.Offer
	if err := database.DB.First(&offer, input.OfferId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.OFFER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	sessionID := helper.CartSessionID(c)
	cart, err := helper.Carts.Load(context.Background(), sessionID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if cart.Add(offer) {
		if err := helper.Carts.Save(context.Background(), sessionID, cart); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"size": cart.Len()})
}

func UpdateCartQuantity(c *fiber.Ctx) error {
	_, user := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_REQUIRED, nil)
	}

	input := c.Locals("input").(model.CartQuantityInput)

	sessionID := helper.CartSessionID(c)
	cart, err := helper.Carts.Load(context.Background(), sessionID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if !cart.UpdateQuantity(input.OfferId, input.Quantity) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.OFFER_NOT_IN_CART, nil)
	}
	if err := helper.Carts.Save(context.Background(), sessionID, cart); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"size": cart.Len()})
}

func RemoveOfferFromCart(c *fiber.Ctx) error {
	_, user := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_REQUIRED, nil)
	}

	input := c.Locals("input").(model.CartOfferInput)

	sessionID := helper.CartSessionID(c)
	cart, err := helper.Carts.Load(context.Background(), sessionID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	cart.Remove(input.OfferId)
	if err := helper.Carts.Save(context.Background(), sessionID, cart); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"size": cart.Len()})
}
