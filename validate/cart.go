package validate

import (
	"olympic_ticketing/model"
	"olympic_ticketing/utils"

	"github.com/gofiber/fiber/v2"
)

func CartOffer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CartOfferInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func CartQuantity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CartQuantityInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}
