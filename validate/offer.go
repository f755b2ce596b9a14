package validate

import (
	"errors"
	"olympic_ticketing/constants"
	"olympic_ticketing/model"
	"olympic_ticketing/utils"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func CreateOffer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOfferInput
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

func EditOffer(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		offerId, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditOfferInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("inputId", offerId)
		c.Locals("input", input)
		return c.Next()
	}
}
