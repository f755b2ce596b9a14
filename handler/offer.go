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
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOffers lists the offers currently on sale, smallest packages first.
func GetOffers(c *fiber.Ctx) error {
	var offers model.Offers
	if err := database.DB.
		Where("is_active = ?", true).
		Order("seats asc").
		Find(&offers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, offers)
}

func GetOfferBySlug(c *fiber.Ctx) error {
	slugParam := c.Params("slug")

	var offer model.Offer
	if err := database.DB.Where("slug = ?", slugParam).First(&offer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.OFFER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, offer)
}

func CreateOffer(c *fiber.Ctx) error {
	_, user := helper.GetInfoUserFromToken(c)
	if user == nil || !user.IsStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_AUTHORIZED, nil)
	}

	input := c.Locals("input").(model.CreateOfferInput)

	price, err := decimal.NewFromString(input.Price)
	if err != nil || !price.IsPositive() || price.Exponent() < -2 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PRICE, err)
	}

	var offer model.Offer
	if err := copier.Copy(&offer, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	offer.Price = price
	offer.IsActive = true

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Offer{}).Where("name = ?", offer.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errors.New(constants.OFFER_NAME_TAKEN)
		}
		offer.Slug = helper.GenerateUniqueOfferSlug(tx, offer.Name)
		return tx.Create(&offer).Error
	})
	if err != nil {
		if err.Error() == constants.OFFER_NAME_TAKEN {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.OFFER_NAME_TAKEN, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, offer)
}

func EditOffer(c *fiber.Ctx) error {
	_, user := helper.GetInfoUserFromToken(c)
	if user == nil || !user.IsStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_AUTHORIZED, nil)
	}

	offerId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.EditOfferInput)

	var offer model.Offer
	if err := database.DB.First(&offer, offerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.OFFER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Name != nil && *input.Name != offer.Name {
		offer.Name = *input.Name
		offer.Slug = helper.GenerateUniqueOfferSlug(database.DB, offer.Name)
	}
	if input.Description != nil {
		offer.Description = *input.Description
	}
	if input.Seats != nil {
		offer.Seats = *input.Seats
	}
	if input.Price != nil {
		price, err := decimal.NewFromString(*input.Price)
		if err != nil || !price.IsPositive() || price.Exponent() < -2 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PRICE, err)
		}
		offer.Price = price
	}

	if err := database.DB.Save(&offer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, offer)
}

// SetOfferActive toggles whether an offer is on sale. Offers are never
// deleted; deactivation is how they leave the catalog.
func SetOfferActive(c *fiber.Ctx) error {
	_, user := helper.GetInfoUserFromToken(c)
	if user == nil || !user.IsStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_AUTHORIZED, nil)
	}

	offerId := c.Locals("inputId").(int)

	flag := c.Params("isActive")
	if flag != "true" && flag != "false" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_ACTIVE_FLAG, errors.New("params invalid"))
	}
	isActive := flag == "true"

	result := database.DB.Model(&model.Offer{}).Where("id = ?", offerId).Update("is_active", isActive)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.OFFER_NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"isActive": isActive})
}

// UploadOfferThumbnail stores the offer's illustration and records its URL.
func UploadOfferThumbnail(c *fiber.Ctx) error {
	_, user := helper.GetInfoUserFromToken(c)
	if user == nil || !user.IsStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_AUTHORIZED, nil)
	}

	offerId := c.Locals("inputId").(int)

	var offer model.Offer
	if err := database.DB.First(&offer, offerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.OFFER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	file, err := c.FormFile("thumbnail")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing thumbnail file", err)
	}
	reader, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	defer reader.Close()

	url, err := helper.Store.Upload(context.Background(), "offers", offer.Slug, reader)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Model(&offer).Update("thumbnail", url).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"thumbnail": url})
}
