package handler

import (
	"errors"
	"olympic_ticketing/constants"
	"olympic_ticketing/database"
	"olympic_ticketing/helper"
	"olympic_ticketing/model"
	"olympic_ticketing/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Signup(c *fiber.Ctx) error {
	input := c.Locals("input").(model.SignupInput)

	existing, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_ALREADY_USED, errors.New("email taken"))
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	user := model.User{
		Email:           input.Email,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Password:        hash,
		RegistrationKey: uuid.NewString(),
		IsActive:        true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		// A signup for the same email can land between the lookup above and
		// this insert; the unique index is the source of truth.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_ALREADY_USED, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"id":        user.ID,
		"email":     user.Email,
		"firstname": user.FirstName,
		"lastname":  user.LastName,
	})
}

func Login(c *fiber.Ctx) error {
	input := c.Locals("input").(model.LoginInput)

	user, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil || !helper.CheckPasswordHash(input.Password, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, errors.New("bad credentials"))
	}
	if !user.IsActive {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("active false"))
	}

	tokenClaim := model.TokenClaim{
		UserId: user.ID,
		Email:  user.Email,
	}
	token, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"message": "login success",
		"user": fiber.Map{
			"id":        user.ID,
			"email":     user.Email,
			"firstname": user.FirstName,
			"lastname":  user.LastName,
			"isStaff":   user.IsStaff,
		},
	})
}

func Logout(c *fiber.Ctx) error {
	c.ClearCookie("access_token", "refresh_token")
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "logged out"})
}

func Me(c *fiber.Ctx) error {
	_, user := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_REQUIRED, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}
