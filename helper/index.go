package helper

import (
	"errors"
	"fmt"
	"olympic_ticketing/config"
	"olympic_ticketing/database"
	"olympic_ticketing/model"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetUserByEmail(e string) (*model.User, error) {
	db := database.DB
	var user model.User
	if err := db.Where(&model.User{Email: e}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(jwtSecret())
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(jwtSecret())
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})

	return token, err
}

// GetInfoUserFromToken resolves the authenticated user stashed by the
// Protected middleware. The second return is nil when the token does not map
// to an active user.
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, *model.User) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, nil
	}
	userId, ok := claims["userId"].(float64)
	if !ok {
		return model.TokenClaim{}, nil
	}
	email, _ := claims["email"].(string)

	tokenClaim := model.TokenClaim{UserId: uint(userId), Email: email}

	var user model.User
	if err := database.DB.First(&user, tokenClaim.UserId).Error; err != nil {
		return tokenClaim, nil
	}
	if !user.IsActive {
		return tokenClaim, nil
	}
	return tokenClaim, &user
}
