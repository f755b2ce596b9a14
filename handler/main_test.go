package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"olympic_ticketing/database"
	"olympic_ticketing/helper"
	"olympic_ticketing/model"
	"olympic_ticketing/router"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "handler-test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	database.Migrate(db)
	database.DB = db

	helper.Carts = helper.NewMemoryCartStore()
	helper.Store = helper.NewMemoryStorage()

	app := fiber.New()
	router.SetupRoutes(app)
	return app, db
}

func signupUser(t *testing.T, db *gorm.DB, email string, staff bool) (model.User, string) {
	t.Helper()
	hash, err := helper.HashPassword("s3cretpass")
	require.NoError(t, err)

	user := model.User{
		Email:           email,
		FirstName:       "Marie",
		LastName:        "Curie",
		Password:        hash,
		RegistrationKey: uuid.NewString(),
		IsStaff:         staff,
		IsActive:        true,
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := helper.GenerateAccessToken(model.TokenClaim{UserId: user.ID, Email: user.Email})
	require.NoError(t, err)
	return user, token
}

func seedOffer(t *testing.T, db *gorm.DB, name string, seats uint, price string) model.Offer {
	t.Helper()
	offer := model.Offer{
		Name:        name,
		Slug:        strings.ToLower(name),
		Description: "test offer",
		Seats:       seats,
		Price:       decimal.RequireFromString(price),
		IsActive:    true,
	}
	require.NoError(t, db.Create(&offer).Error)
	return offer
}

// doRequest sends a JSON request with the given bearer token, replaying any
// cookies collected from earlier responses so the cart session survives
// across calls.
func doRequest(t *testing.T, app *fiber.App, method, target, token string, body any, cookies []*http.Cookie) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
