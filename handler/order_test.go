package handler_test

import (
	"net/http"
	"olympic_ticketing/constants"
	"olympic_ticketing/model"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderRequiresLogin(t *testing.T) {
	app, _ := setupApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/orders/", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	app, db := setupApp(t)
	_, token := signupUser(t, db, "buyer@example.com", false)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/orders/", token, nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, constants.CART_EMPTY, body["message"])

	var orders int64
	require.NoError(t, db.Model(&model.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)
}

func TestOrderFlow(t *testing.T) {
	app, db := setupApp(t)
	_, token := signupUser(t, db, "flow@example.com", false)
	solo := seedOffer(t, db, "Solo", 1, "25.00")
	duo := seedOffer(t, db, "Duo", 2, "40.00")

	resp := doRequest(t, app, http.MethodPost, "/api/v1/cart/add", token,
		model.CartOfferInput{OfferId: solo.ID}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookies := resp.Cookies()

	resp = doRequest(t, app, http.MethodPost, "/api/v1/cart/add", token,
		model.CartOfferInput{OfferId: duo.ID}, cookies)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(2), body["data"].(map[string]any)["size"])

	resp = doRequest(t, app, http.MethodPost, "/api/v1/orders/", token, nil, cookies)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body = decodeBody(t, resp)
	data := body["data"].(map[string]any)

	total, ok := data["total"].(string)
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString(total).Equal(decimal.RequireFromString("65.00")))
	// 1 seat for Solo plus 2 for Duo.
	assert.Equal(t, float64(3), data["tickets"])

	// The cart is drained once the order commits.
	resp = doRequest(t, app, http.MethodGet, "/api/v1/cart/", token, nil, cookies)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, float64(0), body["data"].(map[string]any)["size"])

	resp = doRequest(t, app, http.MethodGet, "/api/v1/orders/confirmation", token, nil, cookies)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	data = body["data"].(map[string]any)
	require.NotNil(t, data["order"])

	ticketsByOffer := data["ticketsByOffer"].(map[string]any)
	require.Len(t, ticketsByOffer, 2)
	assert.Len(t, ticketsByOffer["Solo"], 1)
	assert.Len(t, ticketsByOffer["Duo"], 2)
}

func TestGetOrderConfirmationWithoutOrder(t *testing.T) {
	app, db := setupApp(t)
	_, token := signupUser(t, db, "noorder@example.com", false)

	resp := doRequest(t, app, http.MethodGet, "/api/v1/orders/confirmation", token, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Nil(t, body["data"].(map[string]any)["order"])
}

func TestGetMyOrdersOnlyOwn(t *testing.T) {
	app, db := setupApp(t)
	buyer, token := signupUser(t, db, "mine@example.com", false)
	other, _ := signupUser(t, db, "other@example.com", false)

	for _, userID := range []uint{buyer.ID, other.ID} {
		order := model.Order{
			UserId:      userID,
			Total:       decimal.RequireFromString("25.00"),
			OrderKey:    uuid.NewString(),
			IsConfirmed: true,
		}
		require.NoError(t, db.Create(&order).Error)
	}

	resp := doRequest(t, app, http.MethodGet, "/api/v1/orders/", token, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	orders := body["data"].([]any)
	require.Len(t, orders, 1)
}
