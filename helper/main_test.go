package helper_test

import (
	"fmt"
	"olympic_ticketing/database"
	"olympic_ticketing/helper"
	"olympic_ticketing/model"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	database.Migrate(db)
	return db
}

func newMemoryStore(t *testing.T) *helper.MemoryStorage {
	t.Helper()
	store := helper.NewMemoryStorage()
	helper.Store = store
	return store
}

func makeUser(t *testing.T, db *gorm.DB, email string) model.User {
	t.Helper()
	user := model.User{
		Email:           email,
		FirstName:       "John",
		LastName:        "Doe",
		Password:        "irrelevant",
		RegistrationKey: uuid.NewString(),
		IsActive:        true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func makeOffer(t *testing.T, db *gorm.DB, name string, seats uint, price string) model.Offer {
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

func cartWith(t *testing.T, db *gorm.DB, offers ...model.Offer) []model.CartItem {
	t.Helper()
	cart := model.NewCart()
	for _, offer := range offers {
		cart.Add(offer)
	}
	items, err := helper.ResolveCartItems(db, cart)
	require.NoError(t, err)
	return items
}
