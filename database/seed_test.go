package database_test

import (
	"fmt"
	"olympic_ticketing/database"
	"olympic_ticketing/model"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
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

func TestSeedData(t *testing.T) {
	db := newTestDB(t)

	database.SeedData(db)

	var admin model.User
	require.NoError(t, db.Where("email = ?", "admin@olympic-tickets.fr").First(&admin).Error)
	assert.True(t, admin.IsStaff)
	assert.NotEmpty(t, admin.RegistrationKey)

	var offers []model.Offer
	require.NoError(t, db.Order("seats").Find(&offers).Error)
	require.Len(t, offers, 3)
	assert.Equal(t, "Solo", offers[0].Name)
	assert.Equal(t, uint(1), offers[0].Seats)
	assert.Equal(t, "25.00", offers[0].Price.StringFixed(2))
	assert.Equal(t, "Duo", offers[1].Name)
	assert.Equal(t, uint(2), offers[1].Seats)
	assert.Equal(t, "Familiale", offers[2].Name)
	assert.Equal(t, uint(4), offers[2].Seats)
	assert.Equal(t, "familiale", offers[2].Slug)
}

func TestSeedDataIdempotent(t *testing.T) {
	db := newTestDB(t)

	database.SeedData(db)
	database.SeedData(db)

	var users, offers int64
	require.NoError(t, db.Model(&model.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&model.Offer{}).Count(&offers).Error)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(3), offers)
}
