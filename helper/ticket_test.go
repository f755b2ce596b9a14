package helper_test

import (
	"olympic_ticketing/helper"
	"olympic_ticketing/model"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTicketKey(t *testing.T) {
	key := helper.BuildTicketKey("reg-key", "order-key", "suffix")
	assert.Equal(t, "reg-key-order-key-suffix", key)
}

func TestBuildTicketKeyDistinctSuffixes(t *testing.T) {
	reg := uuid.NewString()
	order := uuid.NewString()

	first := helper.BuildTicketKey(reg, order, uuid.NewString())
	second := helper.BuildTicketKey(reg, order, uuid.NewString())

	assert.NotEqual(t, first, second)
}

func TestTicketFilename(t *testing.T) {
	assert.Equal(t, "ticket_3_7_abc.png", helper.TicketFilename(3, 7, "abc"))
}

func TestGenerateTicketQRKeepsFinalKey(t *testing.T) {
	db := newTestDB(t)
	store := newMemoryStore(t)

	user := makeUser(t, db, "qr@example.com")
	offer := makeOffer(t, db, "Solo", 1, "25.00")

	order := model.Order{UserId: user.ID, OrderKey: uuid.NewString(), IsConfirmed: true}
	require.NoError(t, db.Create(&order).Error)

	ticket, err := helper.IssueTicket(db, order, user, offer)
	require.NoError(t, err)
	assert.Equal(t, helper.BuildTicketKey(user.RegistrationKey, order.OrderKey, ticket.UniqueSuffix), ticket.FinalKey)
	assert.NotEmpty(t, ticket.QRCodeUrl)

	originalKey := ticket.FinalKey
	require.NoError(t, helper.GenerateTicketQR(db, &ticket))

	var reloaded model.Ticket
	require.NoError(t, db.First(&reloaded, ticket.ID).Error)
	assert.Equal(t, originalKey, reloaded.FinalKey)
	assert.Equal(t, 2, store.Len())
}
