package service

import (
	"testing"

	"sweet-shop/database"
	"sweet-shop/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetRestoresSeedState(t *testing.T) {
	setupTestDB(t)

	userService := UserService{}
	sweetService := SweetService{}
	purchaseService := PurchaseService{}

	// Dirty the store: extra account, extra sweet, a purchase, a deletion.
	_, err := userService.Register("extra@shop.com", "pw")
	require.NoError(t, err)
	added, err := sweetService.AddSweet("Rock Candy", "Candy", 0.99, 10)
	require.NoError(t, err)
	bar := findSweetByName(t, "Chocolate Bar")
	_, err = purchaseService.Purchase(bar.Id, 1, 5)
	require.NoError(t, err)
	require.NoError(t, sweetService.DeleteSweet(added.Id))

	require.NoError(t, (&ResetService{}).Reset())

	// Exactly the two protected accounts remain
	var users []model.User
	require.NoError(t, database.GetDB().Order("email").Find(&users).Error)
	require.Len(t, users, 2)
	assert.Equal(t, database.AdminEmail, users[0].Email)
	assert.Equal(t, database.UserEmail, users[1].Email)

	// Full default catalog, fresh quantities
	sweets, err := sweetService.GetSweets()
	require.NoError(t, err)
	assert.Len(t, sweets, 20)
	assert.Equal(t, 50, findSweetByName(t, "Chocolate Bar").Quantity)

	// Ledger cleared
	assert.Equal(t, int64(0), ledgerCount(t))
}

func TestResetIsRepeatable(t *testing.T) {
	setupTestDB(t)

	service := ResetService{}
	require.NoError(t, service.Reset())
	require.NoError(t, service.Reset())

	sweets, err := (&SweetService{}).GetSweets()
	require.NoError(t, err)
	assert.Len(t, sweets, 20)
}
