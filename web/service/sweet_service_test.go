package service

import (
	"testing"

	"sweet-shop/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSweetsSeeded(t *testing.T) {
	setupTestDB(t)

	service := SweetService{}

	sweets, err := service.GetSweets()
	require.NoError(t, err)
	require.Len(t, sweets, 20)

	// Ordered by id descending
	for i := 1; i < len(sweets); i++ {
		assert.Greater(t, sweets[i-1].Id, sweets[i].Id)
	}
}

func TestAddSweetDefaults(t *testing.T) {
	setupTestDB(t)

	service := SweetService{}

	sweet, err := service.AddSweet("Nougat", "", 2.79, 0)
	require.NoError(t, err)
	assert.Equal(t, "General", sweet.Category)
	assert.Equal(t, 0, sweet.Quantity)

	_, err = service.AddSweet("Nougat", "Candy", 3.00, 5)
	assert.ErrorIs(t, err, ErrSweetExists)
}

func TestSearchSweets(t *testing.T) {
	setupTestDB(t)

	service := SweetService{}

	// Case-insensitive substring on name
	byName, err := service.SearchSweets("chocolate", "")
	require.NoError(t, err)
	require.NotEmpty(t, byName)
	for _, s := range byName {
		assert.Contains(t, s.Name, "Chocolate")
	}

	// Category filter alone
	byCategory, err := service.SearchSweets("", "bakery")
	require.NoError(t, err)
	require.NotEmpty(t, byCategory)
	for _, s := range byCategory {
		assert.Equal(t, "Bakery", s.Category)
	}

	// Both filters together
	both, err := service.SearchSweets("dark", "chocolate")
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Dark Chocolate", both[0].Name)

	// Empty filters match everything
	all, err := service.SearchSweets("", "")
	require.NoError(t, err)
	assert.Len(t, all, 20)

	// No match returns an empty, non-nil slice
	none, err := service.SearchSweets("liquorice", "")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestGetSweetNotFound(t *testing.T) {
	setupTestDB(t)

	service := SweetService{}

	_, err := service.GetSweet(99999)
	assert.True(t, database.IsNotFound(err))
}

func TestDeleteSweet(t *testing.T) {
	setupTestDB(t)

	service := SweetService{}

	sweet, err := service.AddSweet("Marzipan", "Candy", 3.25, 10)
	require.NoError(t, err)

	require.NoError(t, service.DeleteSweet(sweet.Id))
	_, err = service.GetSweet(sweet.Id)
	assert.True(t, database.IsNotFound(err))

	err = service.DeleteSweet(sweet.Id)
	assert.True(t, database.IsNotFound(err))
}

func TestRestockAddsFixedStep(t *testing.T) {
	setupTestDB(t)

	service := SweetService{}

	sweet, err := service.AddSweet("Liquorice", "Candy", 1.25, 3)
	require.NoError(t, err)

	restocked, err := service.RestockSweet(sweet.Id)
	require.NoError(t, err)
	assert.Equal(t, 13, restocked.Quantity)

	restocked, err = service.RestockSweet(sweet.Id)
	require.NoError(t, err)
	assert.Equal(t, 23, restocked.Quantity)

	_, err = service.RestockSweet(99999)
	assert.True(t, database.IsNotFound(err))
}

func TestGetCategories(t *testing.T) {
	setupTestDB(t)

	service := SweetService{}

	categories, err := service.GetCategories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Bakery", "Candy", "Chocolate", "Frozen"}, categories)
}
