package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSeedSweets(t *testing.T) {
	seeds, err := GetSeedSweets()
	require.NoError(t, err)
	require.Len(t, seeds, 20)

	first := seeds[0]
	assert.Equal(t, "Chocolate Bar", first.Name)
	assert.Equal(t, "Chocolate", first.Category)
	assert.Equal(t, 4.99, first.Price)
	assert.Equal(t, 50, first.Quantity)

	for _, s := range seeds {
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Category)
		assert.Greater(t, s.Price, 0.0)
		assert.GreaterOrEqual(t, s.Quantity, 0)
	}
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, "sweet-shop", GetName())
	assert.Equal(t, "5000", GetPort())
	assert.Equal(t, "0.0.0.0", GetListen())
	assert.Equal(t, "reset123", GetResetSecret())
	assert.Equal(t, "http://localhost:3000", GetCORSOrigin())
	assert.False(t, HashPasswords())
}
