package service

import (
	"testing"

	"sweet-shop/database"
	"sweet-shop/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStats(t *testing.T) {
	setupTestDB(t)

	service := StatsService{}

	stats, err := service.GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(20), stats.TotalSweets)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(0), stats.TotalPurchases)

	// Total value tracks the catalog: sum over price * quantity.
	var want float64
	require.NoError(t, database.GetDB().Model(&model.Sweet{}).
		Select("SUM(price * quantity)").Scan(&want).Error)
	assert.InDelta(t, want, stats.TotalValue, 1e-9)
	assert.Greater(t, stats.TotalValue, 0.0)
}

func TestGetStatsEmptyCatalog(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, database.GetDB().Where("1 = 1").Delete(&model.Sweet{}).Error)

	service := StatsService{}
	stats, err := service.GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalSweets)
	assert.Equal(t, 0.0, stats.TotalValue)
}

func TestStatsCountPurchases(t *testing.T) {
	setupTestDB(t)

	purchaseService := PurchaseService{}
	bar := findSweetByName(t, "Chocolate Bar")
	_, err := purchaseService.Purchase(bar.Id, 1, 1)
	require.NoError(t, err)

	stats, err := (&StatsService{}).GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalPurchases)
}
