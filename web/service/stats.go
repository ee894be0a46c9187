package service

import (
	"sweet-shop/database"
	"sweet-shop/database/model"
	"sweet-shop/web/entity"
)

type StatsService struct{}

// GetStats reports row counts and the total inventory value.
func (s *StatsService) GetStats() (*entity.Stats, error) {
	db := database.GetDB()

	stats := &entity.Stats{}

	if err := db.Model(model.Sweet{}).Count(&stats.TotalSweets).Error; err != nil {
		return nil, err
	}
	if err := db.Model(model.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(model.Purchase{}).Count(&stats.TotalPurchases).Error; err != nil {
		return nil, err
	}

	// COALESCE keeps the value 0 instead of NULL on an empty catalog.
	err := db.Model(model.Sweet{}).
		Select("COALESCE(SUM(price * quantity), 0)").
		Scan(&stats.TotalValue).
		Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
