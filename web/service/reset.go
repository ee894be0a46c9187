package service

import (
	"sweet-shop/database"
	"sweet-shop/database/model"
	"sweet-shop/logger"

	"gorm.io/gorm"
)

type ResetService struct{}

// Reset clears the ledger and the catalog, deletes every account except
// the two seed accounts, and re-seeds the default data. Destructive; the
// controller gates it behind the shared secret.
func (s *ResetService) Reset() error {
	db := database.GetDB()

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Purchase{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&model.Sweet{}).Error; err != nil {
			return err
		}
		return tx.Where("email NOT IN ?", []string{database.AdminEmail, database.UserEmail}).
			Delete(&model.User{}).
			Error
	})
	if err != nil {
		return err
	}

	if err := database.SeedUsers(); err != nil {
		return err
	}
	if err := database.SeedSweets(); err != nil {
		return err
	}

	logger.Warning("database reset: catalog and ledger cleared, defaults re-seeded")
	return nil
}
