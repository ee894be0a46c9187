// Package database manages the sqlite store lifecycle: connection, schema
// migration, and default-data seeding.
package database

import (
	"io/fs"
	"log"
	"os"
	"path"

	"sweet-shop/config"
	"sweet-shop/database/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

const (
	// Seed accounts. These two survive a database reset.
	AdminEmail    = "admin@shop.com"
	AdminPassword = "admin123"
	UserEmail     = "user@shop.com"
	UserPassword  = "user123"
)

func initModels() error {
	models := []interface{}{
		&model.User{},
		&model.Sweet{},
		&model.Purchase{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

func isTableEmpty(tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

// SeedUsers inserts the two default accounts when the users table is empty.
func SeedUsers() error {
	empty, err := isTableEmpty("users")
	if err != nil {
		log.Printf("Error checking if users table is empty: %v", err)
		return err
	}
	if !empty {
		return nil
	}
	users := []model.User{
		{Email: AdminEmail, Password: AdminPassword, IsAdmin: true},
		{Email: UserEmail, Password: UserPassword, IsAdmin: false},
	}
	return db.Create(&users).Error
}

// SeedSweets inserts the embedded default catalog when the sweets table is
// empty.
func SeedSweets() error {
	empty, err := isTableEmpty("sweets")
	if err != nil {
		log.Printf("Error checking if sweets table is empty: %v", err)
		return err
	}
	if !empty {
		return nil
	}
	seeds, err := config.GetSeedSweets()
	if err != nil {
		return err
	}
	sweets := make([]model.Sweet, 0, len(seeds))
	for _, s := range seeds {
		sweets = append(sweets, model.Sweet{
			Name:     s.Name,
			Category: s.Category,
			Price:    s.Price,
			Quantity: s.Quantity,
		})
	}
	return db.Create(&sweets).Error
}

func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface

	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	_, err = sqlDB.Exec("PRAGMA cache_size = -64000;")
	if err != nil {
		return err
	}
	_, err = sqlDB.Exec("PRAGMA temp_store = MEMORY;")
	if err != nil {
		return err
	}
	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	if err := SeedUsers(); err != nil {
		return err
	}
	if err := SeedSweets(); err != nil {
		return err
	}

	return nil
}

func CloseDB() error {
	if db != nil {

		if err := Checkpoint(); err != nil {
			log.Printf("error executing checkpoint: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}

func Checkpoint() error {
	// Update WAL
	err := db.Exec("PRAGMA wal_checkpoint;").Error
	if err != nil {
		return err
	}
	return nil
}
