// Package service implements the sweet-shop domain operations over the
// store: accounts, catalog, purchasing, reporting, and reset.
package service

import (
	"sweet-shop/config"
	"sweet-shop/database"
	"sweet-shop/database/model"
	"sweet-shop/logger"
	"sweet-shop/util/crypto"

	"gorm.io/gorm"
)

type UserService struct{}

// Register creates a non-admin account. The email must not be taken.
//
// The credential is stored verbatim unless SWEETSHOP_HASH_PASSWORDS is set;
// plaintext storage matches the legacy behavior and is a known defect.
func (s *UserService) Register(email string, password string) (*model.User, error) {
	db := database.GetDB()

	var count int64
	if err := db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUserExists
	}

	stored := password
	if config.HashPasswords() {
		hashed, err := crypto.HashPasswordAsBcrypt(password)
		if err != nil {
			return nil, err
		}
		stored = hashed
	}

	user := &model.User{Email: email, Password: stored, IsAdmin: false}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	logger.Infof("user registered with id %d", user.Id)
	return user, nil
}

// CheckUser returns the account matching the credentials, or nil. A stored
// bcrypt hash and a legacy plaintext row both verify, so enabling the
// hashing mode does not lock out existing accounts.
func (s *UserService) CheckUser(email string, password string) *model.User {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if user.Password == password || crypto.CheckPasswordHash(user.Password, password) {
		return user
	}
	return nil
}
