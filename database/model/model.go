// Package model defines the persistent types of the sweet-shop store.
package model

// User is a shop account. Passwords are stored as received unless
// SWEETSHOP_HASH_PASSWORDS is enabled; see web/service.UserService.
type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"`
	IsAdmin  bool   `json:"isAdmin" gorm:"column:isAdmin;default:false"`
}

// Sweet is one catalog entry.
type Sweet struct {
	Id       int     `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Name     string  `json:"name" form:"name" gorm:"unique;not null"`
	Category string  `json:"category" form:"category"`
	Price    float64 `json:"price" form:"price"`
	Quantity int     `json:"quantity" form:"quantity" gorm:"default:0"`
}

// Purchase is an append-only ledger row. SweetName and Price are snapshots
// taken at purchase time; later catalog edits must not change them.
type Purchase struct {
	Id        int     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId    int     `json:"user_id" gorm:"column:user_id"`
	SweetName string  `json:"sweet_name" gorm:"column:sweet_name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Date      string  `json:"date"`
}
