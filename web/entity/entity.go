// Package entity defines the response shapes of the sweet-shop API.
package entity

import (
	"sweet-shop/database/model"
)

// Msg is the standard mutation response envelope.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// UserInfo is the public view of an account. The credential never leaves
// the store.
type UserInfo struct {
	Id      int    `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Success bool     `json:"success"`
	Msg     string   `json:"message"`
	User    UserInfo `json:"user"`
}

// SweetList wraps catalog listings; the client expects a "sweets" property.
type SweetList struct {
	Sweets []model.Sweet `json:"sweets"`
}

// SweetResponse is returned when a single sweet is created or restocked.
type SweetResponse struct {
	Success bool        `json:"success"`
	Msg     string      `json:"message"`
	Sweet   model.Sweet `json:"sweet"`
}

// PurchaseReceipt is the purchaseDetails object of a successful purchase.
// UnitPrice is the catalog price at time of sale.
type PurchaseReceipt struct {
	PurchaseId int     `json:"purchaseId"`
	SweetName  string  `json:"sweetName"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
	Date       string  `json:"date"`
}

// PurchaseResponse is returned by the purchase endpoint.
type PurchaseResponse struct {
	Success         bool            `json:"success"`
	Msg             string          `json:"message"`
	PurchaseDetails PurchaseReceipt `json:"purchaseDetails"`
}

// PurchaseSummary aggregates a user's purchase history. TotalAmount is a
// 2-decimal string for client parity.
type PurchaseSummary struct {
	TotalItems    int    `json:"totalItems"`
	TotalAmount   string `json:"totalAmount"`
	PurchaseCount int    `json:"purchaseCount"`
}

// PurchaseHistory is the purchase-history response.
type PurchaseHistory struct {
	Purchases []model.Purchase `json:"purchases"`
	Summary   PurchaseSummary  `json:"summary"`
}

// Stats reports store aggregates. TotalValue is the sum of price times
// quantity over the catalog.
type Stats struct {
	TotalSweets    int64   `json:"totalSweets"`
	TotalUsers     int64   `json:"totalUsers"`
	TotalPurchases int64   `json:"totalPurchases"`
	TotalValue     float64 `json:"totalValue"`
}
