package service

import (
	"fmt"
	"time"

	"sweet-shop/database"
	"sweet-shop/database/model"
	"sweet-shop/logger"
	"sweet-shop/util/common"
	"sweet-shop/web/entity"

	"gorm.io/gorm"
)

// receiptDateLayout renders the human-readable purchase timestamp, e.g.
// "Sat, Aug 30, 2025, 02:05 PM".
const receiptDateLayout = "Mon, Jan 2, 2006, 03:04 PM"

// historyLimit caps the purchase-history listing.
const historyLimit = 50

type PurchaseService struct{}

// Purchase decrements stock and appends a ledger row in one transaction.
//
// The decrement is conditional on sufficient stock, so concurrent purchases
// can never drive quantity negative, and the ledger row is only written
// when the decrement committed. Zero affected rows means the stock check
// failed and the transaction rolls back.
func (s *PurchaseService) Purchase(sweetId int, userId int, quantity int) (*entity.PurchaseReceipt, error) {
	if quantity <= 0 {
		return nil, common.NewErrorf("invalid quantity %d", quantity)
	}

	db := database.GetDB()

	var receipt *entity.PurchaseReceipt
	err := db.Transaction(func(tx *gorm.DB) error {
		sweet := &model.Sweet{}
		if err := tx.Where("id = ?", sweetId).First(sweet).Error; err != nil {
			return err
		}

		result := tx.Model(&model.Sweet{}).
			Where("id = ? AND quantity >= ?", sweetId, quantity).
			Update("quantity", gorm.Expr("quantity - ?", quantity))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return &InsufficientStockError{Available: sweet.Quantity}
		}

		purchase := &model.Purchase{
			UserId:    userId,
			SweetName: sweet.Name,
			Quantity:  quantity,
			Price:     sweet.Price,
			Date:      time.Now().Format(receiptDateLayout),
		}
		if err := tx.Create(purchase).Error; err != nil {
			return err
		}

		receipt = &entity.PurchaseReceipt{
			PurchaseId: purchase.Id,
			SweetName:  sweet.Name,
			Quantity:   quantity,
			UnitPrice:  sweet.Price,
			TotalPrice: sweet.Price * float64(quantity),
			Date:       purchase.Date,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Infof("purchase %d: %dx %s for user %d", receipt.PurchaseId, quantity, receipt.SweetName, userId)
	return receipt, nil
}

// GetUserPurchases returns a user's most recent purchases with totals.
func (s *PurchaseService) GetUserPurchases(userId int) (*entity.PurchaseHistory, error) {
	db := database.GetDB()

	purchases := make([]model.Purchase, 0)
	err := db.Model(model.Purchase{}).
		Where("user_id = ?", userId).
		Order("date desc, id desc").
		Limit(historyLimit).
		Find(&purchases).
		Error
	if err != nil {
		return nil, err
	}

	totalItems := 0
	totalAmount := 0.0
	for _, p := range purchases {
		totalItems += p.Quantity
		totalAmount += p.Price * float64(p.Quantity)
	}

	return &entity.PurchaseHistory{
		Purchases: purchases,
		Summary: entity.PurchaseSummary{
			TotalItems:    totalItems,
			TotalAmount:   fmt.Sprintf("%.2f", totalAmount),
			PurchaseCount: len(purchases),
		},
	}, nil
}
