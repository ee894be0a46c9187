package service

import (
	"sweet-shop/database"
	"sweet-shop/database/model"
	"sweet-shop/logger"

	"gorm.io/gorm"
)

// restockStep is the fixed quantity added by a restock.
const restockStep = 10

// defaultCategory is assigned when a sweet is created without one.
const defaultCategory = "General"

type SweetService struct{}

// GetSweets lists the catalog, newest first.
func (s *SweetService) GetSweets() ([]model.Sweet, error) {
	db := database.GetDB()

	// Non-nil so an empty catalog serializes as [] and not null.
	sweets := make([]model.Sweet, 0)
	err := db.Model(model.Sweet{}).
		Order("id desc").
		Find(&sweets).
		Error
	if err != nil {
		return nil, err
	}
	return sweets, nil
}

// SearchSweets filters the catalog by case-insensitive substring match on
// name and category independently. An empty filter matches everything.
func (s *SweetService) SearchSweets(name string, category string) ([]model.Sweet, error) {
	db := database.GetDB()

	sweets := make([]model.Sweet, 0)
	err := db.Model(model.Sweet{}).
		Where("name LIKE ? AND category LIKE ?", "%"+name+"%", "%"+category+"%").
		Find(&sweets).
		Error
	if err != nil {
		return nil, err
	}
	return sweets, nil
}

// GetSweet fetches one sweet by id; gorm.ErrRecordNotFound if missing.
func (s *SweetService) GetSweet(id int) (*model.Sweet, error) {
	db := database.GetDB()

	sweet := &model.Sweet{}
	err := db.Model(model.Sweet{}).
		Where("id = ?", id).
		First(sweet).
		Error
	if err != nil {
		return nil, err
	}
	return sweet, nil
}

// AddSweet creates a catalog entry. Name must be unique; category defaults
// to "General" and quantity to 0.
func (s *SweetService) AddSweet(name string, category string, price float64, quantity int) (*model.Sweet, error) {
	db := database.GetDB()

	if category == "" {
		category = defaultCategory
	}

	sweet := &model.Sweet{
		Name:     name,
		Category: category,
		Price:    price,
		Quantity: quantity,
	}
	if err := db.Create(sweet).Error; err != nil {
		logger.Warning("add sweet err:", err)
		return nil, ErrSweetExists
	}
	logger.Infof("sweet added with id %d", sweet.Id)
	return sweet, nil
}

// DeleteSweet removes a catalog entry; gorm.ErrRecordNotFound if missing.
func (s *SweetService) DeleteSweet(id int) error {
	db := database.GetDB()

	result := db.Where("id = ?", id).Delete(&model.Sweet{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RestockSweet increments stock by the fixed step and returns the updated
// sweet; gorm.ErrRecordNotFound if the id is unknown.
func (s *SweetService) RestockSweet(id int) (*model.Sweet, error) {
	db := database.GetDB()

	result := db.Model(&model.Sweet{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", restockStep))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.GetSweet(id)
}

// GetCategories returns the distinct non-null categories, sorted ascending.
func (s *SweetService) GetCategories() ([]string, error) {
	db := database.GetDB()

	categories := make([]string, 0)
	err := db.Model(model.Sweet{}).
		Distinct("category").
		Where("category IS NOT NULL").
		Order("category").
		Pluck("category", &categories).
		Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
