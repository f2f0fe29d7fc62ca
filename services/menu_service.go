package services

import (
	"hotel-backoffice/models"

	"gorm.io/gorm"
)

// MenuService is plain catalog CRUD; no cross-entity rules here.
type MenuService struct {
	DB *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{DB: db}
}

func (s *MenuService) CreateCategory(cat models.MenuCategory) (models.MenuCategory, error) {
	err := s.DB.Create(&cat).Error
	return cat, err
}

func (s *MenuService) ListCategories() ([]models.MenuCategory, error) {
	var cats []models.MenuCategory
	err := s.DB.Order("name").Find(&cats).Error
	return cats, err
}

func (s *MenuService) DeleteCategory(id uint) error {
	res := s.DB.Delete(&models.MenuCategory{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *MenuService) CreateItem(item models.MenuItem) (models.MenuItem, error) {
	if item.CategoryID != nil {
		var cat models.MenuCategory
		if err := s.DB.First(&cat, *item.CategoryID).Error; err != nil {
			return models.MenuItem{}, err
		}
	}
	err := s.DB.Create(&item).Error
	return item, err
}

func (s *MenuService) ListItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.DB.Preload("Category").Order("name").Find(&items).Error
	return items, err
}

func (s *MenuService) UpdateItem(id uint, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "updated_at")
	delete(fields, "deleted_at")
	res := s.DB.Model(&models.MenuItem{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *MenuService) DeleteItem(id uint) error {
	res := s.DB.Delete(&models.MenuItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
