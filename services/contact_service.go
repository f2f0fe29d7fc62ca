package services

import (
	"hotel-backoffice/models"

	"gorm.io/gorm"
)

type ContactService struct {
	DB *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{DB: db}
}

func (s *ContactService) Create(msg models.ContactMessage) (models.ContactMessage, error) {
	err := s.DB.Create(&msg).Error
	return msg, err
}

func (s *ContactService) List() ([]models.ContactMessage, error) {
	var out []models.ContactMessage
	err := s.DB.Order("id desc").Find(&out).Error
	return out, err
}
