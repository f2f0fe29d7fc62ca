package services

import (
	"hotel-backoffice/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Order("room_number").Find(&rooms).Error
	return rooms, err
}

// RoomNumbers returns just the numbers, in room-number order.
func (s *RoomService) RoomNumbers() ([]string, error) {
	var numbers []string
	err := s.DB.Model(&models.Room{}).Order("room_number").Pluck("room_number", &numbers).Error
	return numbers, err
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	err := s.DB.First(&room, id).Error
	return room, err
}
