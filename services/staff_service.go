package services

import (
	"hotel-backoffice/models"

	"gorm.io/gorm"
)

// StaffService is the registry side of staff: onboarding and lookups.
// Availability changes driven by task lifecycle live in HousekeepingService.
type StaffService struct {
	DB *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{DB: db}
}

func (s *StaffService) Create(staff models.Staff) (models.Staff, error) {
	if staff.Status == "" {
		staff.Status = models.StaffActive
	}
	err := s.DB.Create(&staff).Error
	return staff, err
}

// ListHousekeeping returns the staff the assignment UI can pick from.
func (s *StaffService) ListHousekeeping() ([]models.Staff, error) {
	var staff []models.Staff
	err := s.DB.Where("role = ?", models.RoleHousekeeping).Order("first_name").Find(&staff).Error
	return staff, err
}

func (s *StaffService) GetByID(id uint) (models.Staff, error) {
	var staff models.Staff
	err := s.DB.First(&staff, id).Error
	return staff, err
}
