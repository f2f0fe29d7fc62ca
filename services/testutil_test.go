package services

import (
	"testing"

	"hotel-backoffice/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// :memory: gives each connection its own database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Room{},
		&models.Staff{},
		&models.HousekeepingTask{},
		&models.InventoryItem{},
		&models.InventoryTransaction{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createRoom(t *testing.T, db *gorm.DB, number string) models.Room {
	t.Helper()
	room := models.Room{RoomNumber: number, Floor: "1", Type: "Standard"}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("failed to create room: %v", err)
	}
	return room
}

func createStaff(t *testing.T, db *gorm.DB, first, last, role string, status models.StaffStatus) models.Staff {
	t.Helper()
	staff := models.Staff{FirstName: first, LastName: last, Role: role, Status: status}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatalf("failed to create staff: %v", err)
	}
	return staff
}
