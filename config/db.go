package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-backoffice/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_backoffice")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase populates rooms, housekeeping staff, menu categories and a
// default back-office user when their tables are empty.
func SeedDatabase() {
	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{RoomNumber: "101", Floor: "1", Type: "Standard"},
			{RoomNumber: "102", Floor: "1", Type: "Standard"},
			{RoomNumber: "103", Floor: "1", Type: "Superior"},
			{RoomNumber: "201", Floor: "2", Type: "Superior"},
			{RoomNumber: "202", Floor: "2", Type: "Deluxe"},
			{RoomNumber: "203", Floor: "2", Type: "Deluxe"},
			{RoomNumber: "301", Floor: "3", Type: "Suite"},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}

	var staffCount int64
	DB.Model(&models.Staff{}).Count(&staffCount)
	if staffCount == 0 {
		staff := []models.Staff{
			{FirstName: "Maria", LastName: "Santos", Role: models.RoleHousekeeping, Status: models.StaffActive},
			{FirstName: "James", LastName: "Okafor", Role: models.RoleHousekeeping, Status: models.StaffActive},
			{FirstName: "Priya", LastName: "Nair", Role: models.RoleHousekeeping, Status: models.StaffActive},
			{FirstName: "Daniel", LastName: "Craig", Role: "Maintenance", Status: models.StaffActive},
		}
		if err := DB.Create(&staff).Error; err != nil {
			log.Printf("warning: failed to seed staff: %v", err)
		} else {
			log.Println("Staff seeded")
		}
	}

	var catCount int64
	DB.Model(&models.MenuCategory{}).Count(&catCount)
	if catCount == 0 {
		cats := []models.MenuCategory{
			{Name: "Breakfast", Description: "Served 06:00-10:30"},
			{Name: "Mains", Description: "All-day dining"},
			{Name: "Beverages", Description: "Hot and cold drinks"},
		}
		if err := DB.Create(&cats).Error; err != nil {
			log.Printf("warning: failed to seed menu categories: %v", err)
		} else {
			log.Println("Menu categories seeded")
		}
	}

	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "changeme123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default user password: %v", err)
		} else {
			user := models.User{
				FullName: "Back Office Admin",
				Email:    "admin@hotel.local",
				Password: string(hash),
			}
			if err := DB.Create(&user).Error; err != nil {
				log.Printf("warning: failed to create default user: %v", err)
			} else {
				log.Println("Default user seeded")
			}
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Staff{},
		&models.HousekeepingTask{},
		&models.InventoryItem{},
		&models.InventoryTransaction{},
		&models.ContactMessage{},
		&models.MenuCategory{},
		&models.MenuItem{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
