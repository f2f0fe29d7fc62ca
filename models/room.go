package models

import (
	"time"

	"gorm.io/gorm"
)

type Room struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	RoomNumber string         `gorm:"column:room_number;uniqueIndex;size:50" json:"roomNumber"`
	Floor      string         `gorm:"size:10" json:"floor"`
	Type       string         `gorm:"size:100" json:"type"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
