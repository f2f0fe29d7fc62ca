package models

import (
	"time"

	"gorm.io/gorm"
)

type InventoryItem struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:200" json:"name"`
	SKU      string `gorm:"column:sku;uniqueIndex;size:100" json:"sku"`
	Category string `gorm:"size:100;index" json:"category"`

	Quantity     int     `json:"quantity"`
	MaxStock     int     `gorm:"column:max_stock" json:"maxStock"`
	Unit         string  `gorm:"size:50" json:"unit"`
	ReorderLevel int     `gorm:"column:reorder_level" json:"reorderLevel"`
	Cost         float64 `json:"cost"`

	Supplier      string    `gorm:"size:200" json:"supplier"`
	Location      string    `gorm:"size:200" json:"location"`
	LastRestocked time.Time `gorm:"column:last_restocked" json:"lastRestocked"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
