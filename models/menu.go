package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MenuCategory struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;size:100" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type MenuItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	CategoryID  *uint   `gorm:"column:category_id;index" json:"categoryId,omitempty"`
	Name        string  `gorm:"size:200" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `json:"price"`
	Available   bool    `gorm:"default:true" json:"available"`

	// Tags holds free-form labels (e.g. ["vegan","spicy"]) as a JSON array.
	Tags datatypes.JSON `json:"tags,omitempty"`

	Category *MenuCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
