package models

import (
	"time"

	"gorm.io/gorm"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "Pending"
	TransactionShipped   TransactionStatus = "Shipped"
	TransactionDelivered TransactionStatus = "Delivered"
	TransactionCancelled TransactionStatus = "Cancelled"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionPending, TransactionShipped, TransactionDelivered, TransactionCancelled:
		return true
	}
	return false
}

// InventoryTransaction records a purchase order. Immutable once created
// except for Status.
type InventoryTransaction struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderNumber string `gorm:"column:order_number;uniqueIndex;size:64" json:"orderNumber"`
	Supplier    string `gorm:"size:200" json:"supplier"`

	Items       int     `json:"items"`
	TotalAmount float64 `gorm:"column:total_amount" json:"totalAmount"`

	OrderDate        time.Time         `gorm:"column:order_date" json:"orderDate"`
	ExpectedDelivery time.Time         `gorm:"column:expected_delivery" json:"expectedDelivery"`
	Status           TransactionStatus `gorm:"size:20;index" json:"status"`

	ItemID  *uint `gorm:"column:item_id;index" json:"itemId,omitempty"`
	StaffID *uint `gorm:"column:staff_id;index" json:"staffId,omitempty"`

	Item  *InventoryItem `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	Staff *Staff         `gorm:"foreignKey:StaffID" json:"staff,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
