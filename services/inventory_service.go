package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-backoffice/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound = errors.New("inventory_item_not_found")
)

type InventoryService struct {
	DB *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{DB: db}
}

func (s *InventoryService) ListItems() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := s.DB.Order("id desc").Find(&items).Error
	return items, err
}

// AddItem creates a stock item stamped as restocked now. Field validation
// happens at the boundary; this only normalizes and writes.
func (s *InventoryService) AddItem(item models.InventoryItem) (models.InventoryItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.SKU = strings.TrimSpace(item.SKU)
	item.LastRestocked = time.Now()
	if err := s.DB.Create(&item).Error; err != nil {
		return models.InventoryItem{}, err
	}
	return item, nil
}

// Restock is a full refill: quantity lands on maxStock no matter where it
// started. Incremental receipts go through RecordTransaction instead; the
// two paths are not reconciled against each other.
func (s *InventoryService) Restock(itemID uint) (models.InventoryItem, error) {
	var item models.InventoryItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return fmt.Errorf("failed to load item: %w", err)
		}

		now := time.Now()
		if err := tx.Model(&item).Updates(map[string]interface{}{
			"quantity":       item.MaxStock,
			"last_restocked": now,
		}).Error; err != nil {
			return fmt.Errorf("failed to restock item: %w", err)
		}
		item.Quantity = item.MaxStock
		item.LastRestocked = now
		return nil
	})
	if err != nil {
		return models.InventoryItem{}, err
	}
	return item, nil
}

func (s *InventoryService) ListTransactions() ([]models.InventoryTransaction, error) {
	var txs []models.InventoryTransaction
	err := s.DB.Preload("Item").Preload("Staff").Order("id desc").Find(&txs).Error
	return txs, err
}

// RecordTransaction persists a purchase order and, when it targets an
// item, credits that item's quantity by the ordered count in the same
// transaction. A missing target item fails the whole write.
func (s *InventoryService) RecordTransaction(trx models.InventoryTransaction) (models.InventoryTransaction, error) {
	if strings.TrimSpace(trx.OrderNumber) == "" {
		trx.OrderNumber = "PO-" + strings.ToUpper(uuid.NewString()[:8])
	}
	if trx.Status == "" {
		trx.Status = models.TransactionPending
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if trx.ItemID != nil {
			var item models.InventoryItem
			if err := tx.First(&item, *trx.ItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrItemNotFound
				}
				return fmt.Errorf("failed to load item: %w", err)
			}
		}

		if err := tx.Create(&trx).Error; err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		if trx.ItemID != nil {
			if err := tx.Model(&models.InventoryItem{}).
				Where("id = ?", *trx.ItemID).
				Updates(map[string]interface{}{
					"quantity":       gorm.Expr("quantity + ?", trx.Items),
					"last_restocked": time.Now(),
				}).Error; err != nil {
				return fmt.Errorf("failed to credit item quantity: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return models.InventoryTransaction{}, err
	}

	if trx.ItemID != nil {
		var item models.InventoryItem
		if err := s.DB.First(&item, *trx.ItemID).Error; err == nil {
			trx.Item = &item
		}
	}
	return trx, nil
}
