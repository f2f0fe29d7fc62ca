package services

import (
	"testing"
	"time"

	"hotel-backoffice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addTestItem(t *testing.T, svc *InventoryService, quantity, maxStock int) models.InventoryItem {
	t.Helper()
	item, err := svc.AddItem(models.InventoryItem{
		Name:         "Bath Towels",
		SKU:          "TWL-001",
		Category:     "Linen",
		Quantity:     quantity,
		MaxStock:     maxStock,
		Unit:         "pcs",
		ReorderLevel: 10,
		Cost:         4.50,
		Supplier:     "Linen Co",
		Location:     "Store B2",
	})
	require.NoError(t, err)
	return item
}

func TestAddItem(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInventoryService(db)

	item := addTestItem(t, svc, 5, 20)
	assert.NotZero(t, item.ID)
	assert.WithinDuration(t, time.Now(), item.LastRestocked, 5*time.Second)

	items, err := svc.ListItems()
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestRestockFillsToMax(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInventoryService(db)
	item := addTestItem(t, svc, 5, 20)

	restocked, err := svc.Restock(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, restocked.Quantity)

	// idempotent: a second restock lands on the same quantity
	restocked, err = svc.Restock(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, restocked.Quantity)

	var stored models.InventoryItem
	require.NoError(t, db.First(&stored, item.ID).Error)
	assert.Equal(t, 20, stored.Quantity)
}

func TestRestockMissingItem(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInventoryService(db)

	_, err := svc.Restock(999)
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestRecordTransactionCreditsItem(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInventoryService(db)
	item := addTestItem(t, svc, 5, 20)

	trx, err := svc.RecordTransaction(models.InventoryTransaction{
		Supplier:         "Linen Co",
		Items:            10,
		TotalAmount:      45.0,
		OrderDate:        time.Now(),
		ExpectedDelivery: time.Now().AddDate(0, 0, 7),
		ItemID:           &item.ID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, trx.OrderNumber)
	assert.Equal(t, models.TransactionPending, trx.Status)
	require.NotNil(t, trx.Item)
	assert.Equal(t, 15, trx.Item.Quantity)

	var stored models.InventoryItem
	require.NoError(t, db.First(&stored, item.ID).Error)
	assert.Equal(t, 15, stored.Quantity)
}

func TestRecordTransactionWithoutItem(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInventoryService(db)
	item := addTestItem(t, svc, 5, 20)

	_, err := svc.RecordTransaction(models.InventoryTransaction{
		Supplier:         "Linen Co",
		Items:            10,
		TotalAmount:      45.0,
		OrderDate:        time.Now(),
		ExpectedDelivery: time.Now().AddDate(0, 0, 7),
	})
	require.NoError(t, err)

	var stored models.InventoryItem
	require.NoError(t, db.First(&stored, item.ID).Error)
	assert.Equal(t, 5, stored.Quantity, "transactions without an item leave stock untouched")
}

func TestRecordTransactionMissingItem(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInventoryService(db)

	missing := uint(999)
	_, err := svc.RecordTransaction(models.InventoryTransaction{
		Supplier:         "Linen Co",
		Items:            10,
		OrderDate:        time.Now(),
		ExpectedDelivery: time.Now().AddDate(0, 0, 7),
		ItemID:           &missing,
	})
	require.ErrorIs(t, err, ErrItemNotFound)

	// nothing persisted when the target item is absent
	var count int64
	db.Model(&models.InventoryTransaction{}).Count(&count)
	assert.Zero(t, count)
}

// Restock sets to max, a later transaction credits on top of it; the two
// paths are independent and the credit may exceed maxStock.
func TestRestockThenTransaction(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInventoryService(db)
	item := addTestItem(t, svc, 5, 20)

	restocked, err := svc.Restock(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, restocked.Quantity)

	_, err = svc.RecordTransaction(models.InventoryTransaction{
		Supplier:         "Linen Co",
		Items:            10,
		OrderDate:        time.Now(),
		ExpectedDelivery: time.Now().AddDate(0, 0, 7),
		ItemID:           &item.ID,
	})
	require.NoError(t, err)

	var stored models.InventoryItem
	require.NoError(t, db.First(&stored, item.ID).Error)
	assert.Equal(t, 30, stored.Quantity)
}

func TestListTransactionsPreloadsLinks(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInventoryService(db)
	item := addTestItem(t, svc, 5, 20)
	staff := createStaff(t, db, "Maria", "Santos", models.RoleHousekeeping, models.StaffActive)

	_, err := svc.RecordTransaction(models.InventoryTransaction{
		Supplier:         "Linen Co",
		Items:            3,
		OrderDate:        time.Now(),
		ExpectedDelivery: time.Now().AddDate(0, 0, 2),
		ItemID:           &item.ID,
		StaffID:          &staff.ID,
	})
	require.NoError(t, err)

	txs, err := svc.ListTransactions()
	require.NoError(t, err)
	require.Len(t, txs, 1)
	require.NotNil(t, txs[0].Item)
	assert.Equal(t, item.SKU, txs[0].Item.SKU)
	require.NotNil(t, txs[0].Staff)
	assert.Equal(t, "Maria", txs[0].Staff.FirstName)
}
