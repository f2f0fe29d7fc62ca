package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"hotel-backoffice/models"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
	mysql "github.com/go-sql-driver/mysql"
)

const dateLayout = "2006-01-02"

// ---------------------------
// Payload / DTOs
// ---------------------------

type AddItemPayload struct {
	Name         string  `json:"name" binding:"required"`
	SKU          string  `json:"sku" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Quantity     *int    `json:"quantity" binding:"required,gte=0"`
	MaxStock     *int    `json:"maxStock" binding:"required,gte=0"`
	Unit         string  `json:"unit" binding:"required"`
	ReorderLevel *int    `json:"reorderLevel" binding:"required,gte=0"`
	Cost         float64 `json:"cost" binding:"gte=0"`
	Supplier     string  `json:"supplier" binding:"required"`
	Location     string  `json:"location" binding:"required"`
}

type RecordTransactionPayload struct {
	OrderNumber      string  `json:"orderNumber"`
	Supplier         string  `json:"supplier" binding:"required"`
	Items            *int    `json:"items" binding:"required,gte=0"`
	TotalAmount      float64 `json:"totalAmount" binding:"gte=0"`
	OrderDate        string  `json:"orderDate" binding:"required"`
	ExpectedDelivery string  `json:"expectedDelivery" binding:"required"`
	Status           string  `json:"status"`
	ItemID           *uint   `json:"itemId"`
	StaffID          *uint   `json:"staffId"`
}

// ---------------------------
// Controller
// ---------------------------

type InventoryController struct {
	Svc *services.InventoryService
}

func NewInventoryController(svc *services.InventoryService) *InventoryController {
	return &InventoryController{Svc: svc}
}

func isDuplicateKey(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	return strings.Contains(err.Error(), "Duplicate entry") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// GET /api/inventory
func (ctrl *InventoryController) GetItems(c *gin.Context) {
	items, err := ctrl.Svc.ListItems()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /api/inventory
func (ctrl *InventoryController) CreateItem(c *gin.Context) {
	var payload AddItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	item, err := ctrl.Svc.AddItem(models.InventoryItem{
		Name:         payload.Name,
		SKU:          payload.SKU,
		Category:     payload.Category,
		Quantity:     *payload.Quantity,
		MaxStock:     *payload.MaxStock,
		Unit:         payload.Unit,
		ReorderLevel: *payload.ReorderLevel,
		Cost:         payload.Cost,
		Supplier:     payload.Supplier,
		Location:     payload.Location,
	})
	if err != nil {
		if isDuplicateKey(err) {
			utils.JSONError(c, http.StatusConflict, "an item with this SKU already exists")
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// PATCH /api/inventory/:id/restock
func (ctrl *InventoryController) RestockItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondFieldErrors(c, []utils.FieldError{{Message: "must be a numeric id", Path: "id"}})
		return
	}

	item, err := ctrl.Svc.Restock(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GET /api/inventory/transactions
func (ctrl *InventoryController) GetTransactions(c *gin.Context) {
	txs, err := ctrl.Svc.ListTransactions()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, txs)
}

// POST /api/inventory/transactions
func (ctrl *InventoryController) CreateTransaction(c *gin.Context) {
	var payload RecordTransactionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	var fieldErrs []utils.FieldError
	orderDate, err := time.Parse(dateLayout, payload.OrderDate)
	if err != nil {
		fieldErrs = append(fieldErrs, utils.FieldError{Message: "must be a date in YYYY-MM-DD format", Path: "orderDate"})
	}
	delivery, err := time.Parse(dateLayout, payload.ExpectedDelivery)
	if err != nil {
		fieldErrs = append(fieldErrs, utils.FieldError{Message: "must be a date in YYYY-MM-DD format", Path: "expectedDelivery"})
	}
	if len(fieldErrs) == 0 && delivery.Before(orderDate) {
		fieldErrs = append(fieldErrs, utils.FieldError{Message: "cannot be before the order date", Path: "expectedDelivery"})
	}
	status := models.TransactionStatus(payload.Status)
	if payload.Status != "" && !status.Valid() {
		fieldErrs = append(fieldErrs, utils.FieldError{Message: "unknown transaction status", Path: "status"})
	}
	if len(fieldErrs) > 0 {
		utils.RespondFieldErrors(c, fieldErrs)
		return
	}

	trx, err := ctrl.Svc.RecordTransaction(models.InventoryTransaction{
		OrderNumber:      payload.OrderNumber,
		Supplier:         payload.Supplier,
		Items:            *payload.Items,
		TotalAmount:      payload.TotalAmount,
		OrderDate:        orderDate,
		ExpectedDelivery: delivery,
		Status:           status,
		ItemID:           payload.ItemID,
		StaffID:          payload.StaffID,
	})
	if err != nil {
		if isDuplicateKey(err) {
			utils.JSONError(c, http.StatusConflict, "a transaction with this order number already exists")
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trx)
}
