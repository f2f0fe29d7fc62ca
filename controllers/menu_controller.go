package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"hotel-backoffice/models"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondFieldErrors(c, []utils.FieldError{{Message: "must be a numeric id", Path: "id"}})
		return 0, false
	}
	return uint(id), true
}

// GET /api/menu/categories
func (ctrl *MenuController) GetCategories(c *gin.Context) {
	cats, err := ctrl.Svc.ListCategories()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

// POST /api/menu/categories
func (ctrl *MenuController) CreateCategory(c *gin.Context) {
	var cat models.MenuCategory
	if err := c.ShouldBindJSON(&cat); err != nil {
		utils.RespondValidationError(c, err)
		return
	}
	if cat.Name == "" {
		utils.RespondFieldErrors(c, []utils.FieldError{{Message: "field is required", Path: "name"}})
		return
	}
	created, err := ctrl.Svc.CreateCategory(cat)
	if err != nil {
		if isDuplicateKey(err) {
			utils.JSONError(c, http.StatusConflict, "a category with this name already exists")
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DELETE /api/menu/categories/:id
func (ctrl *MenuController) DeleteCategory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ctrl.Svc.DeleteCategory(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "category not found")
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// GET /api/menu/items
func (ctrl *MenuController) GetItems(c *gin.Context) {
	items, err := ctrl.Svc.ListItems()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /api/menu/items
func (ctrl *MenuController) CreateItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.RespondValidationError(c, err)
		return
	}
	if item.Name == "" {
		utils.RespondFieldErrors(c, []utils.FieldError{{Message: "field is required", Path: "name"}})
		return
	}
	created, err := ctrl.Svc.CreateItem(item)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "category not found")
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PATCH /api/menu/items/:id
func (ctrl *MenuController) UpdateItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.RespondValidationError(c, err)
		return
	}
	if err := ctrl.Svc.UpdateItem(id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "menu item not found")
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated successfully"})
}

// DELETE /api/menu/items/:id
func (ctrl *MenuController) DeleteItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ctrl.Svc.DeleteItem(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "menu item not found")
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}
