package controllers

import (
	"net/http"

	"hotel-backoffice/models"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
)

type contactPayload struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type ContactController struct {
	Svc *services.ContactService
}

func NewContactController(svc *services.ContactService) *ContactController {
	return &ContactController{Svc: svc}
}

// POST /api/contact
func (ctrl *ContactController) CreateMessage(c *gin.Context) {
	var payload contactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	msg, err := ctrl.Svc.Create(models.ContactMessage{
		Name:    payload.Name,
		Email:   payload.Email,
		Subject: payload.Subject,
		Message: payload.Message,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// GET /api/contact
func (ctrl *ContactController) GetMessages(c *gin.Context) {
	msgs, err := ctrl.Svc.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}
