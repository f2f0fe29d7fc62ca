package controllers

import (
	"errors"
	"log"
	"net/http"

	"hotel-backoffice/models"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type AssignTaskPayload struct {
	RoomID   uint   `json:"roomId" binding:"required"`
	TaskType string `json:"taskType" binding:"required"`
	Priority string `json:"priority" binding:"required"`
	StaffID  uint   `json:"staffId" binding:"required"`
	Notes    string `json:"notes"`
}

type UpdateTaskStatusPayload struct {
	TaskID uint   `json:"taskId" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type DeleteTaskPayload struct {
	TaskID uint `json:"taskId" binding:"required"`
}

// ---------------------------
// Controller
// ---------------------------

type HousekeepingController struct {
	Svc      *services.HousekeepingService
	StaffSvc *services.StaffService
	RoomSvc  *services.RoomService
}

func NewHousekeepingController(svc *services.HousekeepingService, staffSvc *services.StaffService, roomSvc *services.RoomService) *HousekeepingController {
	return &HousekeepingController{Svc: svc, StaffSvc: staffSvc, RoomSvc: roomSvc}
}

// respondServiceError maps service sentinels onto HTTP codes. Anything
// unclassified is a storage failure: logged, and genericized in release
// mode.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "room not found")
	case errors.Is(err, services.ErrStaffNotFound):
		utils.JSONError(c, http.StatusNotFound, "staff member not found")
	case errors.Is(err, services.ErrStaffNotEligible):
		utils.JSONError(c, http.StatusConflict, "staff member is not eligible for assignment")
	case errors.Is(err, services.ErrTaskNotFound):
		utils.JSONError(c, http.StatusNotFound, "task not found")
	case errors.Is(err, services.ErrItemNotFound):
		utils.JSONError(c, http.StatusNotFound, "inventory item not found")
	case errors.Is(err, services.ErrInvalidTaskStatus):
		utils.RespondFieldErrors(c, []utils.FieldError{{Message: "unknown task status", Path: "status"}})
	default:
		log.Printf("❌ internal error: %v", err)
		if gin.Mode() == gin.ReleaseMode {
			utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		} else {
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
		}
	}
}

// GET /api/pending-rooms
func (ctrl *HousekeepingController) GetPendingRooms(c *gin.Context) {
	tasks, err := ctrl.Svc.ListTasksByStatus(models.TaskPending)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GET /api/completed-rooms
func (ctrl *HousekeepingController) GetCompletedRooms(c *gin.Context) {
	tasks, err := ctrl.Svc.ListTasksByStatus(models.TaskCompleted, models.TaskResolved)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GET /api/maintanance-rooms
func (ctrl *HousekeepingController) GetMaintenanceRooms(c *gin.Context) {
	tasks, err := ctrl.Svc.ListTasksByStatus(models.TaskMaintenance)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GET /api/room-numbers
func (ctrl *HousekeepingController) GetRoomNumbers(c *gin.Context) {
	numbers, err := ctrl.RoomSvc.RoomNumbers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"roomNumbers": numbers})
}

// GET /api/staff
func (ctrl *HousekeepingController) GetStaff(c *gin.Context) {
	staff, err := ctrl.StaffSvc.ListHousekeeping()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

// POST /api/staff
func (ctrl *HousekeepingController) CreateStaff(c *gin.Context) {
	var staff models.Staff
	if err := c.ShouldBindJSON(&staff); err != nil {
		utils.RespondValidationError(c, err)
		return
	}
	if staff.Status != "" && !staff.Status.Valid() {
		utils.RespondFieldErrors(c, []utils.FieldError{{Message: "unknown staff status", Path: "status"}})
		return
	}
	created, err := ctrl.StaffSvc.Create(staff)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// POST /api/task
func (ctrl *HousekeepingController) CreateTask(c *gin.Context) {
	var payload AssignTaskPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	task, err := ctrl.Svc.AssignTask(payload.RoomID, payload.TaskType, payload.Priority, payload.StaffID, payload.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// PATCH /api/task/status
func (ctrl *HousekeepingController) UpdateTaskStatus(c *gin.Context) {
	var payload UpdateTaskStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	task, err := ctrl.Svc.UpdateTaskStatus(payload.TaskID, models.TaskStatus(payload.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DELETE /api/task
func (ctrl *HousekeepingController) DeleteTask(c *gin.Context) {
	var payload DeleteTaskPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	task, err := ctrl.Svc.DeleteTask(payload.TaskID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Task deleted successfully",
		"deletedTask": task,
	})
}

// GET /api/dashboard-stats
func (ctrl *HousekeepingController) GetDashboardStats(c *gin.Context) {
	stats, err := ctrl.Svc.GetDashboardStats()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
