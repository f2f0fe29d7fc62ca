package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-backoffice/models"

	"gorm.io/gorm"
)

var (
	ErrRoomNotFound      = errors.New("room_not_found")
	ErrStaffNotFound     = errors.New("staff_not_found")
	ErrStaffNotEligible  = errors.New("staff_not_eligible")
	ErrTaskNotFound      = errors.New("task_not_found")
	ErrInvalidTaskStatus = errors.New("invalid_task_status")
)

// HousekeepingService owns the task lifecycle and the staff availability
// changes that go with it.
type HousekeepingService struct {
	DB *gorm.DB
}

func NewHousekeepingService(db *gorm.DB) *HousekeepingService {
	return &HousekeepingService{DB: db}
}

// AssignTask creates a pending task for an eligible staff member and flips
// them to On Duty. Task creation and the status flip commit together; the
// staff update is a compare-and-set, so a concurrent assignment that wins
// the race rolls this one back instead of double-booking the staff member.
func (s *HousekeepingService) AssignTask(roomID uint, taskType, priority string, staffID uint, notes string) (models.HousekeepingTask, error) {
	var task models.HousekeepingTask

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to load room: %w", err)
		}

		var staff models.Staff
		if err := tx.First(&staff, staffID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStaffNotFound
			}
			return fmt.Errorf("failed to load staff: %w", err)
		}
		if staff.Role != models.RoleHousekeeping || staff.Status != models.StaffActive {
			return ErrStaffNotEligible
		}

		task = models.HousekeepingTask{
			RoomID:      room.ID,
			TaskType:    taskType,
			Priority:    priority,
			StaffID:     staff.ID,
			AssignedTo:  staff.FullName(),
			Status:      models.TaskPending,
			LastCleaned: time.Now(),
			Notes:       notes,
		}
		if err := tx.Create(&task).Error; err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		res := tx.Model(&models.Staff{}).
			Where("id = ? AND role = ? AND status = ?", staff.ID, models.RoleHousekeeping, models.StaffActive).
			Update("status", models.StaffOnDuty)
		if res.Error != nil {
			return fmt.Errorf("failed to update staff status: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			// staff record changed under us
			return ErrStaffNotEligible
		}

		task.Room = room
		return nil
	})
	if err != nil {
		return models.HousekeepingTask{}, err
	}
	return task, nil
}

// UpdateTaskStatus writes the new status and, when it ends the assignment,
// releases the staff member recorded on the task. Transitions are not
// restricted: any valid status may follow any other, and re-completing a
// completed task re-runs the release.
func (s *HousekeepingService) UpdateTaskStatus(taskID uint, status models.TaskStatus) (models.HousekeepingTask, error) {
	if !status.Valid() {
		return models.HousekeepingTask{}, ErrInvalidTaskStatus
	}

	var task models.HousekeepingTask
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Room").First(&task, taskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return fmt.Errorf("failed to load task: %w", err)
		}

		if err := tx.Model(&task).Update("status", status).Error; err != nil {
			return fmt.Errorf("failed to update task status: %w", err)
		}
		task.Status = status

		if status.Released() && task.StaffID != 0 {
			if err := tx.Model(&models.Staff{}).
				Where("id = ?", task.StaffID).
				Update("status", models.StaffAvailable).Error; err != nil {
				return fmt.Errorf("failed to release staff: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return models.HousekeepingTask{}, err
	}
	return task, nil
}

// DeleteTask removes the task and returns the deleted snapshot. The
// assigned staff member keeps their current status; deletion is not a
// release.
func (s *HousekeepingService) DeleteTask(taskID uint) (models.HousekeepingTask, error) {
	var task models.HousekeepingTask
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Room").First(&task, taskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return fmt.Errorf("failed to load task: %w", err)
		}
		if err := tx.Delete(&task).Error; err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.HousekeepingTask{}, err
	}
	return task, nil
}

func (s *HousekeepingService) ListTasksByStatus(statuses ...models.TaskStatus) ([]models.HousekeepingTask, error) {
	var tasks []models.HousekeepingTask
	err := s.DB.Preload("Room").
		Where("status IN ?", statuses).
		Order("id desc").
		Find(&tasks).Error
	return tasks, err
}

// DashboardStats mirrors the dashboard response body exactly.
type DashboardStats struct {
	PendingTasks     int64 `json:"pendingTasks"`
	CompletedTasks   int64 `json:"completedTasks"`
	MaintananceTasks int64 `json:"maintananceTasks"`
	TotalRooms       int64 `json:"totalRooms"`
}

// GetDashboardStats counts inside one transaction so concurrent writes
// cannot skew the four counts against each other.
func (s *HousekeepingService) GetDashboardStats() (DashboardStats, error) {
	var stats DashboardStats
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.HousekeepingTask{}).
			Where("status = ?", models.TaskPending).
			Count(&stats.PendingTasks).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.HousekeepingTask{}).
			Where("status IN ?", []models.TaskStatus{models.TaskCompleted, models.TaskResolved}).
			Count(&stats.CompletedTasks).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.HousekeepingTask{}).
			Where("status = ?", models.TaskMaintenance).
			Count(&stats.MaintananceTasks).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Room{}).Count(&stats.TotalRooms).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return DashboardStats{}, fmt.Errorf("failed to compute dashboard stats: %w", err)
	}
	return stats, nil
}
