package services

import (
	"testing"

	"hotel-backoffice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignTask(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		status  models.StaffStatus
		wantErr error
	}{
		{"active housekeeping staff", models.RoleHousekeeping, models.StaffActive, nil},
		{"wrong role", "Maintenance", models.StaffActive, ErrStaffNotEligible},
		{"inactive staff", models.RoleHousekeeping, models.StaffInactive, ErrStaffNotEligible},
		{"on duty staff", models.RoleHousekeeping, models.StaffOnDuty, ErrStaffNotEligible},
		{"available but not active", models.RoleHousekeeping, models.StaffAvailable, ErrStaffNotEligible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			svc := NewHousekeepingService(db)
			room := createRoom(t, db, "101")
			staff := createStaff(t, db, "Maria", "Santos", tt.role, tt.status)

			task, err := svc.AssignTask(room.ID, "cleaning", "high", staff.ID, "quick turnaround")

			var count int64
			db.Model(&models.HousekeepingTask{}).Count(&count)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, count, "no task must exist after a failed assignment")
				return
			}

			require.NoError(t, err)
			assert.EqualValues(t, 1, count)
			assert.Equal(t, models.TaskPending, task.Status)
			assert.Equal(t, staff.ID, task.StaffID)
			assert.Equal(t, "Maria Santos", task.AssignedTo)
			assert.Equal(t, room.ID, task.RoomID)
			assert.False(t, task.LastCleaned.IsZero())

			var updated models.Staff
			require.NoError(t, db.First(&updated, staff.ID).Error)
			assert.Equal(t, models.StaffOnDuty, updated.Status)
		})
	}
}

func TestAssignTaskMissingStaff(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHousekeepingService(db)
	room := createRoom(t, db, "101")

	_, err := svc.AssignTask(room.ID, "cleaning", "high", 999, "")
	require.ErrorIs(t, err, ErrStaffNotFound)

	var count int64
	db.Model(&models.HousekeepingTask{}).Count(&count)
	assert.Zero(t, count)
}

func TestAssignTaskMissingRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHousekeepingService(db)
	staff := createStaff(t, db, "Maria", "Santos", models.RoleHousekeeping, models.StaffActive)

	_, err := svc.AssignTask(999, "cleaning", "high", staff.ID, "")
	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestAssignTaskRejectsSecondAssignment(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHousekeepingService(db)
	room := createRoom(t, db, "101")
	staff := createStaff(t, db, "Maria", "Santos", models.RoleHousekeeping, models.StaffActive)

	_, err := svc.AssignTask(room.ID, "cleaning", "high", staff.ID, "")
	require.NoError(t, err)

	// the first assignment put the staff member On Duty; a second one
	// must fail and leave exactly one task behind
	_, err = svc.AssignTask(room.ID, "cleaning", "low", staff.ID, "")
	require.ErrorIs(t, err, ErrStaffNotEligible)

	var count int64
	db.Model(&models.HousekeepingTask{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpdateTaskStatusReleasesStaff(t *testing.T) {
	for _, status := range []models.TaskStatus{models.TaskCompleted, models.TaskResolved} {
		t.Run(string(status), func(t *testing.T) {
			db := setupTestDB(t)
			svc := NewHousekeepingService(db)
			room := createRoom(t, db, "101")
			staff := createStaff(t, db, "Maria", "Santos", models.RoleHousekeeping, models.StaffActive)

			task, err := svc.AssignTask(room.ID, "cleaning", "high", staff.ID, "")
			require.NoError(t, err)

			updated, err := svc.UpdateTaskStatus(task.ID, status)
			require.NoError(t, err)
			assert.Equal(t, status, updated.Status)

			var released models.Staff
			require.NoError(t, db.First(&released, staff.ID).Error)
			assert.Equal(t, models.StaffAvailable, released.Status)
		})
	}
}

func TestUpdateTaskStatusReleasesOnlyAssignedStaff(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHousekeepingService(db)
	room := createRoom(t, db, "101")
	assigned := createStaff(t, db, "Maria", "Santos", models.RoleHousekeeping, models.StaffActive)
	// same first name, must not be touched by the release
	namesake := createStaff(t, db, "Maria", "Lopez", models.RoleHousekeeping, models.StaffOnDuty)

	task, err := svc.AssignTask(room.ID, "cleaning", "high", assigned.ID, "")
	require.NoError(t, err)

	_, err = svc.UpdateTaskStatus(task.ID, models.TaskCompleted)
	require.NoError(t, err)

	var other models.Staff
	require.NoError(t, db.First(&other, namesake.ID).Error)
	assert.Equal(t, models.StaffOnDuty, other.Status)
}

func TestUpdateTaskStatusDoubleComplete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHousekeepingService(db)
	room := createRoom(t, db, "101")
	staff := createStaff(t, db, "Maria", "Santos", models.RoleHousekeeping, models.StaffActive)

	task, err := svc.AssignTask(room.ID, "cleaning", "high", staff.ID, "")
	require.NoError(t, err)

	_, err = svc.UpdateTaskStatus(task.ID, models.TaskCompleted)
	require.NoError(t, err)

	// flip the staff member back; re-completing re-runs the release
	require.NoError(t, db.Model(&models.Staff{}).Where("id = ?", staff.ID).
		Update("status", models.StaffOnDuty).Error)

	updated, err := svc.UpdateTaskStatus(task.ID, models.TaskCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.TaskCompleted, updated.Status)

	var released models.Staff
	require.NoError(t, db.First(&released, staff.ID).Error)
	assert.Equal(t, models.StaffAvailable, released.Status)
}

func TestUpdateTaskStatusValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHousekeepingService(db)

	_, err := svc.UpdateTaskStatus(1, "done")
	require.ErrorIs(t, err, ErrInvalidTaskStatus)

	_, err = svc.UpdateTaskStatus(999, models.TaskCompleted)
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteTaskKeepsStaffStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHousekeepingService(db)
	room := createRoom(t, db, "101")
	staff := createStaff(t, db, "Maria", "Santos", models.RoleHousekeeping, models.StaffActive)

	task, err := svc.AssignTask(room.ID, "cleaning", "high", staff.ID, "")
	require.NoError(t, err)

	deleted, err := svc.DeleteTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, deleted.ID)

	var count int64
	db.Model(&models.HousekeepingTask{}).Count(&count)
	assert.Zero(t, count)

	// deletion is not a release: the staff member stays On Duty
	var after models.Staff
	require.NoError(t, db.First(&after, staff.ID).Error)
	assert.Equal(t, models.StaffOnDuty, after.Status)

	_, err = svc.DeleteTask(task.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestListTasksByStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHousekeepingService(db)
	room := createRoom(t, db, "101")

	for i, status := range []models.TaskStatus{
		models.TaskPending, models.TaskCompleted, models.TaskResolved, models.TaskMaintenance,
	} {
		staff := createStaff(t, db, "Staff", string(rune('A'+i)), models.RoleHousekeeping, models.StaffActive)
		task, err := svc.AssignTask(room.ID, "cleaning", "high", staff.ID, "")
		require.NoError(t, err)
		if status != models.TaskPending {
			_, err = svc.UpdateTaskStatus(task.ID, status)
			require.NoError(t, err)
		}
	}

	pending, err := svc.ListTasksByStatus(models.TaskPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	done, err := svc.ListTasksByStatus(models.TaskCompleted, models.TaskResolved)
	require.NoError(t, err)
	assert.Len(t, done, 2)

	maintenance, err := svc.ListTasksByStatus(models.TaskMaintenance)
	require.NoError(t, err)
	assert.Len(t, maintenance, 1)
}

func TestDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHousekeepingService(db)
	createRoom(t, db, "101")
	createRoom(t, db, "102")
	room := createRoom(t, db, "103")

	statuses := []models.TaskStatus{
		models.TaskPending, models.TaskPending,
		models.TaskCompleted, models.TaskResolved,
		models.TaskMaintenance,
	}
	for i, status := range statuses {
		staff := createStaff(t, db, "Staff", string(rune('A'+i)), models.RoleHousekeeping, models.StaffActive)
		task, err := svc.AssignTask(room.ID, "cleaning", "high", staff.ID, "")
		require.NoError(t, err)
		if status != models.TaskPending {
			_, err = svc.UpdateTaskStatus(task.ID, status)
			require.NoError(t, err)
		}
	}

	stats, err := svc.GetDashboardStats()
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.PendingTasks)
	assert.EqualValues(t, 2, stats.CompletedTasks)
	assert.EqualValues(t, 1, stats.MaintananceTasks)
	assert.EqualValues(t, 3, stats.TotalRooms)

	var total int64
	db.Model(&models.HousekeepingTask{}).Count(&total)
	assert.LessOrEqual(t, stats.PendingTasks+stats.CompletedTasks+stats.MaintananceTasks, total)
}

// Full lifecycle: assign, resolve, delete.
func TestTaskLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHousekeepingService(db)
	room := createRoom(t, db, "101")
	staff := createStaff(t, db, "Maria", "Santos", models.RoleHousekeeping, models.StaffActive)

	task, err := svc.AssignTask(room.ID, "cleaning", "high", staff.ID, "")
	require.NoError(t, err)
	assert.Equal(t, models.TaskPending, task.Status)

	var s models.Staff
	require.NoError(t, db.First(&s, staff.ID).Error)
	assert.Equal(t, models.StaffOnDuty, s.Status)

	_, err = svc.UpdateTaskStatus(task.ID, models.TaskResolved)
	require.NoError(t, err)
	require.NoError(t, db.First(&s, staff.ID).Error)
	assert.Equal(t, models.StaffAvailable, s.Status)

	before, err := svc.GetDashboardStats()
	require.NoError(t, err)

	_, err = svc.DeleteTask(task.ID)
	require.NoError(t, err)

	for _, statuses := range [][]models.TaskStatus{
		{models.TaskPending},
		{models.TaskCompleted, models.TaskResolved},
		{models.TaskMaintenance},
	} {
		tasks, err := svc.ListTasksByStatus(statuses...)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	}

	after, err := svc.GetDashboardStats()
	require.NoError(t, err)
	assert.Equal(t, before.CompletedTasks-1, after.CompletedTasks)
}
