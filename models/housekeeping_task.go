package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskPending     TaskStatus = "pending"
	TaskCompleted   TaskStatus = "completed"
	TaskMaintenance TaskStatus = "maintenance"
	TaskResolved    TaskStatus = "resolved"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskCompleted, TaskMaintenance, TaskResolved:
		return true
	}
	return false
}

// Released reports whether the status ends the assignment and frees the
// staff member.
func (s TaskStatus) Released() bool {
	return s == TaskCompleted || s == TaskResolved
}

type HousekeepingTask struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RoomID   uint   `gorm:"column:room_id;index" json:"roomId"`
	TaskType string `gorm:"column:task_type;size:100" json:"taskType"`
	Priority string `gorm:"size:20" json:"priority"`

	// StaffID is the authoritative link to the assigned staff member;
	// AssignedTo keeps the display name clients render.
	StaffID    uint       `gorm:"column:staff_id;index" json:"staffId"`
	AssignedTo string     `gorm:"column:assigned_to;size:200" json:"assignedTo"`
	Status     TaskStatus `gorm:"size:20;index" json:"status"`

	LastCleaned time.Time `gorm:"column:last_cleaned" json:"lastCleaned"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`

	Room  Room  `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Staff Staff `gorm:"foreignKey:StaffID" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
