package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// StaffStatus enumerates the availability states a staff member moves
// through. Assignment requires Active; an assigned member is On Duty until
// their task is completed or resolved, which sets them back to Available.
type StaffStatus string

const (
	StaffActive    StaffStatus = "Active"
	StaffOnDuty    StaffStatus = "On Duty"
	StaffAvailable StaffStatus = "Available"
	StaffInactive  StaffStatus = "Inactive"
)

func (s StaffStatus) Valid() bool {
	switch s {
	case StaffActive, StaffOnDuty, StaffAvailable, StaffInactive:
		return true
	}
	return false
}

const RoleHousekeeping = "Housekeeping"

type Staff struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FirstName string         `gorm:"column:first_name;size:100" json:"firstName"`
	LastName  string         `gorm:"column:last_name;size:100" json:"lastName"`
	Role      string         `gorm:"size:50;index" json:"role"`
	Status    StaffStatus    `gorm:"size:20;index" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// FullName is the display form stored on tasks as assignedTo.
func (s Staff) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}
