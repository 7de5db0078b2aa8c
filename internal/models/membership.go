package models

import (
	"time"
)

// Membership links an employee to a team. The (employee_id, team_id) pair is
// unique at the database level so a concurrent double-assign cannot slip past
// the application-level check.
type Membership struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	EmployeeID uint64    `gorm:"not null;uniqueIndex:idx_memberships_employee_team" json:"employee_id"`
	TeamID     uint64    `gorm:"not null;uniqueIndex:idx_memberships_employee_team" json:"team_id"`
	AssignedAt time.Time `gorm:"autoCreateTime" json:"assigned_at"`

	// Relations
	Employee Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"employee,omitempty"`
	Team     Team     `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE" json:"team,omitempty"`
}
