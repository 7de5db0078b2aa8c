package models

import (
	"time"
)

// AuditAction identifies what kind of mutation an audit entry records.
type AuditAction string

const (
	ActionOrganisationCreated AuditAction = "organisation_created"
	ActionUserLogin           AuditAction = "user_login"
	ActionEmployeeCreated     AuditAction = "employee_created"
	ActionEmployeeUpdated     AuditAction = "employee_updated"
	ActionEmployeeDeleted     AuditAction = "employee_deleted"
	ActionTeamCreated         AuditAction = "team_created"
	ActionEmployeeAssigned    AuditAction = "employee_assigned"
	ActionEmployeeUnassigned  AuditAction = "employee_unassigned"
)

// AuditLog is an append-only record of a mutating action. Rows are never
// updated or deleted by the application.
type AuditLog struct {
	ID             uint64      `gorm:"primarykey" json:"id"`
	OrganisationID uint64      `gorm:"not null;index" json:"organisation_id"`
	UserID         *uint64     `json:"user_id"`
	Action         AuditAction `gorm:"type:varchar(50);not null" json:"action"`
	Meta           string      `gorm:"type:text" json:"-"`
	Timestamp      time.Time   `gorm:"autoCreateTime;index" json:"timestamp"`
}

// Typed metadata payloads, one per audit action. They serialize into the
// entry's meta column with the same field names the API exposes.

type RegistrationMeta struct {
	OrgName   string `json:"orgName"`
	AdminName string `json:"adminName"`
}

type LoginMeta struct {
	Email string `json:"email"`
}

type EmployeeMeta struct {
	EmployeeID uint64 `json:"employeeId"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

type EmployeeDeletedMeta struct {
	EmployeeID uint64 `json:"employeeId"`
}

type TeamMeta struct {
	TeamID uint64 `json:"teamId"`
	Name   string `json:"name"`
}

type AssignmentMeta struct {
	EmployeeID uint64 `json:"employeeId"`
	TeamID     uint64 `json:"teamId"`
}
