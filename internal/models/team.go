package models

import (
	"time"
)

type Team struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	OrganisationID uint64    `gorm:"not null;index" json:"organisation_id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Description    string    `gorm:"type:text" json:"description"`
	CreatedAt      time.Time `json:"created_at"`

	// Relations
	Organisation Organisation `gorm:"foreignKey:OrganisationID" json:"organisation,omitempty"`
	Memberships  []Membership `gorm:"foreignKey:TeamID" json:"memberships,omitempty"`
}

// TeamWithCount is a Team annotated with how many employees are assigned to it.
type TeamWithCount struct {
	Team
	EmployeeCount int64 `json:"employee_count"`
}
