package models

import (
	"time"
)

type Employee struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	OrganisationID uint64    `gorm:"not null;index" json:"organisation_id"`
	FirstName      string    `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName       string    `gorm:"type:varchar(255);not null" json:"last_name"`
	Email          string    `gorm:"type:varchar(255)" json:"email"`
	Phone          string    `gorm:"type:varchar(50)" json:"phone"`
	CreatedAt      time.Time `json:"created_at"`

	// Relations
	Organisation Organisation `gorm:"foreignKey:OrganisationID" json:"organisation,omitempty"`
	Memberships  []Membership `gorm:"foreignKey:EmployeeID" json:"memberships,omitempty"`
}
