package models

import (
	"time"
)

type Organisation struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Users     []User     `gorm:"foreignKey:OrganisationID" json:"users,omitempty"`
	Employees []Employee `gorm:"foreignKey:OrganisationID" json:"employees,omitempty"`
	Teams     []Team     `gorm:"foreignKey:OrganisationID" json:"teams,omitempty"`
}
