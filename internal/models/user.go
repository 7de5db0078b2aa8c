package models

import (
	"time"
)

type User struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	OrganisationID uint64    `gorm:"not null;index" json:"organisation_id"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash   string    `gorm:"type:varchar(255);not null" json:"-"`
	Name           string    `gorm:"type:varchar(255)" json:"name"`
	CreatedAt      time.Time `json:"created_at"`

	// Relations
	Organisation Organisation `gorm:"foreignKey:OrganisationID" json:"organisation,omitempty"`
}
