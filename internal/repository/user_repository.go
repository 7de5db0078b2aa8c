package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/hr-management-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

var (
	// ErrDuplicateEmail is returned when a registration reuses an email that
	// already belongs to a user in any organisation.
	ErrDuplicateEmail = errors.New("user repository: email already exists")
	// ErrCreateOrganisation is returned when creating the organisation fails inside the registration transaction.
	ErrCreateOrganisation = errors.New("user repository: create organisation failed")
	// ErrCreateUser is returned when creating the admin user fails inside the registration transaction.
	ErrCreateUser = errors.New("user repository: create user failed")
	// ErrCreateAuditLog is returned when writing the initial audit entry fails inside the registration transaction.
	ErrCreateAuditLog = errors.New("user repository: create audit log failed")
)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// RegisterOrganisation creates the organisation, its admin user, and the
// initial audit entry atomically. A unique-email violation aborts the whole
// transaction so no orphan organisation row survives.
func (r *GormUserRepository) RegisterOrganisation(org *models.Organisation, user *models.User, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateOrganisation, err)
		}

		user.OrganisationID = org.ID
		if err := tx.Create(user).Error; err != nil {
			if isDuplicateKey(err) {
				return ErrDuplicateEmail
			}
			return fmt.Errorf("%w: %v", ErrCreateUser, err)
		}

		entry.OrganisationID = org.ID
		entry.UserID = &user.ID
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateAuditLog, err)
		}

		return nil
	})
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindInOrganisation finds a user by ID scoped to an organisation
func (r *GormUserRepository) FindInOrganisation(id, organisationID uint64) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ? AND organisation_id = ?", id, organisationID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// isDuplicateKey reports whether err is a unique constraint violation. The
// string check covers drivers opened without gorm's error translation.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry")
}
