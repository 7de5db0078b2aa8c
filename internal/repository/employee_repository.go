package repository

import (
	"github.com/yukikurage/hr-management-api/internal/models"
	"gorm.io/gorm"
)

// GormEmployeeRepository is a GORM implementation of EmployeeRepository
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// ListByOrganisation lists an organisation's employees newest-first
func (r *GormEmployeeRepository) ListByOrganisation(organisationID uint64) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.
		Where("organisation_id = ?", organisationID).
		Order("created_at DESC").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

// FindInOrganisation finds an employee by ID scoped to an organisation
func (r *GormEmployeeRepository) FindInOrganisation(id, organisationID uint64) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.Where("id = ? AND organisation_id = ?", id, organisationID).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// Create creates a new employee
func (r *GormEmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// Update writes the mutable fields of an employee. The WHERE clause carries
// both the ID and the organisation ID, so zero affected rows is the only
// signal that the employee does not exist within the caller's organisation.
func (r *GormEmployeeRepository) Update(employee *models.Employee) (int64, error) {
	result := r.db.Model(&models.Employee{}).
		Where("id = ? AND organisation_id = ?", employee.ID, employee.OrganisationID).
		Updates(map[string]any{
			"first_name": employee.FirstName,
			"last_name":  employee.LastName,
			"email":      employee.Email,
			"phone":      employee.Phone,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete removes an employee and all of its memberships in one transaction.
// The membership cleanup only runs once the employee row matched, so a
// cross-organisation ID cannot strip memberships it does not own.
func (r *GormEmployeeRepository) Delete(id, organisationID uint64) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND organisation_id = ?", id, organisationID).Delete(&models.Employee{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		if affected == 0 {
			return nil
		}

		return tx.Where("employee_id = ?", id).Delete(&models.Membership{}).Error
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
