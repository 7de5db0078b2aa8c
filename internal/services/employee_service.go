package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/hr-management-api/internal/models"
	"github.com/yukikurage/hr-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNameRequired     = errors.New("first name and last name are required")
)

// EmployeeService handles employee business logic. Every operation takes the
// caller's organisation ID resolved by the auth middleware; caller-supplied
// organisation IDs are never trusted.
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
	audit        *AuditService
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(employeeRepo repository.EmployeeRepository, audit *AuditService) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		audit:        audit,
	}
}

// EmployeeInput represents the writable fields of an employee.
type EmployeeInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func (i EmployeeInput) validate() error {
	if strings.TrimSpace(i.FirstName) == "" || strings.TrimSpace(i.LastName) == "" {
		return ErrNameRequired
	}
	return nil
}

// List returns the organisation's employees newest-first.
func (s *EmployeeService) List(organisationID uint64) ([]models.Employee, error) {
	employees, err := s.employeeRepo.ListByOrganisation(organisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// Get returns one employee. An employee in another organisation is reported
// as not found, same as one that does not exist.
func (s *EmployeeService) Get(id, organisationID uint64) (*models.Employee, error) {
	employee, err := s.employeeRepo.FindInOrganisation(id, organisationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	return employee, nil
}

// Create adds an employee to the organisation and records the action.
func (s *EmployeeService) Create(organisationID, userID uint64, input EmployeeInput) (*models.Employee, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	employee := &models.Employee{
		OrganisationID: organisationID,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Phone:          input.Phone,
	}

	if err := s.employeeRepo.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	err := s.audit.Record(organisationID, userID, models.ActionEmployeeCreated, models.EmployeeMeta{
		EmployeeID: employee.ID,
		FirstName:  employee.FirstName,
		LastName:   employee.LastName,
	})
	if err != nil {
		return nil, err
	}

	return employee, nil
}

// Update rewrites an employee's fields. Zero matched rows means the employee
// does not exist within the caller's organisation.
func (s *EmployeeService) Update(id, organisationID, userID uint64, input EmployeeInput) error {
	if err := input.validate(); err != nil {
		return err
	}

	employee := &models.Employee{
		ID:             id,
		OrganisationID: organisationID,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Phone:          input.Phone,
	}

	affected, err := s.employeeRepo.Update(employee)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}

	return s.audit.Record(organisationID, userID, models.ActionEmployeeUpdated, models.EmployeeMeta{
		EmployeeID: id,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
	})
}

// Delete removes an employee along with its team memberships.
func (s *EmployeeService) Delete(id, organisationID, userID uint64) error {
	affected, err := s.employeeRepo.Delete(id, organisationID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}

	return s.audit.Record(organisationID, userID, models.ActionEmployeeDeleted, models.EmployeeDeletedMeta{
		EmployeeID: id,
	})
}
