package repository

import (
	"time"

	"github.com/yukikurage/hr-management-api/internal/models"
)

// UserRepository defines the interface for user and registration data access
type UserRepository interface {
	// RegisterOrganisation creates an organisation, its admin user, and the
	// initial audit entry within a single transaction.
	RegisterOrganisation(org *models.Organisation, user *models.User, entry *models.AuditLog) error

	// FindByEmail finds a user by email across all organisations
	FindByEmail(email string) (*models.User, error)

	// FindInOrganisation finds a user by ID scoped to an organisation
	FindInOrganisation(id, organisationID uint64) (*models.User, error)
}

// EmployeeRepository defines the interface for employee data access.
// Every method is scoped by organisation ID; an employee in another
// organisation is indistinguishable from one that does not exist.
type EmployeeRepository interface {
	// ListByOrganisation lists employees newest-first
	ListByOrganisation(organisationID uint64) ([]models.Employee, error)

	// FindInOrganisation finds an employee by ID scoped to an organisation
	FindInOrganisation(id, organisationID uint64) (*models.Employee, error)

	// Create creates a new employee
	Create(employee *models.Employee) error

	// Update writes the mutable fields, returning how many rows matched
	Update(employee *models.Employee) (int64, error)

	// Delete removes an employee and its memberships, returning how many
	// employee rows matched
	Delete(id, organisationID uint64) (int64, error)
}

// TeamRepository defines the interface for team and membership data access
type TeamRepository interface {
	// ListWithCounts lists teams newest-first, each with its member count
	ListWithCounts(organisationID uint64) ([]models.TeamWithCount, error)

	// FindInOrganisation finds a team by ID scoped to an organisation
	FindInOrganisation(id, organisationID uint64) (*models.Team, error)

	// Create creates a new team
	Create(team *models.Team) error

	// FindMembership finds a specific employee/team membership
	FindMembership(employeeID, teamID uint64) (*models.Membership, error)

	// CreateMembership assigns an employee to a team
	CreateMembership(membership *models.Membership) error

	// DeleteMembership removes an assignment, returning how many rows matched
	DeleteMembership(employeeID, teamID uint64) (int64, error)

	// ListMembers lists a team's employees ordered by first then last name
	ListMembers(teamID, organisationID uint64) ([]models.Employee, error)
}

// AuditLogEntry is an audit row joined with the acting user's display name.
type AuditLogEntry struct {
	ID             uint64             `json:"id"`
	OrganisationID uint64             `json:"organisation_id"`
	UserID         *uint64            `json:"user_id"`
	Action         models.AuditAction `json:"action"`
	Meta           string             `json:"-"`
	Timestamp      time.Time          `json:"timestamp"`
	UserName       *string            `json:"user_name"`
}

// AuditLogRepository defines the interface for the append-only audit log.
// There is deliberately no update or delete.
type AuditLogRepository interface {
	// Append writes one audit entry
	Append(entry *models.AuditLog) error

	// ListRecent returns the most recent entries for an organisation,
	// newest-first, joined with the acting user's name
	ListRecent(organisationID uint64, limit int) ([]AuditLogEntry, error)
}
