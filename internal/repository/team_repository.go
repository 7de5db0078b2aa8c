package repository

import (
	"errors"

	"github.com/yukikurage/hr-management-api/internal/models"
	"gorm.io/gorm"
)

// ErrDuplicateMembership is returned when an (employee, team) pair is
// assigned twice. The unique index raises it even when two callers race
// past the application-level existence check.
var ErrDuplicateMembership = errors.New("team repository: membership already exists")

// GormTeamRepository is a GORM implementation of TeamRepository
type GormTeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &GormTeamRepository{db: db}
}

// ListWithCounts lists an organisation's teams newest-first with member counts
func (r *GormTeamRepository) ListWithCounts(organisationID uint64) ([]models.TeamWithCount, error) {
	var teams []models.TeamWithCount
	err := r.db.Model(&models.Team{}).
		Select("teams.*, COUNT(memberships.employee_id) AS employee_count").
		Joins("LEFT JOIN memberships ON memberships.team_id = teams.id").
		Where("teams.organisation_id = ?", organisationID).
		Group("teams.id").
		Order("teams.created_at DESC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// FindInOrganisation finds a team by ID scoped to an organisation
func (r *GormTeamRepository) FindInOrganisation(id, organisationID uint64) (*models.Team, error) {
	var team models.Team
	if err := r.db.Where("id = ? AND organisation_id = ?", id, organisationID).First(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// Create creates a new team
func (r *GormTeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// FindMembership finds a specific employee/team membership
func (r *GormTeamRepository) FindMembership(employeeID, teamID uint64) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.Where("employee_id = ? AND team_id = ?", employeeID, teamID).First(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// CreateMembership assigns an employee to a team
func (r *GormTeamRepository) CreateMembership(membership *models.Membership) error {
	if err := r.db.Create(membership).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateMembership
		}
		return err
	}
	return nil
}

// DeleteMembership removes an assignment, returning how many rows matched
func (r *GormTeamRepository) DeleteMembership(employeeID, teamID uint64) (int64, error) {
	result := r.db.Where("employee_id = ? AND team_id = ?", employeeID, teamID).Delete(&models.Membership{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ListMembers lists a team's employees ordered by first then last name
func (r *GormTeamRepository) ListMembers(teamID, organisationID uint64) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.
		Joins("INNER JOIN memberships ON memberships.employee_id = employees.id").
		Where("memberships.team_id = ? AND employees.organisation_id = ?", teamID, organisationID).
		Order("employees.first_name, employees.last_name").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}
