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
	ErrTeamNotFound       = errors.New("team not found")
	ErrTeamNameRequired   = errors.New("team name is required")
	ErrAlreadyAssigned    = errors.New("employee already assigned to this team")
	ErrAssignmentNotFound = errors.New("assignment not found")
)

// TeamService handles team and membership business logic.
type TeamService struct {
	teamRepo     repository.TeamRepository
	employeeRepo repository.EmployeeRepository
	audit        *AuditService
}

// NewTeamService creates a new TeamService.
func NewTeamService(teamRepo repository.TeamRepository, employeeRepo repository.EmployeeRepository, audit *AuditService) *TeamService {
	return &TeamService{
		teamRepo:     teamRepo,
		employeeRepo: employeeRepo,
		audit:        audit,
	}
}

// List returns the organisation's teams newest-first, each with its
// employee count.
func (s *TeamService) List(organisationID uint64) ([]models.TeamWithCount, error) {
	teams, err := s.teamRepo.ListWithCounts(organisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// CreateTeamInput represents the writable fields of a team.
type CreateTeamInput struct {
	Name        string
	Description string
}

// Create adds a team to the organisation and records the action.
func (s *TeamService) Create(organisationID, userID uint64, input CreateTeamInput) (*models.Team, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrTeamNameRequired
	}

	team := &models.Team{
		OrganisationID: organisationID,
		Name:           input.Name,
		Description:    input.Description,
	}

	if err := s.teamRepo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	err := s.audit.Record(organisationID, userID, models.ActionTeamCreated, models.TeamMeta{
		TeamID: team.ID,
		Name:   team.Name,
	})
	if err != nil {
		return nil, err
	}

	return team, nil
}

// AssignEmployee puts an employee on a team. Both must belong to the
// caller's organisation; assigning the same pair twice fails.
func (s *TeamService) AssignEmployee(teamID, employeeID, organisationID, userID uint64) error {
	if _, err := s.teamRepo.FindInOrganisation(teamID, organisationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to find team: %w", err)
	}

	if _, err := s.employeeRepo.FindInOrganisation(employeeID, organisationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to find employee: %w", err)
	}

	if _, err := s.teamRepo.FindMembership(employeeID, teamID); err == nil {
		return ErrAlreadyAssigned
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check membership: %w", err)
	}

	membership := &models.Membership{
		EmployeeID: employeeID,
		TeamID:     teamID,
	}
	if err := s.teamRepo.CreateMembership(membership); err != nil {
		if errors.Is(err, repository.ErrDuplicateMembership) {
			return ErrAlreadyAssigned
		}
		return fmt.Errorf("failed to create membership: %w", err)
	}

	return s.audit.Record(organisationID, userID, models.ActionEmployeeAssigned, models.AssignmentMeta{
		EmployeeID: employeeID,
		TeamID:     teamID,
	})
}

// UnassignEmployee removes an employee from a team.
func (s *TeamService) UnassignEmployee(teamID, employeeID, organisationID, userID uint64) error {
	if _, err := s.teamRepo.FindInOrganisation(teamID, organisationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to find team: %w", err)
	}

	affected, err := s.teamRepo.DeleteMembership(employeeID, teamID)
	if err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}
	if affected == 0 {
		return ErrAssignmentNotFound
	}

	return s.audit.Record(organisationID, userID, models.ActionEmployeeUnassigned, models.AssignmentMeta{
		EmployeeID: employeeID,
		TeamID:     teamID,
	})
}

// ListMembers returns a team's employees ordered by first then last name.
func (s *TeamService) ListMembers(teamID, organisationID uint64) ([]models.Employee, error) {
	if _, err := s.teamRepo.FindInOrganisation(teamID, organisationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	members, err := s.teamRepo.ListMembers(teamID, organisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return members, nil
}
