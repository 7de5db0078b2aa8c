package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/hr-management-api/internal/errors"
	"github.com/yukikurage/hr-management-api/internal/middleware"
	"github.com/yukikurage/hr-management-api/internal/models"
	"github.com/yukikurage/hr-management-api/internal/services"
)

// TeamHandler coordinates team and membership HTTP handlers.
type TeamHandler struct {
	teamService *services.TeamService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// List returns the organisation's teams with employee counts. Display-only
// read: a store failure degrades to an empty list.
func (h *TeamHandler) List(c *gin.Context) {
	orgID, _ := middleware.GetOrganisationID(c)

	teams, err := h.teamService.List(orgID)
	if err != nil {
		log.Printf("Error fetching teams: %v", err)
		c.JSON(http.StatusOK, []models.TeamWithCount{})
		return
	}

	c.JSON(http.StatusOK, teams)
}

// Create adds a new team.
func (h *TeamHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	orgID, _ := middleware.GetOrganisationID(c)

	type CreateTeamRequest struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	team, err := h.teamService.Create(orgID, userID, services.CreateTeamInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, services.ErrTeamNameRequired) {
			apierrors.BadRequest(c, "Team name is required")
			return
		}
		log.Printf("Error creating team: %v", err)
		apierrors.BadRequest(c, "Failed to create team")
		return
	}

	c.JSON(http.StatusCreated, team)
}

// AssignmentRequest is the request body for assign and unassign.
type AssignmentRequest struct {
	EmployeeID uint64 `json:"employeeId"`
}

// Assign puts an employee on a team.
func (h *TeamHandler) Assign(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	orgID, _ := middleware.GetOrganisationID(c)

	teamID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Team not found")
		return
	}

	var req AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EmployeeID == 0 {
		apierrors.BadRequest(c, "Employee ID is required")
		return
	}

	if err := h.teamService.AssignEmployee(teamID, req.EmployeeID, orgID, userID); err != nil {
		switch {
		case errors.Is(err, services.ErrTeamNotFound):
			apierrors.NotFound(c, "Team not found")
		case errors.Is(err, services.ErrEmployeeNotFound):
			apierrors.NotFound(c, "Employee not found")
		case errors.Is(err, services.ErrAlreadyAssigned):
			apierrors.BadRequestWithCode(c, apierrors.ErrCodeAlreadyAssigned, "Employee already assigned to this team")
		default:
			log.Printf("Error assigning employee to team: %v", err)
			apierrors.BadRequest(c, "Failed to assign employee to team")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee assigned to team successfully"})
}

// Unassign removes an employee from a team.
func (h *TeamHandler) Unassign(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	orgID, _ := middleware.GetOrganisationID(c)

	teamID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Team not found")
		return
	}

	var req AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EmployeeID == 0 {
		apierrors.BadRequest(c, "Employee ID is required")
		return
	}

	if err := h.teamService.UnassignEmployee(teamID, req.EmployeeID, orgID, userID); err != nil {
		switch {
		case errors.Is(err, services.ErrTeamNotFound):
			apierrors.NotFound(c, "Team not found")
		case errors.Is(err, services.ErrAssignmentNotFound):
			apierrors.NotFound(c, "Assignment not found")
		default:
			log.Printf("Error unassigning employee from team: %v", err)
			apierrors.BadRequest(c, "Failed to unassign employee from team")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee unassigned from team successfully"})
}

// Members returns a team's employees.
func (h *TeamHandler) Members(c *gin.Context) {
	orgID, _ := middleware.GetOrganisationID(c)

	teamID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Team not found")
		return
	}

	members, err := h.teamService.ListMembers(teamID, orgID)
	if err != nil {
		if errors.Is(err, services.ErrTeamNotFound) {
			apierrors.NotFound(c, "Team not found")
			return
		}
		log.Printf("Error fetching team members: %v", err)
		apierrors.InternalError(c, "Failed to fetch team members")
		return
	}

	c.JSON(http.StatusOK, members)
}
