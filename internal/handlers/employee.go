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

// EmployeeHandler coordinates employee HTTP handlers.
type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// EmployeeRequest is the request body shared by create and update.
type EmployeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// List returns the organisation's employees. This is a display-only read:
// a store failure degrades to an empty list instead of an error.
func (h *EmployeeHandler) List(c *gin.Context) {
	orgID, _ := middleware.GetOrganisationID(c)

	employees, err := h.employeeService.List(orgID)
	if err != nil {
		log.Printf("Error fetching employees: %v", err)
		c.JSON(http.StatusOK, []models.Employee{})
		return
	}

	c.JSON(http.StatusOK, employees)
}

// Get returns a single employee.
func (h *EmployeeHandler) Get(c *gin.Context) {
	orgID, _ := middleware.GetOrganisationID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Employee not found")
		return
	}

	employee, err := h.employeeService.Get(id, orgID)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			apierrors.NotFound(c, "Employee not found")
			return
		}
		log.Printf("Error fetching employee: %v", err)
		apierrors.InternalError(c, "Failed to fetch employee")
		return
	}

	c.JSON(http.StatusOK, employee)
}

// Create adds a new employee.
func (h *EmployeeHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	orgID, _ := middleware.GetOrganisationID(c)

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.employeeService.Create(orgID, userID, services.EmployeeInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		if errors.Is(err, services.ErrNameRequired) {
			apierrors.BadRequest(c, "First name and last name are required")
			return
		}
		log.Printf("Error creating employee: %v", err)
		apierrors.BadRequest(c, "Failed to create employee")
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// Update rewrites an employee's fields.
func (h *EmployeeHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	orgID, _ := middleware.GetOrganisationID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Employee not found")
		return
	}

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	err = h.employeeService.Update(id, orgID, userID, services.EmployeeInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNameRequired):
			apierrors.BadRequest(c, "First name and last name are required")
		case errors.Is(err, services.ErrEmployeeNotFound):
			apierrors.NotFound(c, "Employee not found")
		default:
			log.Printf("Error updating employee: %v", err)
			apierrors.BadRequest(c, "Failed to update employee")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee updated successfully"})
}

// Delete removes an employee and its team memberships.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	orgID, _ := middleware.GetOrganisationID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Employee not found")
		return
	}

	if err := h.employeeService.Delete(id, orgID, userID); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			apierrors.NotFound(c, "Employee not found")
			return
		}
		log.Printf("Error deleting employee: %v", err)
		apierrors.BadRequest(c, "Failed to delete employee")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}
