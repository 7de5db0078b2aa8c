package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hr-management-api/internal/dto"
	"github.com/yukikurage/hr-management-api/internal/middleware"
	"github.com/yukikurage/hr-management-api/internal/services"
)

// LogHandler serves the audit trail.
type LogHandler struct {
	auditService *services.AuditService
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(auditService *services.AuditService) *LogHandler {
	return &LogHandler{
		auditService: auditService,
	}
}

// List returns the organisation's most recent audit entries, newest-first.
// Display-only read: a store failure degrades to an empty list.
func (h *LogHandler) List(c *gin.Context) {
	orgID, _ := middleware.GetOrganisationID(c)

	entries, err := h.auditService.List(orgID)
	if err != nil {
		log.Printf("Error fetching logs: %v", err)
		c.JSON(http.StatusOK, []dto.AuditLogDTO{})
		return
	}

	c.JSON(http.StatusOK, dto.ToAuditLogDTOs(entries))
}
