package services

import (
	"encoding/json"
	"fmt"

	"github.com/yukikurage/hr-management-api/internal/constants"
	"github.com/yukikurage/hr-management-api/internal/models"
	"github.com/yukikurage/hr-management-api/internal/repository"
)

// AuditService records and queries the append-only audit trail.
type AuditService struct {
	auditRepo repository.AuditLogRepository
}

// NewAuditService creates a new AuditService.
func NewAuditService(auditRepo repository.AuditLogRepository) *AuditService {
	return &AuditService{
		auditRepo: auditRepo,
	}
}

// NewLogEntry builds an audit entry with its metadata payload serialized.
// Exposed so the registration transaction can write its entry through the
// same shape as every other mutation.
func NewLogEntry(organisationID uint64, userID *uint64, action models.AuditAction, meta any) (*models.AuditLog, error) {
	payload, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to encode audit metadata: %w", err)
	}

	return &models.AuditLog{
		OrganisationID: organisationID,
		UserID:         userID,
		Action:         action,
		Meta:           string(payload),
	}, nil
}

// Record appends one audit entry for a mutation performed by userID.
func (s *AuditService) Record(organisationID, userID uint64, action models.AuditAction, meta any) error {
	entry, err := NewLogEntry(organisationID, &userID, action, meta)
	if err != nil {
		return err
	}

	if err := s.auditRepo.Append(entry); err != nil {
		return fmt.Errorf("failed to append audit log: %w", err)
	}
	return nil
}

// List returns the most recent entries for an organisation, newest-first.
func (s *AuditService) List(organisationID uint64) ([]repository.AuditLogEntry, error) {
	entries, err := s.auditRepo.ListRecent(organisationID, constants.AuditLogLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return entries, nil
}
