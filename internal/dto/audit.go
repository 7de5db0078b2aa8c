package dto

import (
	"encoding/json"
	"time"

	"github.com/yukikurage/hr-management-api/internal/models"
	"github.com/yukikurage/hr-management-api/internal/repository"
)

// AuditLogDTO represents an audit entry in API responses, with the metadata
// payload deserialized into structured form.
type AuditLogDTO struct {
	ID             uint64             `json:"id"`
	OrganisationID uint64             `json:"organisation_id"`
	UserID         *uint64            `json:"user_id"`
	UserName       string             `json:"user_name"`
	Action         models.AuditAction `json:"action"`
	Meta           map[string]any     `json:"meta"`
	Timestamp      time.Time          `json:"timestamp"`
}

// ToAuditLogDTO converts a joined audit entry to its API shape. Entries whose
// user no longer resolves are attributed to "System".
func ToAuditLogDTO(entry repository.AuditLogEntry) AuditLogDTO {
	meta := map[string]any{}
	if entry.Meta != "" {
		// A payload written before a schema change may no longer decode;
		// surface the entry anyway with empty metadata.
		_ = json.Unmarshal([]byte(entry.Meta), &meta)
	}

	userName := "System"
	if entry.UserName != nil && *entry.UserName != "" {
		userName = *entry.UserName
	}

	return AuditLogDTO{
		ID:             entry.ID,
		OrganisationID: entry.OrganisationID,
		UserID:         entry.UserID,
		UserName:       userName,
		Action:         entry.Action,
		Meta:           meta,
		Timestamp:      entry.Timestamp,
	}
}

// ToAuditLogDTOs converts a slice of joined audit entries.
func ToAuditLogDTOs(entries []repository.AuditLogEntry) []AuditLogDTO {
	dtos := make([]AuditLogDTO, len(entries))
	for i, entry := range entries {
		dtos[i] = ToAuditLogDTO(entry)
	}
	return dtos
}
