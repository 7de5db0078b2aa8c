package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/hr-management-api/internal/constants"
	"github.com/yukikurage/hr-management-api/internal/dto"
	"github.com/yukikurage/hr-management-api/internal/models"
)

func TestLogHandler_FullScenario(t *testing.T) {
	env := setupTestEnv(t)

	_, orgID := env.registerOrg(t, "Acme", "Alice Admin", "a@x.com", "secret1")

	w := env.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "a@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	token := login.Token

	employeeID := env.createEmployee(t, token, "Jo", "Lee")
	teamID := env.createTeam(t, token, "Eng")

	w = env.do(t, http.MethodPost, fmt.Sprintf("/teams/%d/assign", teamID), token, map[string]uint64{
		"employeeId": employeeID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/teams/%d/members", teamID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var members []models.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &members))
	require.Len(t, members, 1)
	require.Equal(t, "Jo", members[0].FirstName)

	w = env.do(t, http.MethodGet, "/logs", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var logs []dto.AuditLogDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	require.Len(t, logs, 5)

	// Newest first.
	expected := []models.AuditAction{
		models.ActionEmployeeAssigned,
		models.ActionTeamCreated,
		models.ActionEmployeeCreated,
		models.ActionUserLogin,
		models.ActionOrganisationCreated,
	}
	for i, action := range expected {
		require.Equal(t, action, logs[i].Action)
		require.Equal(t, orgID, logs[i].OrganisationID)
		require.Equal(t, "Alice Admin", logs[i].UserName)
	}

	// Metadata is deserialized into structured form.
	require.EqualValues(t, employeeID, logs[0].Meta["employeeId"])
	require.EqualValues(t, teamID, logs[0].Meta["teamId"])
	require.Equal(t, "Acme", logs[4].Meta["orgName"])
}

func TestLogHandler_LimitAndOrdering(t *testing.T) {
	env := setupTestEnv(t)
	token, orgID := env.registerOrg(t, "Acme", "Alice Admin", "alice@acme.test", "secret1")

	// Push well past the cap; registration already wrote one entry.
	for i := 0; i < constants.AuditLogLimit+10; i++ {
		entry := &models.AuditLog{
			OrganisationID: orgID,
			Action:         models.ActionEmployeeCreated,
			Meta:           fmt.Sprintf(`{"employeeId":%d}`, i),
		}
		require.NoError(t, env.db.Create(entry).Error)
	}

	w := env.do(t, http.MethodGet, "/logs", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var logs []dto.AuditLogDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	require.Len(t, logs, constants.AuditLogLimit)

	for i := 1; i < len(logs); i++ {
		require.False(t, logs[i].Timestamp.After(logs[i-1].Timestamp))
	}
}

func TestLogHandler_TenantIsolation(t *testing.T) {
	env := setupTestEnv(t)
	tokenA, orgA := env.registerOrg(t, "Acme", "Alice Admin", "alice@acme.test", "secret1")
	_, orgB := env.registerOrg(t, "Globex", "Bob Admin", "bob@globex.test", "secret2")
	require.NotEqual(t, orgA, orgB)

	w := env.do(t, http.MethodGet, "/logs", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var logs []dto.AuditLogDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	require.NotEmpty(t, logs)
	for _, entry := range logs {
		require.Equal(t, orgA, entry.OrganisationID)
	}
}

func TestLogHandler_SystemUserFallback(t *testing.T) {
	env := setupTestEnv(t)
	token, orgID := env.registerOrg(t, "Acme", "Alice Admin", "alice@acme.test", "secret1")

	// An entry whose user no longer resolves is attributed to "System".
	missingUser := uint64(9999)
	entry := &models.AuditLog{
		OrganisationID: orgID,
		UserID:         &missingUser,
		Action:         models.ActionEmployeeDeleted,
		Meta:           `{"employeeId":1}`,
	}
	require.NoError(t, env.db.Create(entry).Error)

	w := env.do(t, http.MethodGet, "/logs", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var logs []dto.AuditLogDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	require.Equal(t, models.ActionEmployeeDeleted, logs[0].Action)
	require.Equal(t, "System", logs[0].UserName)
}

func TestLogHandler_FailOpenOnStoreError(t *testing.T) {
	env := setupTestEnv(t)
	token, _ := env.registerOrg(t, "Acme", "Alice Admin", "alice@acme.test", "secret1")

	require.NoError(t, env.db.Migrator().DropTable(&models.AuditLog{}))

	w := env.do(t, http.MethodGet, "/logs", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var logs []dto.AuditLogDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	require.Empty(t, logs)
}
