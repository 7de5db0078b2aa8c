package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/hr-management-api/internal/models"
)

func TestTeamHandler_CreateAndListWithCounts(t *testing.T) {
	env := setupTestEnv(t)
	token, _ := env.registerOrg(t, "Acme", "Alice Admin", "alice@acme.test", "secret1")

	engID := env.createTeam(t, token, "Eng")
	env.createTeam(t, token, "Sales")

	jo := env.createEmployee(t, token, "Jo", "Lee")
	sam := env.createEmployee(t, token, "Sam", "Moss")

	for _, employeeID := range []uint64{jo, sam} {
		w := env.do(t, http.MethodPost, fmt.Sprintf("/teams/%d/assign", engID), token, map[string]uint64{
			"employeeId": employeeID,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := env.do(t, http.MethodGet, "/teams", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var teams []models.TeamWithCount
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teams))
	require.Len(t, teams, 2)

	counts := map[string]int64{}
	for _, team := range teams {
		counts[team.Name] = team.EmployeeCount
	}
	require.EqualValues(t, 2, counts["Eng"])
	require.EqualValues(t, 0, counts["Sales"])
}

func TestTeamHandler_Create_MissingName(t *testing.T) {
	env := setupTestEnv(t)
	token, _ := env.registerOrg(t, "Acme", "Alice Admin", "alice@acme.test", "secret1")

	w := env.do(t, http.MethodPost, "/teams", token, map[string]string{
		"description": "no name",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Team name is required")
}

func TestTeamHandler_Assign_DuplicatePair(t *testing.T) {
	env := setupTestEnv(t)
	token, _ := env.registerOrg(t, "Acme", "Alice Admin", "alice@acme.test", "secret1")
	teamID := env.createTeam(t, token, "Eng")
	employeeID := env.createEmployee(t, token, "Jo", "Lee")

	w := env.do(t, http.MethodPost, fmt.Sprintf("/teams/%d/assign", teamID), token, map[string]uint64{
		"employeeId": employeeID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, fmt.Sprintf("/teams/%d/assign", teamID), token, map[string]uint64{
		"employeeId": employeeID,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "ALREADY_ASSIGNED")

	// Exactly one membership row exists afterwards.
	var count int64
	require.NoError(t, env.db.Model(&models.Membership{}).
		Where("employee_id = ? AND team_id = ?", employeeID, teamID).
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestTeamHandler_Assign_NotFound(t *testing.T) {
	env := setupTestEnv(t)
	token, _ := env.registerOrg(t, "Acme", "Alice Admin", "alice@acme.test", "secret1")
	teamID := env.createTeam(t, token, "Eng")
	employeeID := env.createEmployee(t, token, "Jo", "Lee")

	w := env.do(t, http.MethodPost, "/teams/9999/assign", token, map[string]uint64{
		"employeeId": employeeID,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Team not found")

	w = env.do(t, http.MethodPost, fmt.Sprintf("/teams/%d/assign", teamID), token, map[string]uint64{
		"employeeId": 9999,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Employee not found")
}

func TestTeamHandler_Unassign(t *testing.T) {
	env := setupTestEnv(t)
	token, _ := env.registerOrg(t, "Acme", "Alice Admin", "alice@acme.test", "secret1")
	teamID := env.createTeam(t, token, "Eng")
	employeeID := env.createEmployee(t, token, "Jo", "Lee")

	w := env.do(t, http.MethodPost, fmt.Sprintf("/teams/%d/assign", teamID), token, map[string]uint64{
		"employeeId": employeeID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/teams/%d/unassign", teamID), token, map[string]uint64{
		"employeeId": employeeID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// A second unassign finds nothing.
	w = env.do(t, http.MethodDelete, fmt.Sprintf("/teams/%d/unassign", teamID), token, map[string]uint64{
		"employeeId": employeeID,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestTeamHandler_Members_OrderedByName(t *testing.T) {
	env := setupTestEnv(t)
	token, _ := env.registerOrg(t, "Acme", "Alice Admin", "alice@acme.test", "secret1")
	teamID := env.createTeam(t, token, "Eng")

	zoe := env.createEmployee(t, token, "Zoe", "Adams")
	amy := env.createEmployee(t, token, "Amy", "Brown")

	for _, employeeID := range []uint64{zoe, amy} {
		w := env.do(t, http.MethodPost, fmt.Sprintf("/teams/%d/assign", teamID), token, map[string]uint64{
			"employeeId": employeeID,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := env.do(t, http.MethodGet, fmt.Sprintf("/teams/%d/members", teamID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var members []models.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &members))
	require.Len(t, members, 2)
	require.Equal(t, "Amy", members[0].FirstName)
	require.Equal(t, "Zoe", members[1].FirstName)
}

func TestTeamHandler_TenantIsolation(t *testing.T) {
	env := setupTestEnv(t)
	tokenA, _ := env.registerOrg(t, "Acme", "Alice Admin", "alice@acme.test", "secret1")
	tokenB, _ := env.registerOrg(t, "Globex", "Bob Admin", "bob@globex.test", "secret2")

	teamID := env.createTeam(t, tokenA, "Eng")
	employeeA := env.createEmployee(t, tokenA, "Jo", "Lee")
	employeeB := env.createEmployee(t, tokenB, "Max", "Webb")

	// Another organisation cannot see the team at all.
	w := env.do(t, http.MethodGet, fmt.Sprintf("/teams/%d/members", teamID), tokenB, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodPost, fmt.Sprintf("/teams/%d/assign", teamID), tokenB, map[string]uint64{
		"employeeId": employeeB,
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	// A membership cannot link across organisations even for the team owner.
	w = env.do(t, http.MethodPost, fmt.Sprintf("/teams/%d/assign", teamID), tokenA, map[string]uint64{
		"employeeId": employeeB,
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	// Assigning within the organisation still works.
	w = env.do(t, http.MethodPost, fmt.Sprintf("/teams/%d/assign", teamID), tokenA, map[string]uint64{
		"employeeId": employeeA,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// The foreign organisation cannot strip the membership either.
	w = env.do(t, http.MethodDelete, fmt.Sprintf("/teams/%d/unassign", teamID), tokenB, map[string]uint64{
		"employeeId": employeeA,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}
