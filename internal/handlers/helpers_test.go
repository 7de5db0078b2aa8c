package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/hr-management-api/internal/constants"
	"github.com/yukikurage/hr-management-api/internal/database"
	"github.com/yukikurage/hr-management-api/internal/middleware"
	"github.com/yukikurage/hr-management-api/internal/models"
	"github.com/yukikurage/hr-management-api/internal/repository"
	"github.com/yukikurage/hr-management-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	tokens *services.TokenService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Organisation{},
		&models.User{},
		&models.Employee{},
		&models.Team{},
		&models.Membership{},
		&models.AuditLog{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	tokens := services.NewTokenService("test-secret", constants.TokenTTL)
	auditService := services.NewAuditService(auditRepo)
	authService := services.NewAuthService(userRepo, auditRepo, tokens)
	employeeService := services.NewEmployeeService(employeeRepo, auditService)
	teamService := services.NewTeamService(teamRepo, employeeRepo, auditService)

	authHandler := NewAuthHandler(authService)
	employeeHandler := NewEmployeeHandler(employeeService)
	teamHandler := NewTeamHandler(teamService)
	logHandler := NewLogHandler(auditService)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	protected := r.Group("/")
	protected.Use(middleware.RequireAuth(tokens, userRepo))
	{
		employees := protected.Group("/employees")
		{
			employees.GET("", employeeHandler.List)
			employees.GET("/:id", employeeHandler.Get)
			employees.POST("", employeeHandler.Create)
			employees.PUT("/:id", employeeHandler.Update)
			employees.DELETE("/:id", employeeHandler.Delete)
		}

		teams := protected.Group("/teams")
		{
			teams.GET("", teamHandler.List)
			teams.POST("", teamHandler.Create)
			teams.POST("/:id/assign", teamHandler.Assign)
			teams.DELETE("/:id/unassign", teamHandler.Unassign)
			teams.GET("/:id/members", teamHandler.Members)
		}

		protected.GET("/logs", logHandler.List)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &testEnv{
		db:     db,
		router: r,
		tokens: tokens,
	}
}

// do sends a JSON request through the router, with an optional bearer token.
func (env *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// registerOrg registers an organisation and returns its admin token and ID.
func (env *testEnv) registerOrg(t *testing.T, orgName, adminName, email, password string) (string, uint64) {
	t.Helper()

	w := env.do(t, http.MethodPost, "/auth/register", "", map[string]string{
		"orgName":   orgName,
		"adminName": adminName,
		"email":     email,
		"password":  password,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Token string `json:"token"`
		OrgID uint64 `json:"orgId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)
	return response.Token, response.OrgID
}

// createEmployee creates an employee through the API and returns its ID.
func (env *testEnv) createEmployee(t *testing.T, token, firstName, lastName string) uint64 {
	t.Helper()

	w := env.do(t, http.MethodPost, "/employees", token, map[string]string{
		"first_name": firstName,
		"last_name":  lastName,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var employee models.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &employee))
	return employee.ID
}

// createTeam creates a team through the API and returns its ID.
func (env *testEnv) createTeam(t *testing.T, token, name string) uint64 {
	t.Helper()

	w := env.do(t, http.MethodPost, "/teams", token, map[string]string{
		"name": name,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var team models.Team
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &team))
	return team.ID
}
