package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hr-management-api/internal/dto"
	apierrors "github.com/yukikurage/hr-management-api/internal/errors"
	"github.com/yukikurage/hr-management-api/internal/services"
)

// AuthHandler coordinates registration and login HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates an organisation together with its admin user.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		OrgName   string `json:"orgName"`
		AdminName string `json:"adminName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Register(services.RegisterInput{
		OrgName:   req.OrgName,
		AdminName: req.AdminName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			apierrors.BadRequest(c, "All fields are required")
		case errors.Is(err, services.ErrDuplicateEmail):
			apierrors.BadRequestWithCode(c, apierrors.ErrCodeDuplicateEmail, "Email already exists")
		default:
			log.Printf("Registration error: %v", err)
			apierrors.BadRequest(c, "Registration failed")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Token:          result.Token,
		OrganisationID: result.OrganisationID,
		Message:        "Organisation registered successfully",
	})
}

// Login authenticates a user and issues a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		apierrors.BadRequest(c, "Email and password are required")
		return
	}

	result, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.InvalidCredentials(c)
			return
		}
		log.Printf("Login error: %v", err)
		apierrors.InternalError(c, "Login failed")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:          result.Token,
		OrganisationID: result.OrganisationID,
		UserName:       result.UserName,
	})
}
