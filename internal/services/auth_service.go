package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/hr-management-api/internal/constants"
	"github.com/yukikurage/hr-management-api/internal/models"
	"github.com/yukikurage/hr-management-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrMissingFields        = errors.New("all fields are required")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles registration and login.
type AuthService struct {
	userRepo  repository.UserRepository
	auditRepo repository.AuditLogRepository
	tokens    *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, auditRepo repository.AuditLogRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		tokens:    tokens,
	}
}

// RegisterInput represents the information required to register an organisation.
type RegisterInput struct {
	OrgName   string
	AdminName string
	Email     string
	Password  string
}

// RegisterResult is returned on successful registration.
type RegisterResult struct {
	Token          string
	OrganisationID uint64
}

// Register creates an organisation together with its admin user and the
// initial audit entry, all-or-nothing. A duplicate email aborts the whole
// transaction, leaving no orphan organisation behind.
func (s *AuthService) Register(input RegisterInput) (*RegisterResult, error) {
	orgName := strings.TrimSpace(input.OrgName)
	adminName := strings.TrimSpace(input.AdminName)
	email := strings.TrimSpace(input.Email)

	if orgName == "" || adminName == "" || email == "" || input.Password == "" {
		return nil, ErrMissingFields
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), constants.BcryptCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	org := &models.Organisation{
		Name: orgName,
	}
	user := &models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         adminName,
	}

	entry, err := NewLogEntry(0, nil, models.ActionOrganisationCreated, models.RegistrationMeta{
		OrgName:   orgName,
		AdminName: adminName,
	})
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.RegisterOrganisation(org, user, entry); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to register organisation: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, org.ID)
	if err != nil {
		return nil, err
	}

	return &RegisterResult{
		Token:          token,
		OrganisationID: org.ID,
	}, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is returned on successful login.
type LoginResult struct {
	Token          string
	OrganisationID uint64
	UserName       string
}

// Login verifies credentials, records the login, and issues a token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	entry, err := NewLogEntry(user.OrganisationID, &user.ID, models.ActionUserLogin, models.LoginMeta{
		Email: user.Email,
	})
	if err != nil {
		return nil, err
	}
	if err := s.auditRepo.Append(entry); err != nil {
		return nil, fmt.Errorf("failed to append audit log: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.OrganisationID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:          token,
		OrganisationID: user.OrganisationID,
		UserName:       user.Name,
	}, nil
}
