package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hr-management-api/internal/constants"
	apierrors "github.com/yukikurage/hr-management-api/internal/errors"
	"github.com/yukikurage/hr-management-api/internal/repository"
	"github.com/yukikurage/hr-management-api/internal/services"
)

// RequireAuth resolves the caller's user and organisation from the bearer
// token. The user is re-queried on every request rather than trusted from
// the token payload, so a user removed after issuance is denied even while
// the token is still within its validity window.
func RequireAuth(tokens *services.TokenService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apierrors.Unauthorized(c, "No token provided")
			c.Abort()
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			apierrors.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		user, err := userRepo.FindInOrganisation(claims.UserID, claims.OrganisationID)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyOrganisationID, user.OrganisationID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	return getUint64(c, constants.ContextKeyUserID)
}

// GetOrganisationID retrieves the caller's organisation ID from context
func GetOrganisationID(c *gin.Context) (uint64, bool) {
	return getUint64(c, constants.ContextKeyOrganisationID)
}

func getUint64(c *gin.Context, key string) (uint64, bool) {
	value, exists := c.Get(key)
	if !exists {
		return 0, false
	}

	switch v := value.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
