package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/handler"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	authsvc "github.com/vladimirahmad90-oss/AccountManagement/internal/service/auth"
)

const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextRole     = "role"
	ContextName     = "name"
)

type AuthMiddleware struct {
	authService *authsvc.Service
}

func NewAuthMiddleware(authService *authsvc.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Authenticate verifies the bearer token and sets the user identity in context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("missing authorization header"))
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("invalid authorization format"))
			c.Abort()
			return
		}

		claims, err := m.authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("invalid token"))
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID.String())
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextName, claims.Name)
		c.Next()
	}
}

// RequireAdmin blocks users whose token does not carry the admin role.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != model.RoleAdmin {
			c.JSON(http.StatusForbidden, handler.NewErrorResponse("admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// OperatorName returns the display name of the authenticated user, falling
// back to the username when the token has no name claim.
func OperatorName(c *gin.Context) string {
	if name := c.GetString(ContextName); name != "" {
		return name
	}
	return c.GetString(ContextUsername)
}
