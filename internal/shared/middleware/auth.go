package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"photoblog-backend/internal/core/authz"
	"photoblog-backend/internal/shared/response"
	"photoblog-backend/internal/shared/utils"
	"photoblog-backend/pkg/jwt"
)

const actorKey = "actor"

// Auth resolves the current actor from the Authorization header and aborts
// with 401 when the token is missing or invalid.
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := resolveActor(c, manager)
		if !ok {
			response.Unauthorized(c, "missing or invalid access token")
			c.Abort()
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// OptionalAuth resolves the actor when a valid token is present and proceeds
// anonymously otherwise. Used on read endpoints where admins see more.
func OptionalAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor, ok := resolveActor(c, manager); ok {
			c.Set(actorKey, actor)
		}
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the resolved actor holds ADMINISTRATOR
// or above. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFrom(c)
		if !actor.IsAdmin() {
			response.ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", "administrator role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ActorFrom returns the actor resolved by Auth/OptionalAuth, or nil for an
// anonymous request.
func ActorFrom(c *gin.Context) *authz.Actor {
	v, exists := c.Get(actorKey)
	if !exists {
		return nil
	}
	actor, ok := v.(*authz.Actor)
	if !ok {
		return nil
	}
	return actor
}

func resolveActor(c *gin.Context, manager *jwt.Manager) (*authz.Actor, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := manager.ValidateAccessToken(parts[1])
	if err != nil {
		return nil, false
	}

	userID := utils.ParseStringToUUID(claims.UserID)
	role := authz.Role(claims.Role)
	if userID == uuid.Nil || !role.IsValid() {
		return nil, false
	}

	return &authz.Actor{
		ID:       userID,
		Username: claims.Username,
		Role:     role,
	}, true
}
