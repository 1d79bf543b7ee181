package auth

import (
	"context"
	"net/http"

	apperrors "pg-management-backend/internal/errors"
	"pg-management-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const actorKey = "auth_actor"

type actorCtxKey struct{}

// AuthMiddleware provides bearer authentication middleware
type AuthMiddleware struct {
	guard *Guard
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(guard *Guard) *AuthMiddleware {
	return &AuthMiddleware{guard: guard}
}

// RequireAuth authenticates the request and stores the Actor in both the gin
// context and the request context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		actor, err := m.guard.Authenticate(ctx, c.GetHeader("Authorization"))
		if err != nil {
			if apperrors.IsAuthentication(err) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			logger.WithContext(ctx).WithError(err).Error("authentication lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		SetActor(c, actor)
		c.Next()
	}
}

// SetActor stores actor in the gin context and in the request context, tagging the request logger with it
func SetActor(c *gin.Context, actor Actor) {
	ctx := logger.WithActor(c.Request.Context(), actor.AccountID.String(), actor.TenantBusinessID.String())
	c.Request = c.Request.WithContext(WithActor(ctx, actor))
	c.Set(actorKey, actor)
}

// WithActor stores actor in ctx
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorCtxKey{}, actor)
}

// ActorFromContext returns the actor stored in ctx by RequireAuth
func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(Actor)
	return actor, ok
}

// ActorFrom is a helper function to extract the actor from the gin context
func ActorFrom(c *gin.Context) (Actor, bool) {
	value, exists := c.Get(actorKey)
	if !exists {
		return Actor{}, false
	}
	actor, ok := value.(Actor)
	return actor, ok
}
