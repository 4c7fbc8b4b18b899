package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"notes-service/internal/usecase/auth"
	pkgerrors "notes-service/pkg/errors"
	"notes-service/pkg/logger"
	"notes-service/pkg/token"
)

// identityKey is the gin context key holding the authenticated user id.
const identityKey = "auth_user_id"

// Identity returns the authenticated user id attached by RequireAuth.
// The second return value is false on unprotected routes.
func Identity(c *gin.Context) (int64, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// RequireAuth is the access gate: it extracts the bearer token from the
// Authorization header, verifies signature and expiry, resolves the encoded
// id to a stored user, and attaches the identity to the request context.
// Every failure mode is the same 401 to the caller. The user lookup goes
// through the cached repository, so the per-request cost is at most one
// database read.
func RequireAuth(tokens *token.Manager, users auth.Repository, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthenticated(c, log, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthenticated(c, log, "authorization header format must be Bearer {token}")
			return
		}

		userID, err := tokens.Verify(parts[1])
		if err != nil {
			log.Debug("token rejected", zap.Error(err))
			abortUnauthenticated(c, log, "invalid or expired token")
			return
		}

		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			log.Error("failed to resolve token identity", zap.Int64("user_id", userID), zap.Error(err))
			abortUnauthenticated(c, log, "invalid or expired token")
			return
		}
		if u == nil {
			// Token outlived its account
			abortUnauthenticated(c, log, "invalid or expired token")
			return
		}

		c.Set(identityKey, u.ID)

		// Downstream logs carry the caller's id
		ctx := context.WithValue(c.Request.Context(), logger.UserIDKey, u.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context, log *zap.Logger, message string) {
	err := pkgerrors.NewUnauthenticatedError(message)
	log.Warn("request not authenticated",
		zap.String("path", c.Request.URL.Path),
		zap.String("reason", message),
	)
	c.AbortWithStatusJSON(err.HTTPStatus(), gin.H{
		"error":   err.Code(),
		"message": err.Error(),
	})
}
