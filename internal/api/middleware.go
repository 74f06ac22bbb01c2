package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/blogfolio-api/internal/models"
	"github.com/blogfolio-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const authUserKey = "authUser"

// authRequired verifies the bearer token and stashes the authenticated user
// in the request context
func authRequired(secret string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header is required"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header must be a bearer token"})
			return
		}

		user, err := service.ParseAccessToken(secret, token)
		if err != nil {
			log.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("Token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(authUserKey, user)
		c.Next()
	}
}

// requireRole gates a route to one role. Must run after authRequired.
func requireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}

// currentUser returns the authenticated user, or nil on unauthenticated
// routes
func currentUser(c *gin.Context) *models.AuthUser {
	v, ok := c.Get(authUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*models.AuthUser)
	if !ok {
		return nil
	}
	return user
}

// respondError maps service errors onto HTTP responses. Validation failures
// carry their field details through to the client.
func respondError(c *gin.Context, err error) {
	var vf *service.ValidationFailure
	if errors.As(err, &vf) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": vf.Errors})
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable, try again later"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
