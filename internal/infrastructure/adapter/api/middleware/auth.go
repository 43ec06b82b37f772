package middleware

import (
	"net/http"
	"strings"

	domainerr "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const (
	// ContextUserIDKey is the gin context key holding the authenticated user ID
	ContextUserIDKey = "auth_user_id"
	// ContextTokenKey is the gin context key holding the session token
	ContextTokenKey = "auth_token"
)

// RequireAuth resolves the session token from the cookie or the Authorization
// header and stores the owning user in the request context. Requests without
// a valid session are rejected with 401.
func RequireAuth(authService usecase.AuthUseCase, cookieName string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cookieName)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidSession),
				Message: "Authentication required",
			})
			return
		}

		user, err := authService.ResolveSession(c.Request.Context(), token)
		if err != nil {
			logger.Debug("Session resolution failed", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidSession),
				Message: "Invalid or expired session",
			})
			return
		}

		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user ID from the gin context
func CurrentUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint64)
	return userID, ok
}

// CurrentToken returns the session token from the gin context
func CurrentToken(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextTokenKey)
	if !exists {
		return "", false
	}
	token, ok := value.(string)
	return token, ok
}

func extractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}
