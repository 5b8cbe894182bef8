package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/vidverse/internal/apierror"
	"github.com/prperemyshlev/vidverse/internal/domain"
	"github.com/prperemyshlev/vidverse/internal/service"
)

const (
	userContextKey        = "user"
	accessTokenContextKey = "access_token"
	accessTokenCookie     = "accessToken"
	refreshTokenCookie    = "refreshToken"
)

// accessToken reads the token from the accessToken cookie, falling back to the Bearer header
func accessToken(c *gin.Context) string {
	if token, err := c.Cookie(accessTokenCookie); err == nil && token != "" {
		return token
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// AuthMiddleware resolves the access token to a user and attaches it to the context
func AuthMiddleware(sessions service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := accessToken(c)
		if token == "" {
			fail(c, apierror.Unauthorized("Unauthorized request"))
			return
		}

		user, err := sessions.Authenticate(c.Request.Context(), token)
		if err != nil {
			fail(c, err)
			return
		}

		c.Set(userContextKey, user)
		c.Set(accessTokenContextKey, token)
		c.Next()
	}
}

// currentUser returns the authenticated user, or nil outside AuthMiddleware
func currentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(userContextKey); ok {
		if user, ok := v.(*domain.User); ok {
			return user
		}
	}
	return nil
}

// currentUserID returns "" when no user is attached
func currentUserID(c *gin.Context) string {
	if user := currentUser(c); user != nil {
		return user.ID
	}
	return ""
}
