package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/vidverse/internal/service"
)

// CookieConfig controls the auth cookies set on login and refresh
type CookieConfig struct {
	Secure        bool
	AccessMaxAge  time.Duration
	RefreshMaxAge time.Duration
}

func (cc CookieConfig) set(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", cc.Secure, true)
}

func (cc CookieConfig) setTokens(c *gin.Context, tokens *service.TokenPair) {
	cc.set(c, accessTokenCookie, tokens.AccessToken, int(cc.AccessMaxAge.Seconds()))
	cc.set(c, refreshTokenCookie, tokens.RefreshToken, int(cc.RefreshMaxAge.Seconds()))
}

func (cc CookieConfig) clearTokens(c *gin.Context) {
	cc.set(c, accessTokenCookie, "", -1)
	cc.set(c, refreshTokenCookie, "", -1)
}
