package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const TokenCookieName = "token"

// CookiePolicy decides the attributes of the auth cookie. Production clients
// live on another site, so the cookie must be Secure and SameSite=None there.
type CookiePolicy struct {
	Secure   bool
	SameSite http.SameSite
}

func NewCookiePolicy(production bool) CookiePolicy {
	if production {
		return CookiePolicy{Secure: true, SameSite: http.SameSiteNoneMode}
	}
	return CookiePolicy{Secure: false, SameSite: http.SameSiteStrictMode}
}

func (p CookiePolicy) SetToken(c *gin.Context, token string, maxAge time.Duration) {
	c.SetSameSite(p.SameSite)
	c.SetCookie(TokenCookieName, token, int(maxAge.Seconds()), "/", "", p.Secure, true)
}

// ClearToken only expires the cookie on the client. The token itself stays
// valid until its exp claim.
func (p CookiePolicy) ClearToken(c *gin.Context) {
	c.SetSameSite(p.SameSite)
	c.SetCookie(TokenCookieName, "", -1, "/", "", p.Secure, true)
}
