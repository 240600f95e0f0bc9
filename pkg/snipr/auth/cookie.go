package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookiePolicy describes how the session cookie is written. Secure deployments
// get SameSite=None so the cookie survives cross-site frontend hosting; local
// development stays on Lax (None without Secure is rejected by browsers).
type CookiePolicy struct {
	Name   string
	Secure bool
}

func (p CookiePolicy) sameSite() http.SameSite {
	if p.Secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

// SetSession writes the session cookie for the given token.
func (p CookiePolicy) SetSession(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(p.sameSite())
	c.SetCookie(p.Name, token, maxAge, "/", "", p.Secure, true)
}

// ClearSession expires the session cookie.
func (p CookiePolicy) ClearSession(c *gin.Context) {
	c.SetSameSite(p.sameSite())
	c.SetCookie(p.Name, "", -1, "/", "", p.Secure, true)
}
