package helpers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie    = "access_token"
	CSRFNonceCookie  = "csrf_nonce"
	TargetPathCookie = "_target_path"
)

type Manager struct {
	Domain string
	Secure bool
}

func NewCookie(domain string, secure bool) *Manager {
	return &Manager{Domain: domain, Secure: secure}
}

func (m *Manager) SetSession(c *gin.Context, token string, exp time.Time) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, maxAgeFrom(exp), "/", m.Domain, m.Secure, true)
}

func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", m.Domain, m.Secure, true)
	c.SetCookie(TargetPathCookie, "", -1, "/", m.Domain, m.Secure, true)
}

// SetCSRFNonce stores the per-browser nonce CSRF tokens are bound to.
func (m *Manager) SetCSRFNonce(c *gin.Context, nonce string, exp time.Time) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CSRFNonceCookie, nonce, maxAgeFrom(exp), "/", m.Domain, m.Secure, true)
}

// SetTargetPath remembers the page an anonymous visitor was bounced from.
func (m *Manager) SetTargetPath(c *gin.Context, path string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(TargetPathCookie, path, int((10 * time.Minute).Seconds()), "/", m.Domain, m.Secure, true)
}

// PopTargetPath returns the remembered local path, if any, and forgets it.
func (m *Manager) PopTargetPath(c *gin.Context) (string, bool) {
	path, err := c.Cookie(TargetPathCookie)
	if err != nil || path == "" {
		return "", false
	}
	c.SetCookie(TargetPathCookie, "", -1, "/", m.Domain, m.Secure, true)
	if !IsLocalPath(path) {
		return "", false
	}
	return path, true
}

// IsLocalPath rejects absolute and protocol-relative URLs.
func IsLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "/\\")
}

func maxAgeFrom(exp time.Time) int {
	sec := int(time.Until(exp).Seconds())
	if sec < 0 {
		return 0
	}
	return sec
}
