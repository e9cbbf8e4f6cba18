// Package session manages the auth cookies: the long lived session
// cookie and the short lived OAuth flow cookies.
package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/amanahworks/folio/internal/config"
	"github.com/gin-gonic/gin"
)

const (
	DefaultCookieName = "_sid"

	stateCookieName    = "_oauth_state"
	verifierCookieName = "_oauth_verifier"
	flowTTL            = 10 * time.Minute
)

// Manager manages auth session cookies.
type Manager struct {
	cookieName string
	secure     bool
}

func NewManager(cfg config.Config) *Manager {
	return &Manager{
		cookieName: DefaultCookieName,
		secure:     cfg.AuthCookieSecure,
	}
}

func (m *Manager) CookieName() string {
	return m.cookieName
}

func (m *Manager) ReadToken(c *gin.Context) (string, bool) {
	token, err := c.Cookie(m.cookieName)
	if err != nil {
		return "", false
	}
	if strings.TrimSpace(token) == "" {
		return "", false
	}
	return token, true
}

func (m *Manager) Set(c *gin.Context, value string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, value, maxAge, "/", "", m.secure, true)
}

func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
}

// SetFlow stores the OAuth state and PKCE verifier for the pending
// authorization redirect.
func (m *Manager) SetFlow(c *gin.Context, state, verifier string) {
	maxAge := int(flowTTL.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, maxAge, "/", "", m.secure, true)
	c.SetCookie(verifierCookieName, verifier, maxAge, "/", "", m.secure, true)
}

// ReadFlow returns the stored OAuth state and verifier, if both exist.
func (m *Manager) ReadFlow(c *gin.Context) (state, verifier string, ok bool) {
	state, err := c.Cookie(stateCookieName)
	if err != nil || strings.TrimSpace(state) == "" {
		return "", "", false
	}
	verifier, err = c.Cookie(verifierCookieName)
	if err != nil || strings.TrimSpace(verifier) == "" {
		return "", "", false
	}
	return state, verifier, true
}

// ClearFlow drops the OAuth flow cookies once the callback settles.
func (m *Manager) ClearFlow(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, "", -1, "/", "", m.secure, true)
	c.SetCookie(verifierCookieName, "", -1, "/", "", m.secure, true)
}
