package server

import (
	"crypto/hmac"
	"net/http"
	"net/url"
	"strings"

	authdomain "github.com/amanahworks/folio/internal/auth/domain"
	authoauth "github.com/amanahworks/folio/internal/auth/oauth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const oauthErrorRedirect = "/login?error=oauth_login"

// OAuthLogin serves both legs of the OAuth flow on one route. Without a
// code it starts the redirect; with a code it completes the callback.
func (s *Server) OAuthLogin(c *gin.Context) {
	provider := strings.ToLower(strings.TrimSpace(c.Param("name")))
	if provider == "" {
		AbortWithError(c, ErrNotFound)
		return
	}

	if strings.TrimSpace(c.Query("error")) != "" {
		s.log.Warn("oauth provider returned error",
			zap.String("provider", provider),
			zap.String("error", c.Query("error")))
		s.sessions.ClearFlow(c)
		c.Redirect(http.StatusFound, oauthErrorRedirect)
		return
	}

	code := strings.TrimSpace(c.Query("code"))
	if code == "" {
		if err := s.startOAuthLogin(c, provider); err != nil {
			s.failOAuth(c, provider, err)
		}
		return
	}

	if err := s.completeOAuthLogin(c, provider, code); err != nil {
		s.failOAuth(c, provider, err)
	}
}

func (s *Server) startOAuthLogin(c *gin.Context, provider string) error {
	result, err := s.oauthsvc.RedirectURL(c.Request.Context(), provider, authoauth.RedirectRequest{
		RedirectURI: s.oauthRedirectURI(c, provider),
	})
	if err != nil {
		return err
	}

	s.sessions.SetFlow(c, result.State, result.CodeVerifier)
	c.Redirect(http.StatusFound, result.URL)
	return nil
}

func (s *Server) completeOAuthLogin(c *gin.Context, provider string, code string) error {
	state := strings.TrimSpace(c.Query("state"))
	storedState, verifier, ok := s.sessions.ReadFlow(c)
	s.sessions.ClearFlow(c)
	if !ok || state == "" || !hmac.Equal([]byte(state), []byte(storedState)) {
		return ErrUnauthorized
	}

	result, err := s.oauthsvc.Login(c.Request.Context(), provider, authoauth.LoginRequest{
		Code:         code,
		RedirectURI:  s.oauthRedirectURI(c, provider),
		CodeVerifier: verifier,
	})
	if err != nil {
		return err
	}

	loginResult, err := s.authsvc.LoginOAuth(c.Request.Context(), authdomain.OAuthLoginRequest{
		Provider:    result.ProviderName,
		ExternalID:  result.Identity.ExternalID,
		Email:       result.Identity.Email,
		DisplayName: result.Identity.DisplayName,
		Picture:     result.Identity.Picture,
		UserAgent:   c.Request.UserAgent(),
		IPAddress:   c.ClientIP(),
	})
	if err != nil {
		return err
	}

	s.sessions.Set(c, loginResult.RawToken, loginResult.ExpiresAt)
	c.Redirect(http.StatusFound, "/")
	return nil
}

func (s *Server) failOAuth(c *gin.Context, provider string, err error) {
	s.log.Warn("oauth login failed", zap.String("provider", provider), zap.Error(err))
	s.sessions.ClearFlow(c)
	c.Redirect(http.StatusFound, oauthErrorRedirect)
}

// oauthRedirectURI rebuilds the callback URL the provider must return to.
// Scheme honors X-Forwarded-Proto so the flow works behind a proxy.
func (s *Server) oauthRedirectURI(c *gin.Context, provider string) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if forwarded := strings.TrimSpace(c.GetHeader("X-Forwarded-Proto")); forwarded != "" {
		scheme = forwarded
	}

	return (&url.URL{
		Scheme: scheme,
		Host:   c.Request.Host,
		Path:   "/auth/login/" + url.PathEscape(provider),
	}).String()
}
