package server

import (
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	authconfig "github.com/amanahworks/folio/internal/auth/config"
	authdomain "github.com/amanahworks/folio/internal/auth/domain"
	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserView struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Picture     string    `json:"picture,omitempty"`
	Provider    string    `json:"provider"`
	IsAdmin     bool      `json:"is_admin"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s *Server) userView(user *authdomain.User) UserView {
	return UserView{
		ID:          user.ID.String(),
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Picture:     user.Picture,
		Provider:    user.Provider,
		IsAdmin:     s.isAdmin(user),
		CreatedAt:   user.CreatedAt,
	}
}

func (s *Server) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	user, err := s.authsvc.Register(c.Request.Context(), authdomain.RegisterRequest{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, s.userView(user))
}

func (s *Server) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	result, err := s.authsvc.Login(c.Request.Context(), authdomain.LoginRequest{
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.sessions.Set(c, result.RawToken, result.ExpiresAt)
	c.JSON(http.StatusOK, s.userView(result.User))
}

// Logout revokes the session when one is present and always clears the
// cookie. Calling it without a session is not an error.
func (s *Server) Logout(c *gin.Context) {
	if rawToken, ok := s.sessions.ReadToken(c); ok {
		if err := s.authsvc.Logout(c.Request.Context(), rawToken); err != nil &&
			!errors.Is(err, authdomain.ErrSessionNotFound) &&
			!errors.Is(err, authdomain.ErrInvalidSession) {
			AbortWithError(c, err)
			return
		}
	}

	s.sessions.Clear(c)
	c.Status(http.StatusNoContent)
}

func (s *Server) Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, s.userView(user))
}

type AuthProviderInfo struct {
	Name      string `json:"name"`
	LoginPath string `json:"login_path"`
}

// AuthProviders lists the OAuth providers a login page can offer. Local
// login is reported separately since it has no redirect flow.
func (s *Server) AuthProviders(c *gin.Context) {
	cfgs := authconfig.ParseAuthProvidersFromEnv()

	localEnabled := false
	providers := make([]AuthProviderInfo, 0, len(cfgs))
	for _, cfg := range cfgs {
		name := strings.ToLower(strings.TrimSpace(cfg.Type))
		if name == "local" {
			localEnabled = cfg.Enabled
			continue
		}
		if !cfg.Enabled || strings.TrimSpace(cfg.ClientID) == "" {
			continue
		}
		providers = append(providers, AuthProviderInfo{
			Name:      name,
			LoginPath: "/auth/login/" + name,
		})
	}
	sort.Slice(providers, func(i, j int) bool {
		return providers[i].Name < providers[j].Name
	})

	c.JSON(http.StatusOK, gin.H{
		"local_login_enabled": localEnabled,
		"providers":           providers,
	})
}
