package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authdomain "github.com/amanahworks/folio/internal/auth/domain"
	"github.com/amanahworks/folio/internal/auth/session"
	"github.com/amanahworks/folio/internal/config"
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type fakeAuthService struct {
	user    *authdomain.User
	session *authdomain.Session

	loginErr        error
	authenticateErr error
	logoutCalls     int
}

func (f *fakeAuthService) Register(ctx context.Context, req authdomain.RegisterRequest) (*authdomain.User, error) {
	_ = ctx
	return &authdomain.User{ID: snowflake.ID(1), Email: req.Email, Provider: "local"}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, req authdomain.LoginRequest) (*authdomain.LoginResult, error) {
	_ = ctx
	_ = req
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &authdomain.LoginResult{
		User:      f.user,
		RawToken:  "raw-token",
		ExpiresAt: time.Now().Add(time.Hour),
		SessionID: snowflake.ID(2),
	}, nil
}

func (f *fakeAuthService) LoginOAuth(ctx context.Context, req authdomain.OAuthLoginRequest) (*authdomain.LoginResult, error) {
	_ = ctx
	_ = req
	return nil, authdomain.ErrInvalidCredentials
}

func (f *fakeAuthService) Logout(ctx context.Context, rawToken string) error {
	_ = ctx
	_ = rawToken
	f.logoutCalls++
	return nil
}

func (f *fakeAuthService) Authenticate(ctx context.Context, rawToken string) (*authdomain.Session, error) {
	_ = ctx
	_ = rawToken
	if f.authenticateErr != nil {
		return nil, f.authenticateErr
	}
	if f.session == nil {
		return nil, authdomain.ErrSessionNotFound
	}
	return f.session, nil
}

func (f *fakeAuthService) UserByID(ctx context.Context, id snowflake.ID) (*authdomain.User, error) {
	_ = ctx
	_ = id
	if f.user == nil {
		return nil, authdomain.ErrUserNotFound
	}
	return f.user, nil
}

func newTestServer(t *testing.T, cfg config.Config, authsvc authdomain.Service) (*Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(ErrorHandlingMiddleware())

	srv := &Server{
		cfg:      cfg,
		log:      zap.NewNop(),
		sessions: session.NewManager(cfg),
		authsvc:  authsvc,
	}
	registerRoutes(engine, srv)

	// Probe route for middleware tests so they do not depend on any
	// handler's service wiring.
	engine.GET("/admin/probe", srv.AuthRequired(), srv.AdminRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return srv, engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestLoginFailureResponsesIdentical(t *testing.T) {
	// A wrong password and an unknown email must be indistinguishable
	// from the outside.
	wrongPassword := &fakeAuthService{loginErr: authdomain.ErrInvalidCredentials}
	unknownEmail := &fakeAuthService{loginErr: authdomain.ErrInvalidCredentials}

	_, engineA := newTestServer(t, config.Config{}, wrongPassword)
	_, engineB := newTestServer(t, config.Config{}, unknownEmail)

	recA := doJSON(t, engineA, http.MethodPost, "/auth/login", `{"email":"known@example.com","password":"wrong"}`)
	recB := doJSON(t, engineB, http.MethodPost, "/auth/login", `{"email":"unknown@example.com","password":"whatever"}`)

	if recA.Code != http.StatusUnauthorized || recB.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", recA.Code, recB.Code)
	}
	if recA.Body.String() != recB.Body.String() {
		t.Fatalf("failure responses differ:\n%s\n%s", recA.Body.String(), recB.Body.String())
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	authsvc := &fakeAuthService{}
	_, engine := newTestServer(t, config.Config{}, authsvc)

	rec := doJSON(t, engine, http.MethodPost, "/auth/logout", `{}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if authsvc.logoutCalls != 0 {
		t.Fatalf("expected no logout calls without a cookie, got %d", authsvc.logoutCalls)
	}
}

func TestAuthRequiredRejectsRevokedSession(t *testing.T) {
	authsvc := &fakeAuthService{authenticateErr: authdomain.ErrSessionRevoked}
	_, engine := newTestServer(t, config.Config{}, authsvc)

	rec := doJSON(t, engine, http.MethodGet, "/auth/me", "",
		&http.Cookie{Name: "_sid", Value: "some-token"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthRequiredRejectsMissingCookie(t *testing.T) {
	_, engine := newTestServer(t, config.Config{}, &fakeAuthService{})

	rec := doJSON(t, engine, http.MethodGet, "/auth/me", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func adminRequest(t *testing.T, adminEmail, userEmail string) *httptest.ResponseRecorder {
	t.Helper()
	authsvc := &fakeAuthService{
		user: &authdomain.User{ID: snowflake.ID(7), Email: userEmail},
		session: &authdomain.Session{
			ID:        snowflake.ID(8),
			UserID:    snowflake.ID(7),
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}
	_, engine := newTestServer(t, config.Config{AdminEmail: adminEmail}, authsvc)
	return doJSON(t, engine, http.MethodGet, "/admin/probe", "",
		&http.Cookie{Name: "_sid", Value: "some-token"})
}

func TestAdminRequiredFailsClosedWhenUnset(t *testing.T) {
	// With no admin email configured, even a user whose stored email is
	// empty must be denied. An empty == empty comparison must not grant
	// admin access.
	rec := adminRequest(t, "", "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("admin_not_configured")) {
		t.Fatalf("expected admin_not_configured payload, got %s", rec.Body.String())
	}
}

func TestAdminRequiredMatchesCasedConfiguredEmail(t *testing.T) {
	// ADMIN_EMAIL set with mixed case must still admit the user whose
	// stored email is the lowercased form, end to end through config
	// loading.
	t.Setenv("ADMIN_EMAIL", "Admin@Example.COM")
	cfg := config.Load()

	authsvc := &fakeAuthService{
		user: &authdomain.User{ID: snowflake.ID(7), Email: "admin@example.com"},
		session: &authdomain.Session{
			ID:        snowflake.ID(8),
			UserID:    snowflake.ID(7),
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}
	_, engine := newTestServer(t, cfg, authsvc)
	rec := doJSON(t, engine, http.MethodGet, "/admin/probe", "",
		&http.Cookie{Name: "_sid", Value: "some-token"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestMissingEmailMapsToUnauthorized(t *testing.T) {
	status, payload := mapError(authdomain.ErrMissingEmail)
	if status != http.StatusUnauthorized || payload.Type != "unauthorized" {
		t.Fatalf("expected 401 unauthorized, got %d %q", status, payload.Type)
	}
}

func TestAdminRequiredExactMatchOnly(t *testing.T) {
	cases := []struct {
		name      string
		userEmail string
		want      int
	}{
		{"exact", "admin@example.com", http.StatusOK},
		{"prefix", "admin@example.com.evil", http.StatusForbidden},
		{"substring", "sub.admin@example.com", http.StatusForbidden},
		{"different", "visitor@example.com", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := adminRequest(t, "admin@example.com", tc.userEmail)
			if rec.Code != tc.want {
				t.Fatalf("expected %d for %s, got %d", tc.want, tc.userEmail, rec.Code)
			}
		})
	}
}
