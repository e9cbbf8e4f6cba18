package service

import (
	"context"
	"testing"

	authdomain "github.com/amanahworks/folio/internal/auth/domain"
	"github.com/amanahworks/folio/internal/auth/repository"
	"github.com/amanahworks/folio/pkg/db"
	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) authdomain.Service {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(&authdomain.User{}, &authdomain.Session{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	repo, sessionRepo := repository.New(dbConn)
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	return New(zap.NewNop(), repo, sessionRepo, node)
}

func TestRegisterLocalExternalIDUUID(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Register(context.Background(), authdomain.RegisterRequest{
		Email:    "bob@example.com",
		Password: "strong-password",
	})
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	if user.Provider != "local" {
		t.Fatalf("expected provider local, got %s", user.Provider)
	}
	if _, err := uuid.Parse(user.ExternalID); err != nil {
		t.Fatalf("expected external id UUID, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Register(context.Background(), authdomain.RegisterRequest{
		Email:    "alice@example.com",
		Password: "strong-password",
	}); err != nil {
		t.Fatalf("failed to register user: %v", err)
	}

	_, err := svc.Register(context.Background(), authdomain.RegisterRequest{
		Email:    "Alice@Example.com",
		Password: "another-password",
	})
	if err != authdomain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestRegisterShortPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register(context.Background(), authdomain.RegisterRequest{
		Email:    "short@example.com",
		Password: "abc",
	})
	if err != authdomain.ErrWeakPassword {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Register(context.Background(), authdomain.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct-password",
	}); err != nil {
		t.Fatalf("failed to register user: %v", err)
	}

	cases := []authdomain.LoginRequest{
		{Email: "alice@example.com", Password: "wrong-password"},
		{Email: "nobody@example.com", Password: "whatever-pass"},
		{Email: "not-an-email", Password: "whatever-pass"},
	}
	for _, req := range cases {
		if _, err := svc.Login(context.Background(), req); err != authdomain.ErrInvalidCredentials {
			t.Fatalf("login %q: expected ErrInvalidCredentials, got %v", req.Email, err)
		}
	}
}

func TestLoginNormalizesEmail(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Register(context.Background(), authdomain.RegisterRequest{
		Email:    "Alice@Example.com",
		Password: "correct-password",
	}); err != nil {
		t.Fatalf("failed to register user: %v", err)
	}

	result, err := svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "  alice@example.com ",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.RawToken == "" {
		t.Fatal("expected session token")
	}
	if result.User.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %s", result.User.Email)
	}
}

func TestAuthenticateAfterLogout(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Register(context.Background(), authdomain.RegisterRequest{
		Email:    "carol@example.com",
		Password: "correct-password",
	}); err != nil {
		t.Fatalf("failed to register user: %v", err)
	}

	result, err := svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "carol@example.com",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), result.RawToken); err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}

	if err := svc.Logout(context.Background(), result.RawToken); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), result.RawToken); err != authdomain.ErrSessionRevoked {
		t.Fatalf("expected ErrSessionRevoked, got %v", err)
	}
}

func TestLoginOAuthUpsert(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.LoginOAuth(context.Background(), authdomain.OAuthLoginRequest{
		Provider:    "google",
		ExternalID:  "sub-123",
		Email:       "dave@example.com",
		DisplayName: "Dave",
	})
	if err != nil {
		t.Fatalf("first oauth login failed: %v", err)
	}

	second, err := svc.LoginOAuth(context.Background(), authdomain.OAuthLoginRequest{
		Provider:    "google",
		ExternalID:  "sub-123",
		Email:       "dave@newmail.com",
		DisplayName: "David",
		Picture:     "https://example.com/d.png",
	})
	if err != nil {
		t.Fatalf("second oauth login failed: %v", err)
	}

	if first.User.ID != second.User.ID {
		t.Fatalf("expected same user, got %s and %s", first.User.ID, second.User.ID)
	}
	if second.User.Email != "dave@newmail.com" {
		t.Fatalf("expected refreshed email, got %s", second.User.Email)
	}

	user, err := svc.UserByID(context.Background(), second.User.ID)
	if err != nil {
		t.Fatalf("user lookup failed: %v", err)
	}
	if user.DisplayName != "David" {
		t.Fatalf("expected refreshed display name, got %s", user.DisplayName)
	}
}

func TestLoginOAuthMissingEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.LoginOAuth(context.Background(), authdomain.OAuthLoginRequest{
		Provider:   "github",
		ExternalID: "sub-456",
	})
	if err != authdomain.ErrMissingEmail {
		t.Fatalf("expected ErrMissingEmail, got %v", err)
	}
}
