package service

import (
	"context"
	"testing"

	"github.com/amanahworks/folio/internal/lead/domain"
	"github.com/amanahworks/folio/internal/lead/repository"
	"github.com/amanahworks/folio/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(&domain.Lead{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	return New(Params{
		DB:    dbConn,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func TestCaptureDuplicateEmailTouches(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Capture(context.Background(), domain.CaptureLeadRequest{
		Email:      "prospect@example.com",
		SourcePage: "/pricing",
	})
	if err != nil {
		t.Fatalf("capture failed: %v", err)
	}
	if first.TouchCount != 1 || first.Status != domain.StatusNew {
		t.Fatalf("unexpected initial lead: touches=%d status=%s", first.TouchCount, first.Status)
	}

	second, err := svc.Capture(context.Background(), domain.CaptureLeadRequest{
		Email: "Prospect@Example.com",
		Name:  "Pat Prospect",
	})
	if err != nil {
		t.Fatalf("second capture failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected upsert onto same lead, got %s and %s", first.ID, second.ID)
	}
	if second.TouchCount != 2 {
		t.Fatalf("expected touch count 2, got %d", second.TouchCount)
	}
	if second.Name != "Pat Prospect" {
		t.Fatalf("expected refreshed name, got %q", second.Name)
	}
	if second.SourcePage != "/pricing" {
		t.Fatalf("expected original source page kept, got %q", second.SourcePage)
	}
}

func TestCaptureRejectsBadEmail(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Capture(context.Background(), domain.CaptureLeadRequest{
		Email: "not-an-email",
	}); err != domain.ErrInvalidEmail {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestTransitionGraph(t *testing.T) {
	svc := newTestService(t)

	lead, err := svc.Capture(context.Background(), domain.CaptureLeadRequest{
		Email: "prospect@example.com",
	})
	if err != nil {
		t.Fatalf("capture failed: %v", err)
	}

	// new -> qualified skips contacted and must be refused.
	if _, err := svc.Transition(context.Background(), lead.ID.String(), domain.StatusQualified); err != domain.ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	for _, status := range []string{domain.StatusContacted, domain.StatusQualified, domain.StatusClosed} {
		updated, err := svc.Transition(context.Background(), lead.ID.String(), status)
		if err != nil {
			t.Fatalf("transition to %s failed: %v", status, err)
		}
		if updated.Status != status {
			t.Fatalf("expected status %s, got %s", status, updated.Status)
		}
	}

	// closed is terminal.
	if _, err := svc.Transition(context.Background(), lead.ID.String(), domain.StatusContacted); err != domain.ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition from closed, got %v", err)
	}
}

func TestTransitionUnknownStatus(t *testing.T) {
	svc := newTestService(t)

	lead, err := svc.Capture(context.Background(), domain.CaptureLeadRequest{
		Email: "prospect@example.com",
	})
	if err != nil {
		t.Fatalf("capture failed: %v", err)
	}

	if _, err := svc.Transition(context.Background(), lead.ID.String(), "archived"); err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
