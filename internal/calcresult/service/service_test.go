package service

import (
	"context"
	"errors"
	"testing"

	"github.com/amanahworks/folio/internal/calcresult/domain"
	"github.com/amanahworks/folio/internal/calcresult/repository"
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
	if err := dbConn.AutoMigrate(&domain.CalculatorResult{}); err != nil {
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

func TestSaveRejectsUnknownVariant(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Save(context.Background(), domain.SaveResultRequest{Variant: "compound"})
	if !errors.Is(err, domain.ErrInvalidVariant) {
		t.Fatalf("expected ErrInvalidVariant, got %v", err)
	}
}

func TestSaveAndListByVariant(t *testing.T) {
	svc := newTestService(t)

	userID := snowflake.ID(42)
	saved, err := svc.Save(context.Background(), domain.SaveResultRequest{
		Variant: "Lease",
		UserID:  &userID,
		Inputs:  map[string]any{"principal": 120000.0},
		Summary: map[string]any{"monthly_payment": 10327.97},
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if saved.Variant != domain.VariantLease {
		t.Fatalf("expected normalized variant, got %q", saved.Variant)
	}
	if _, err := svc.Save(context.Background(), domain.SaveResultRequest{
		Variant: domain.VariantMarkup,
		Inputs:  map[string]any{"principal": 5000.0},
	}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	resp, err := svc.List(context.Background(), domain.ListResultRequest{Variant: domain.VariantLease})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("expected 1 lease result, got %d", len(resp.Results))
	}
	if resp.Results[0].UserID == nil || *resp.Results[0].UserID != userID {
		t.Fatalf("expected result attributed to user %d", userID)
	}

	all, err := svc.List(context.Background(), domain.ListResultRequest{})
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(all.Results))
	}
}
