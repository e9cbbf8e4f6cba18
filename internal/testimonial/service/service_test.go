package service

import (
	"context"
	"errors"
	"testing"

	"github.com/amanahworks/folio/internal/testimonial/domain"
	"github.com/amanahworks/folio/internal/testimonial/repository"
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
	if err := dbConn.AutoMigrate(&domain.Testimonial{}); err != nil {
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

func TestCreateDefaultsVisible(t *testing.T) {
	svc := newTestService(t)

	testimonial, err := svc.Create(context.Background(), domain.CreateTestimonialRequest{
		Author: "Client A",
		Quote:  "Great work.",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !testimonial.Visible {
		t.Fatalf("expected new testimonial to be visible by default")
	}
}

func TestCreateHiddenStaysHidden(t *testing.T) {
	svc := newTestService(t)

	hidden := false
	created, err := svc.Create(context.Background(), domain.CreateTestimonialRequest{
		Author: "Client B", Quote: "keep this off the site for now", Visible: &hidden,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Visible {
		t.Fatalf("expected testimonial created hidden to stay hidden")
	}

	// The persisted row must be hidden too, not just the returned value.
	visible, err := svc.List(context.Background(), true)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, item := range visible {
		if item.ID == created.ID {
			t.Fatalf("hidden testimonial appeared in the public list")
		}
	}

	all, err := svc.List(context.Background(), false)
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 1 || all[0].Visible {
		t.Fatalf("expected one hidden row, got %+v", all)
	}
}

func TestListVisibleOnlyOrdersByDisplayOrder(t *testing.T) {
	svc := newTestService(t)

	hidden := false
	if _, err := svc.Create(context.Background(), domain.CreateTestimonialRequest{
		Author: "Hidden", Quote: "not shown", Visible: &hidden,
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), domain.CreateTestimonialRequest{
		Author: "Second", Quote: "q", DisplayOrder: 2,
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), domain.CreateTestimonialRequest{
		Author: "First", Quote: "q", DisplayOrder: 1,
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	visible, err := svc.List(context.Background(), true)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(visible) != 2 {
		t.Fatalf("expected 2 visible testimonials, got %d", len(visible))
	}
	if visible[0].Author != "First" || visible[1].Author != "Second" {
		t.Fatalf("expected display order sorting, got %s then %s", visible[0].Author, visible[1].Author)
	}

	all, err := svc.List(context.Background(), false)
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 testimonials, got %d", len(all))
	}
}

func TestUpdateRejectsEmptyQuote(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(context.Background(), domain.CreateTestimonialRequest{
		Author: "Client", Quote: "original",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	empty := "   "
	_, err = svc.Update(context.Background(), created.ID.String(), domain.UpdateTestimonialRequest{Quote: &empty})
	if !errors.Is(err, domain.ErrInvalidQuote) {
		t.Fatalf("expected ErrInvalidQuote, got %v", err)
	}

	// Untouched fields survive a partial update.
	role := "CTO"
	updated, err := svc.Update(context.Background(), created.ID.String(), domain.UpdateTestimonialRequest{Role: &role})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Quote != "original" || updated.Role != "CTO" {
		t.Fatalf("unexpected update result: quote=%q role=%q", updated.Quote, updated.Role)
	}
}

func TestDeleteMissingTestimonial(t *testing.T) {
	svc := newTestService(t)

	if err := svc.Delete(context.Background(), "987654321"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
