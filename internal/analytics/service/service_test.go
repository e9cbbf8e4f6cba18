package service

import (
	"context"
	"testing"

	"github.com/amanahworks/folio/internal/analytics/domain"
	"github.com/amanahworks/folio/internal/analytics/repository"
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
	if err := dbConn.AutoMigrate(&domain.PageViewDaily{}); err != nil {
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

func TestTrackIncrementsDailyCounter(t *testing.T) {
	svc := newTestService(t)

	for i := 0; i < 3; i++ {
		if err := svc.Track(context.Background(), domain.TrackRequest{Path: "/blog/post-1"}); err != nil {
			t.Fatalf("track failed: %v", err)
		}
	}
	if err := svc.Track(context.Background(), domain.TrackRequest{Path: "/about"}); err != nil {
		t.Fatalf("track failed: %v", err)
	}

	summary, err := svc.Summary(context.Background(), domain.SummaryRequest{})
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if len(summary.Paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(summary.Paths))
	}
	if summary.Paths[0].Path != "/blog/post-1" || summary.Paths[0].Views != 3 {
		t.Fatalf("unexpected top path %+v", summary.Paths[0])
	}
}

func TestTrackNormalizesPath(t *testing.T) {
	svc := newTestService(t)

	if err := svc.Track(context.Background(), domain.TrackRequest{Path: "/pricing/?utm_source=x"}); err != nil {
		t.Fatalf("track failed: %v", err)
	}
	if err := svc.Track(context.Background(), domain.TrackRequest{Path: "/pricing"}); err != nil {
		t.Fatalf("track failed: %v", err)
	}

	summary, err := svc.Summary(context.Background(), domain.SummaryRequest{})
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if len(summary.Paths) != 1 || summary.Paths[0].Views != 2 {
		t.Fatalf("expected merged counter, got %+v", summary.Paths)
	}
}

func TestTrackRejectsRelativePath(t *testing.T) {
	svc := newTestService(t)

	if err := svc.Track(context.Background(), domain.TrackRequest{Path: "blog"}); err != domain.ErrInvalidPath {
		t.Fatalf("expected ErrInvalidPath, got %v", err)
	}
}

func TestTrackSkipsCrawlers(t *testing.T) {
	svc := newTestService(t)

	if err := svc.Track(context.Background(), domain.TrackRequest{
		Path:      "/blog/post-1",
		UserAgent: "Mozilla/5.0 (compatible; Googlebot/2.1)",
	}); err != nil {
		t.Fatalf("track failed: %v", err)
	}

	summary, err := svc.Summary(context.Background(), domain.SummaryRequest{})
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if len(summary.Paths) != 0 {
		t.Fatalf("expected no counted views for a crawler, got %+v", summary.Paths)
	}
}
