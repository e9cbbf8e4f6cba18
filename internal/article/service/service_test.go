package service

import (
	"context"
	"testing"

	"github.com/amanahworks/folio/internal/article/domain"
	"github.com/amanahworks/folio/internal/article/repository"
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
	if err := dbConn.AutoMigrate(&domain.Article{}); err != nil {
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

func TestCreateGeneratesSlug(t *testing.T) {
	svc := newTestService(t)

	article, err := svc.Create(context.Background(), domain.CreateArticleRequest{
		Title: "Halal Financing, Explained",
		Body:  "body text",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if article.Slug != "halal-financing-explained" {
		t.Fatalf("unexpected slug %q", article.Slug)
	}
}

func TestCreateDuplicateSlug(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Create(context.Background(), domain.CreateArticleRequest{
		Title: "Same Title",
		Body:  "body",
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err := svc.Create(context.Background(), domain.CreateArticleRequest{
		Title: "Same Title",
		Body:  "other body",
	})
	if err != domain.ErrSlugTaken {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}
}

func TestGetBySlugHidesDrafts(t *testing.T) {
	svc := newTestService(t)

	article, err := svc.Create(context.Background(), domain.CreateArticleRequest{
		Title: "Draft Post",
		Body:  "body",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.GetBySlug(context.Background(), article.Slug, false); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound for draft, got %v", err)
	}
	if _, err := svc.GetBySlug(context.Background(), article.Slug, true); err != nil {
		t.Fatalf("admin read failed: %v", err)
	}

	if _, err := svc.SetPublished(context.Background(), article.ID.String(), true); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	got, err := svc.GetBySlug(context.Background(), article.Slug, false)
	if err != nil {
		t.Fatalf("public read failed: %v", err)
	}
	if got.PublishedAt == nil {
		t.Fatal("expected published_at to be set")
	}
}

func TestListPublishedOnlyAndPagination(t *testing.T) {
	svc := newTestService(t)

	for i := 0; i < 5; i++ {
		published := i%2 == 0
		if _, err := svc.Create(context.Background(), domain.CreateArticleRequest{
			Title:     "Post " + string(rune('A'+i)),
			Body:      "body",
			Published: published,
		}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	resp, err := svc.List(context.Background(), domain.ListArticleRequest{PublishedOnly: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(resp.Articles) != 3 {
		t.Fatalf("expected 3 published articles, got %d", len(resp.Articles))
	}

	page, err := svc.List(context.Background(), domain.ListArticleRequest{PageSize: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(page.Articles) != 2 || !page.HasMore {
		t.Fatalf("expected first page of 2 with more, got %d has_more=%v", len(page.Articles), page.HasMore)
	}
}

func TestUpdatePartialFields(t *testing.T) {
	svc := newTestService(t)

	article, err := svc.Create(context.Background(), domain.CreateArticleRequest{
		Title:   "Original",
		Excerpt: "keep me",
		Body:    "body",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	title := "Renamed"
	updated, err := svc.Update(context.Background(), article.ID.String(), domain.UpdateArticleRequest{
		Title: &title,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}
	if updated.Excerpt != "keep me" {
		t.Fatalf("expected excerpt untouched, got %q", updated.Excerpt)
	}
}
