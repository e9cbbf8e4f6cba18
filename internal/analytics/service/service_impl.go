package service

import (
	"context"
	"strings"
	"time"

	"github.com/amanahworks/folio/internal/analytics/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultSummaryDays  = 30
	defaultSummaryLimit = 20
	maxPathLength       = 512
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("analytics.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Track(ctx context.Context, req domain.TrackRequest) error {
	path := normalizePath(req.Path)
	if path == "" {
		return domain.ErrInvalidPath
	}
	// Crawlers are accepted but not counted.
	if isBotUserAgent(req.UserAgent) {
		return nil
	}

	now := time.Now().UTC()
	row := &domain.PageViewDaily{
		ID:        s.genID.Generate(),
		Day:       now.Format(domain.DayFormat),
		Path:      path,
		Views:     1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.IncrementView(ctx, s.db, row); err != nil {
		return err
	}

	s.log.Debug("page view tracked",
		zap.String("path", path),
		zap.String("referrer", strings.TrimSpace(req.Referrer)))
	return nil
}

func (s *Service) Summary(ctx context.Context, req domain.SummaryRequest) (domain.SummaryResponse, error) {
	now := time.Now().UTC()
	to := now
	if req.To != nil {
		to = req.To.UTC()
	}
	from := to.AddDate(0, 0, -defaultSummaryDays)
	if req.From != nil {
		from = req.From.UTC()
	}
	if from.After(to) {
		return domain.SummaryResponse{}, domain.ErrInvalidRange
	}

	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultSummaryLimit
	}

	fromDay := from.Format(domain.DayFormat)
	toDay := to.Format(domain.DayFormat)
	totals, err := s.repo.TopPaths(ctx, s.db, fromDay, toDay, limit)
	if err != nil {
		return domain.SummaryResponse{}, err
	}

	return domain.SummaryResponse{
		From:  fromDay,
		To:    toDay,
		Paths: totals,
	}, nil
}

func isBotUserAgent(userAgent string) bool {
	ua := strings.ToLower(userAgent)
	for _, marker := range []string{"bot", "crawler", "spider"} {
		if strings.Contains(ua, marker) {
			return true
		}
	}
	return false
}

func normalizePath(raw string) string {
	path := strings.TrimSpace(raw)
	if path == "" || !strings.HasPrefix(path, "/") {
		return ""
	}
	if len(path) > maxPathLength {
		path = path[:maxPathLength]
	}
	// Drop query strings so counters key on the route alone.
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
