package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/amanahworks/folio/internal/lead/domain"
	"github.com/amanahworks/folio/pkg/db"
	"github.com/amanahworks/folio/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
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
		log:   p.Log.Named("lead.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Capture(ctx context.Context, req domain.CaptureLeadRequest) (domain.Lead, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil {
		return domain.Lead{}, domain.ErrInvalidEmail
	}
	email := strings.ToLower(addr.Address)

	now := time.Now().UTC()
	if existing, err := s.repo.FindByEmail(ctx, s.db, email); err == nil {
		return s.touch(ctx, existing, req, now)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Lead{}, err
	}

	lead := domain.Lead{
		ID:         s.genID.Generate(),
		Email:      email,
		Name:       strings.TrimSpace(req.Name),
		Note:       strings.TrimSpace(req.Note),
		SourcePage: strings.TrimSpace(req.SourcePage),
		Status:     domain.StatusNew,
		TouchCount: 1,
		LastSeenAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, s.db, &lead); err != nil {
		// Two tabs can race the existence check; fold the loser into a touch.
		if db.IsDuplicateKeyErr(err) {
			existing, findErr := s.repo.FindByEmail(ctx, s.db, email)
			if findErr != nil {
				return domain.Lead{}, findErr
			}
			return s.touch(ctx, existing, req, now)
		}
		return domain.Lead{}, err
	}

	s.log.Info("lead captured",
		zap.String("lead_id", lead.ID.String()),
		zap.String("source_page", lead.SourcePage))
	return lead, nil
}

func (s *Service) touch(ctx context.Context, existing *domain.Lead, req domain.CaptureLeadRequest, now time.Time) (domain.Lead, error) {
	fields := map[string]any{
		"touch_count":  existing.TouchCount + 1,
		"last_seen_at": now,
		"updated_at":   now,
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		fields["name"] = name
	}
	if note := strings.TrimSpace(req.Note); note != "" {
		fields["note"] = note
	}
	if source := strings.TrimSpace(req.SourcePage); source != "" {
		fields["source_page"] = source
	}

	if err := s.repo.Update(ctx, s.db, existing.ID, fields); err != nil {
		return domain.Lead{}, err
	}

	lead, err := s.repo.FindByID(ctx, s.db, existing.ID)
	if err != nil {
		return domain.Lead{}, err
	}
	return *lead, nil
}

func (s *Service) List(ctx context.Context, req domain.ListLeadRequest) (domain.ListLeadResponse, error) {
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status != "" && !validStatus(status) {
		return domain.ListLeadResponse{}, domain.ErrInvalidStatus
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	items, err := s.repo.List(ctx, s.db, domain.ListLeadFilter{Status: status}, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListLeadResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, int(pageSize), func(lead *domain.Lead) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        lead.ID.String(),
			CreatedAt: lead.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	leads := make([]domain.Lead, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		leads = append(leads, *item)
	}

	resp := domain.ListLeadResponse{Leads: leads}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}
	return resp, nil
}

func (s *Service) Transition(ctx context.Context, rawID string, status string) (domain.Lead, error) {
	id, err := s.parseID(rawID)
	if err != nil {
		return domain.Lead{}, err
	}

	status = strings.ToLower(strings.TrimSpace(status))
	if !validStatus(status) {
		return domain.Lead{}, domain.ErrInvalidStatus
	}

	lead, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Lead{}, err
	}

	if !domain.CanTransition(lead.Status, status) {
		return domain.Lead{}, domain.ErrInvalidTransition
	}

	fields := map[string]any{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	if err := s.repo.Update(ctx, s.db, id, fields); err != nil {
		return domain.Lead{}, err
	}

	lead.Status = status
	return *lead, nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

func validStatus(status string) bool {
	switch status {
	case domain.StatusNew, domain.StatusContacted, domain.StatusQualified, domain.StatusClosed:
		return true
	default:
		return false
	}
}
