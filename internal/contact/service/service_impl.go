package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/amanahworks/folio/internal/contact/domain"
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
		log:   p.Log.Named("contact.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateContactRequest) (domain.ContactMessage, error) {
	kind := strings.ToLower(strings.TrimSpace(req.Kind))
	if kind == "" {
		kind = domain.KindMessage
	}
	if kind != domain.KindMessage && kind != domain.KindCareer {
		return domain.ContactMessage{}, domain.ErrInvalidKind
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.ContactMessage{}, domain.ErrInvalidName
	}

	addr, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil {
		return domain.ContactMessage{}, domain.ErrInvalidEmail
	}

	body := strings.TrimSpace(req.Body)
	if body == "" {
		return domain.ContactMessage{}, domain.ErrInvalidBody
	}

	now := time.Now().UTC()
	message := domain.ContactMessage{
		ID:        s.genID.Generate(),
		Kind:      kind,
		Name:      name,
		Email:     strings.ToLower(addr.Address),
		Subject:   strings.TrimSpace(req.Subject),
		Body:      body,
		ResumeURL: strings.TrimSpace(req.ResumeURL),
		IPAddress: strings.TrimSpace(req.IPAddress),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, &message); err != nil {
		return domain.ContactMessage{}, err
	}

	s.log.Info("contact message received",
		zap.String("message_id", message.ID.String()),
		zap.String("kind", message.Kind))
	return message, nil
}

func (s *Service) List(ctx context.Context, req domain.ListContactRequest) (domain.ListContactResponse, error) {
	kind := strings.ToLower(strings.TrimSpace(req.Kind))
	if kind != "" && kind != domain.KindMessage && kind != domain.KindCareer {
		return domain.ListContactResponse{}, domain.ErrInvalidKind
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	items, err := s.repo.List(ctx, s.db, domain.ListContactFilter{
		Kind:       kind,
		UnreadOnly: req.UnreadOnly,
	}, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListContactResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, int(pageSize), func(message *domain.ContactMessage) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        message.ID.String(),
			CreatedAt: message.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	messages := make([]domain.ContactMessage, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		messages = append(messages, *item)
	}

	resp := domain.ListContactResponse{Messages: messages}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}
	return resp, nil
}

func (s *Service) MarkRead(ctx context.Context, rawID string) (domain.ContactMessage, error) {
	id, err := s.parseID(rawID)
	if err != nil {
		return domain.ContactMessage{}, err
	}

	fields := map[string]any{
		"read":       true,
		"updated_at": time.Now().UTC(),
	}
	if err := s.repo.Update(ctx, s.db, id, fields); err != nil {
		return domain.ContactMessage{}, err
	}

	message, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.ContactMessage{}, err
	}
	return *message, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := s.parseID(rawID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
