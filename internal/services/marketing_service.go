package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/repositories"
	"voyago/pkg/mq"
	"voyago/pkg/utils"
)

type MarketingService interface {
	SubmitContact(ctx context.Context, req request_models.ContactRequest) (*db_models.ContactMessage, error)
	ListTestimonials(ctx context.Context) ([]db_models.Testimonial, error)
}

type marketingService struct {
	repo      repositories.MarketingRepository
	publisher mq.EventPublisher
	clock     utils.TimeProvider
	log       *zap.Logger
}

func NewMarketingService(repo repositories.MarketingRepository, publisher mq.EventPublisher, clock utils.TimeProvider, log *zap.Logger) MarketingService {
	return &marketingService{repo: repo, publisher: publisher, clock: clock, log: log}
}

func (s *marketingService) SubmitContact(ctx context.Context, req request_models.ContactRequest) (*db_models.ContactMessage, error) {
	msg := &db_models.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}
	if len(msg.Message) < 10 {
		return nil, utils.Validationf("message must be at least 10 characters")
	}
	if err := s.repo.InsertContactMessage(ctx, msg); err != nil {
		return nil, dbError("insert contact message", err)
	}

	ev := mq.ContactEvent{
		MessageID:  msg.ID.String(),
		Name:       msg.Name,
		Email:      msg.Email,
		Subject:    msg.Subject,
		OccurredAt: s.clock.Now().UnixMilli(),
	}
	if err := s.publisher.PublishJSON(ctx, mq.KeyContactMessageSubmitted, ev); err != nil {
		s.log.Warn("publish contact event", zap.String("message_id", ev.MessageID), zap.Error(err))
	}
	return msg, nil
}

func (s *marketingService) ListTestimonials(ctx context.Context) ([]db_models.Testimonial, error) {
	items, err := s.repo.ListTestimonials(ctx)
	if err != nil {
		return nil, dbError("list testimonials", err)
	}
	return items, nil
}
