package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/validately/api/internal/core/domain"
	"github.com/validately/api/internal/core/ports"
)

type feedbackService struct {
	cardRepo     ports.CardRepository
	feedbackRepo ports.FeedbackRepository
}

func NewFeedbackService(cardRepo ports.CardRepository, feedbackRepo ports.FeedbackRepository) ports.FeedbackService {
	return &feedbackService{
		cardRepo:     cardRepo,
		feedbackRepo: feedbackRepo,
	}
}

func (s *feedbackService) Record(ctx context.Context, input ports.RecordFeedbackInput) (*domain.Feedback, error) {
	if _, err := s.cardRepo.GetByID(ctx, input.CardID); err != nil {
		return nil, err
	}

	feedback := &domain.Feedback{
		ID:            uuid.New(),
		CardID:        input.CardID,
		StakeholderID: input.StakeholderID,
		Approved:      input.Approved,
		Comment:       input.Comment,
		CreatedAt:     time.Now(),
	}

	if err := s.feedbackRepo.Save(ctx, feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}

func (s *feedbackService) ForCard(ctx context.Context, cardID uuid.UUID) ([]*domain.Feedback, error) {
	return s.feedbackRepo.GetByCard(ctx, cardID)
}
