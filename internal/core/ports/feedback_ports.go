package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/validately/api/internal/core/domain"
)

type FeedbackRepository interface {
	Save(ctx context.Context, feedback *domain.Feedback) error
	GetByCard(ctx context.Context, cardID uuid.UUID) ([]*domain.Feedback, error)
}

type RecordFeedbackInput struct {
	CardID        uuid.UUID
	StakeholderID string
	Approved      bool
	Comment       *string
}

type FeedbackService interface {
	Record(ctx context.Context, input RecordFeedbackInput) (*domain.Feedback, error)
	ForCard(ctx context.Context, cardID uuid.UUID) ([]*domain.Feedback, error)
}

type MetricsService interface {
	MetricsFor(ctx context.Context, cardID uuid.UUID) (*domain.CardMetrics, error)
}
