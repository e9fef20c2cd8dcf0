package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/validately/api/internal/core/domain"
	"github.com/validately/api/internal/core/ports"
)

type metricsService struct {
	feedbackRepo ports.FeedbackRepository
}

func NewMetricsService(feedbackRepo ports.FeedbackRepository) ports.MetricsService {
	return &metricsService{
		feedbackRepo: feedbackRepo,
	}
}

// MetricsFor derives the per-card figures from the feedback log. Comments
// keep feedback insertion order; records without a comment are skipped.
func (s *metricsService) MetricsFor(ctx context.Context, cardID uuid.UUID) (*domain.CardMetrics, error) {
	records, err := s.feedbackRepo.GetByCard(ctx, cardID)
	if err != nil {
		return nil, err
	}

	metrics := &domain.CardMetrics{
		FeedbackComments: []string{},
	}
	for _, f := range records {
		if f.Approved {
			metrics.ApprovalCount++
		} else {
			metrics.RejectionCount++
		}
		if f.Comment != nil {
			metrics.FeedbackComments = append(metrics.FeedbackComments, *f.Comment)
		}
	}

	total := metrics.ApprovalCount + metrics.RejectionCount
	if total > 0 {
		metrics.ApprovalRate = float64(metrics.ApprovalCount) / float64(total)
	}

	return metrics, nil
}
