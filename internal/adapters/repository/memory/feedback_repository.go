package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/validately/api/internal/core/domain"
	"github.com/validately/api/internal/core/ports"
)

type feedbackRepository struct {
	mu      sync.RWMutex
	records []*domain.Feedback
}

func NewFeedbackRepository() ports.FeedbackRepository {
	return &feedbackRepository{}
}

func (r *feedbackRepository) Save(ctx context.Context, feedback *domain.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *feedback
	r.records = append(r.records, &copied)
	return nil
}

func (r *feedbackRepository) GetByCard(ctx context.Context, cardID uuid.UUID) ([]*domain.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Feedback
	for _, f := range r.records {
		if f.CardID == cardID {
			copied := *f
			out = append(out, &copied)
		}
	}
	return out, nil
}
