// Package memory holds the in-process store backing the card feedback
// engine. Collections are append-only and creation-ordered; each write is
// atomic under the repository lock.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/validately/api/internal/core/domain"
	"github.com/validately/api/internal/core/ports"
)

type cardRepository struct {
	mu    sync.RWMutex
	cards []*domain.ValidationCard
}

func NewCardRepository() ports.CardRepository {
	return &cardRepository{}
}

func (r *cardRepository) Save(ctx context.Context, card *domain.ValidationCard) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *card
	r.cards = append(r.cards, &copied)
	return nil
}

func (r *cardRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ValidationCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, card := range r.cards {
		if card.ID == id {
			copied := *card
			return &copied, nil
		}
	}
	return nil, domain.ErrCardNotFound
}

func (r *cardRepository) GetAll(ctx context.Context) ([]*domain.ValidationCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.ValidationCard, 0, len(r.cards))
	for _, card := range r.cards {
		copied := *card
		out = append(out, &copied)
	}
	return out, nil
}

func (r *cardRepository) GetByCreator(ctx context.Context, identity string) ([]*domain.ValidationCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.ValidationCard
	for _, card := range r.cards {
		if card.CreatedBy == identity {
			copied := *card
			out = append(out, &copied)
		}
	}
	return out, nil
}
