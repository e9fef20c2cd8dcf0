package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/validately/api/internal/core/domain"
	"github.com/validately/api/internal/core/ports"
)

type visibilityService struct {
	cardRepo ports.CardRepository
}

func NewVisibilityService(cardRepo ports.CardRepository) ports.VisibilityService {
	return &visibilityService{
		cardRepo: cardRepo,
	}
}

// CardsVisibleTo returns the cards an actor may currently see, in creation
// order. PMs see only their own cards. Stakeholders see every card; the
// audience labels on cards are advisory and deliberately not applied here,
// matching the documented behavior of the product.
func (s *visibilityService) CardsVisibleTo(ctx context.Context, role ports.Role, identity string) ([]*domain.ValidationCard, error) {
	if role == ports.RolePM {
		return s.cardRepo.GetByCreator(ctx, identity)
	}
	return s.cardRepo.GetAll(ctx)
}

// PendingQueue drops cards whose ID is in the caller-held decided set,
// preserving the relative order of the rest.
func (s *visibilityService) PendingQueue(visible []*domain.ValidationCard, decided map[uuid.UUID]bool) []*domain.ValidationCard {
	pending := make([]*domain.ValidationCard, 0, len(visible))
	for _, card := range visible {
		if decided[card.ID] {
			continue
		}
		pending = append(pending, card)
	}
	return pending
}
