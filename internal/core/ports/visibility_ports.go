package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/validately/api/internal/core/domain"
)

type Role string

const (
	RolePM          Role = "pm"
	RoleStakeholder Role = "stakeholder"
)

type VisibilityService interface {
	CardsVisibleTo(ctx context.Context, role Role, identity string) ([]*domain.ValidationCard, error)
	// PendingQueue removes decided cards from visible, preserving order. Pure
	// with respect to the service; the decided set is caller-owned state.
	PendingQueue(visible []*domain.ValidationCard, decided map[uuid.UUID]bool) []*domain.ValidationCard
}

// DecidedSetStore holds the session-scoped set of card IDs a stakeholder has
// already judged. It is reset explicitly by the actor, never by the engine.
type DecidedSetStore interface {
	MarkDecided(ctx context.Context, identity string, cardID uuid.UUID) error
	DecidedCards(ctx context.Context, identity string) (map[uuid.UUID]bool, error)
	Reset(ctx context.Context, identity string) error
}
