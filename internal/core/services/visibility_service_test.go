package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validately/api/internal/adapters/repository/memory"
	"github.com/validately/api/internal/core/domain"
	"github.com/validately/api/internal/core/ports"
)

func seedCards(t *testing.T, cards ports.CardService, creators ...string) []*domain.ValidationCard {
	t.Helper()
	out := make([]*domain.ValidationCard, 0, len(creators))
	for _, creator := range creators {
		card, err := cards.Create(context.Background(), validCardInput(creator))
		require.NoError(t, err)
		out = append(out, card)
	}
	return out
}

func TestPMSeesOnlyOwnCards(t *testing.T) {
	cardRepo := memory.NewCardRepository()
	cards := NewCardService(cardRepo)
	visibility := NewVisibilityService(cardRepo)

	seeded := seedCards(t, cards, "a@x.com", "b@x.com", "a@x.com")

	visible, err := visibility.CardsVisibleTo(context.Background(), ports.RolePM, "a@x.com")
	require.NoError(t, err)
	require.Len(t, visible, 2)
	assert.Equal(t, seeded[0].ID, visible[0].ID)
	assert.Equal(t, seeded[2].ID, visible[1].ID)
	for _, card := range visible {
		assert.Equal(t, "a@x.com", card.CreatedBy)
	}
}

func TestStakeholderSeesAllCardsRegardlessOfAudience(t *testing.T) {
	cardRepo := memory.NewCardRepository()
	cards := NewCardService(cardRepo)
	visibility := NewVisibilityService(cardRepo)

	input := validCardInput("a@x.com")
	input.Audience = []string{"engineering"}
	_, err := cards.Create(context.Background(), input)
	require.NoError(t, err)
	seedCards(t, cards, "b@x.com")

	visible, err := visibility.CardsVisibleTo(context.Background(), ports.RoleStakeholder, "outsider@x.com")
	require.NoError(t, err)
	assert.Len(t, visible, 2)
}

func TestPendingQueueFiltersDecidedCards(t *testing.T) {
	cardRepo := memory.NewCardRepository()
	cards := NewCardService(cardRepo)
	visibility := NewVisibilityService(cardRepo)

	seeded := seedCards(t, cards, "a@x.com", "a@x.com", "a@x.com")
	visible, err := visibility.CardsVisibleTo(context.Background(), ports.RoleStakeholder, "user1@x.com")
	require.NoError(t, err)

	decided := map[uuid.UUID]bool{seeded[1].ID: true}
	queue := visibility.PendingQueue(visible, decided)
	require.Len(t, queue, 2)
	assert.Equal(t, seeded[0].ID, queue[0].ID)
	assert.Equal(t, seeded[2].ID, queue[1].ID)

	// The queue is a subset of the visible set.
	visibleIDs := map[uuid.UUID]bool{}
	for _, card := range visible {
		visibleIDs[card.ID] = true
	}
	for _, card := range queue {
		assert.True(t, visibleIDs[card.ID])
	}

	// Removing an ID from the decided set restores the card.
	delete(decided, seeded[1].ID)
	queue = visibility.PendingQueue(visible, decided)
	assert.Len(t, queue, 3)
}

func TestPendingQueueEmptyInputs(t *testing.T) {
	visibility := NewVisibilityService(memory.NewCardRepository())

	assert.Empty(t, visibility.PendingQueue(nil, nil))
	assert.Empty(t, visibility.PendingQueue(nil, map[uuid.UUID]bool{uuid.New(): true}))
}
