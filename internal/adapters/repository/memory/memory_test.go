package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validately/api/internal/core/domain"
)

func newCard(creator, title string) *domain.ValidationCard {
	return &domain.ValidationCard{
		ID:          uuid.New(),
		Title:       title,
		Description: "desc",
		Category:    domain.CategoryProblem,
		CreatedBy:   creator,
		CreatedAt:   time.Now(),
		Audience:    []string{"product-team"},
	}
}

func TestCardRepositoryOrderAndFilter(t *testing.T) {
	repo := NewCardRepository()
	ctx := context.Background()

	first := newCard("a@x.com", "first")
	second := newCard("b@x.com", "second")
	third := newCard("a@x.com", "third")
	for _, card := range []*domain.ValidationCard{first, second, third} {
		require.NoError(t, repo.Save(ctx, card))
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uuid.UUID{first.ID, second.ID, third.ID},
		[]uuid.UUID{all[0].ID, all[1].ID, all[2].ID})

	mine, err := repo.GetByCreator(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "first", mine[0].Title)
	assert.Equal(t, "third", mine[1].Title)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrCardNotFound)
}

func TestCardRepositoryReturnsCopies(t *testing.T) {
	repo := NewCardRepository()
	ctx := context.Background()

	card := newCard("a@x.com", "original")
	require.NoError(t, repo.Save(ctx, card))

	fetched, err := repo.GetByID(ctx, card.ID)
	require.NoError(t, err)
	fetched.Title = "mutated"

	again, err := repo.GetByID(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", again.Title)
}

func TestFeedbackRepositoryInsertionOrder(t *testing.T) {
	repo := NewFeedbackRepository()
	ctx := context.Background()
	cardID := uuid.New()

	comments := []string{"one", "two", "three"}
	for _, c := range comments {
		comment := c
		require.NoError(t, repo.Save(ctx, &domain.Feedback{
			ID:            uuid.New(),
			CardID:        cardID,
			StakeholderID: "user@x.com",
			Approved:      false,
			Comment:       &comment,
			CreatedAt:     time.Now(),
		}))
	}
	// A record for another card must not leak into the result.
	require.NoError(t, repo.Save(ctx, &domain.Feedback{
		ID:        uuid.New(),
		CardID:    uuid.New(),
		Approved:  true,
		CreatedAt: time.Now(),
	}))

	records, err := repo.GetByCard(ctx, cardID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, record := range records {
		require.NotNil(t, record.Comment)
		assert.Equal(t, comments[i], *record.Comment)
	}

	none, err := repo.GetByCard(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}
