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

func validCardInput(createdBy string) ports.CreateCardInput {
	return ports.CreateCardInput{
		Title:       "Mobile App Navigation Redesign",
		Description: "Bottom navigation bar instead of the hamburger menu.",
		ImageURLs:   []string{"/placeholder.svg"},
		Category:    domain.CategoryDesign,
		CreatedBy:   createdBy,
		Audience:    []string{"design-team"},
	}
}

func TestCreateCard(t *testing.T) {
	svc := NewCardService(memory.NewCardRepository())
	ctx := context.Background()

	card, err := svc.Create(ctx, validCardInput("jane@example.com"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, card.ID)
	assert.Equal(t, "jane@example.com", card.CreatedBy)
	assert.False(t, card.CreatedAt.IsZero())

	second, err := svc.Create(ctx, validCardInput("jane@example.com"))
	require.NoError(t, err)
	assert.NotEqual(t, card.ID, second.ID)
}

func TestCreateCardValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ports.CreateCardInput)
		wantField string
	}{
		{"empty title", func(in *ports.CreateCardInput) { in.Title = "" }, "title"},
		{"blank title", func(in *ports.CreateCardInput) { in.Title = "   " }, "title"},
		{"empty description", func(in *ports.CreateCardInput) { in.Description = "" }, "description"},
		{"three images", func(in *ports.CreateCardInput) {
			in.ImageURLs = []string{"/a.svg", "/b.svg", "/c.svg"}
		}, "image_urls"},
		{"unknown category", func(in *ports.CreateCardInput) { in.Category = "vibes" }, "category"},
		{"empty audience", func(in *ports.CreateCardInput) { in.Audience = nil }, "audience"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCardService(memory.NewCardRepository())
			input := validCardInput("jane@example.com")
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), input)
			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestCreateCardAllowsTwoImagesAndNoImages(t *testing.T) {
	svc := NewCardService(memory.NewCardRepository())
	ctx := context.Background()

	input := validCardInput("jane@example.com")
	input.ImageURLs = []string{"/a.svg", "/b.svg"}
	_, err := svc.Create(ctx, input)
	require.NoError(t, err)

	input.ImageURLs = nil
	_, err = svc.Create(ctx, input)
	require.NoError(t, err)
}

func TestGetCard(t *testing.T) {
	svc := NewCardService(memory.NewCardRepository())
	ctx := context.Background()

	card, err := svc.Create(ctx, validCardInput("jane@example.com"))
	require.NoError(t, err)

	fetched, err := svc.GetCard(ctx, card.ID.String())
	require.NoError(t, err)
	assert.Equal(t, card.ID, fetched.ID)

	_, err = svc.GetCard(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrInvalidCardID)

	_, err = svc.GetCard(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrCardNotFound)
}

func TestCardsByCreatorPreservesCreationOrder(t *testing.T) {
	svc := NewCardService(memory.NewCardRepository())
	ctx := context.Background()

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		input := validCardInput("jane@example.com")
		input.Title = title
		_, err := svc.Create(ctx, input)
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, validCardInput("john@example.com"))
	require.NoError(t, err)

	cards, err := svc.CardsByCreator(ctx, "jane@example.com")
	require.NoError(t, err)
	require.Len(t, cards, 3)
	for i, card := range cards {
		assert.Equal(t, titles[i], card.Title)
	}

	all, err := svc.AllCards(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
