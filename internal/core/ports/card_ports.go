package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/validately/api/internal/core/domain"
)

type CardRepository interface {
	Save(ctx context.Context, card *domain.ValidationCard) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ValidationCard, error)
	GetAll(ctx context.Context) ([]*domain.ValidationCard, error)
	GetByCreator(ctx context.Context, identity string) ([]*domain.ValidationCard, error)
}

type CreateCardInput struct {
	Title             string
	Description       string
	ImageURLs         []string
	Category          domain.CardCategory
	CreatedBy         string
	Audience          []string
	ContextParameters []string
}

type CardService interface {
	Create(ctx context.Context, input CreateCardInput) (*domain.ValidationCard, error)
	GetCard(ctx context.Context, id string) (*domain.ValidationCard, error)
	CardsByCreator(ctx context.Context, identity string) ([]*domain.ValidationCard, error)
	AllCards(ctx context.Context) ([]*domain.ValidationCard, error)
}
