package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/validately/api/internal/core/domain"
	"github.com/validately/api/internal/core/ports"
)

type cardService struct {
	repo ports.CardRepository
}

func NewCardService(repo ports.CardRepository) ports.CardService {
	return &cardService{
		repo: repo,
	}
}

func (s *cardService) Create(ctx context.Context, input ports.CreateCardInput) (*domain.ValidationCard, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.Invalid("title", "must not be empty")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, domain.Invalid("description", "must not be empty")
	}
	if len(input.ImageURLs) > domain.MaxCardImages {
		return nil, domain.Invalid("image_urls", "at most 2 images allowed")
	}
	if !input.Category.Valid() {
		return nil, domain.Invalid("category", "unknown category")
	}
	if len(input.Audience) == 0 {
		return nil, domain.Invalid("audience", "at least one audience group is required")
	}

	card := &domain.ValidationCard{
		ID:                uuid.New(),
		Title:             input.Title,
		Description:       input.Description,
		ImageURLs:         input.ImageURLs,
		Category:          input.Category,
		CreatedBy:         input.CreatedBy,
		CreatedAt:         time.Now(),
		Audience:          input.Audience,
		ContextParameters: input.ContextParameters,
	}

	if err := s.repo.Save(ctx, card); err != nil {
		return nil, err
	}

	return card, nil
}

func (s *cardService) GetCard(ctx context.Context, id string) (*domain.ValidationCard, error) {
	cardID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidCardID
	}

	return s.repo.GetByID(ctx, cardID)
}

func (s *cardService) CardsByCreator(ctx context.Context, identity string) ([]*domain.ValidationCard, error) {
	return s.repo.GetByCreator(ctx, identity)
}

func (s *cardService) AllCards(ctx context.Context) ([]*domain.ValidationCard, error) {
	return s.repo.GetAll(ctx)
}
