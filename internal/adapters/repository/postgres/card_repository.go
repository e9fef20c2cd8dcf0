package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/validately/api/internal/core/domain"
	"github.com/validately/api/internal/core/ports"
)

type cardRepository struct {
	db *sql.DB
}

func NewCardRepository(db *sql.DB) ports.CardRepository {
	return &cardRepository{
		db: db,
	}
}

func (r *cardRepository) Save(ctx context.Context, card *domain.ValidationCard) error {
	query := `
		INSERT INTO cards (id, title, description, image_urls, category, created_by, created_at, audience, context_parameters)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		card.ID, card.Title, card.Description, pq.Array(card.ImageURLs),
		string(card.Category), card.CreatedBy, card.CreatedAt,
		pq.Array(card.Audience), pq.Array(card.ContextParameters),
	)
	if err != nil {
		return fmt.Errorf("failed to insert card: %w", err)
	}
	return nil
}

func (r *cardRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ValidationCard, error) {
	query := `
		SELECT id, title, description, image_urls, category, created_by, created_at, audience, context_parameters
		FROM cards
		WHERE id = $1
	`
	card, err := scanCard(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return card, nil
}

func (r *cardRepository) GetAll(ctx context.Context) ([]*domain.ValidationCard, error) {
	query := `
		SELECT id, title, description, image_urls, category, created_by, created_at, audience, context_parameters
		FROM cards
		ORDER BY seq
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all cards: %w", err)
	}
	defer rows.Close()

	return scanCards(rows)
}

func (r *cardRepository) GetByCreator(ctx context.Context, identity string) ([]*domain.ValidationCard, error) {
	query := `
		SELECT id, title, description, image_urls, category, created_by, created_at, audience, context_parameters
		FROM cards
		WHERE created_by = $1
		ORDER BY seq
	`
	rows, err := r.db.QueryContext(ctx, query, identity)
	if err != nil {
		return nil, fmt.Errorf("failed to get cards by creator: %w", err)
	}
	defer rows.Close()

	return scanCards(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (*domain.ValidationCard, error) {
	var card domain.ValidationCard
	var category string
	err := row.Scan(
		&card.ID, &card.Title, &card.Description, pq.Array(&card.ImageURLs),
		&category, &card.CreatedBy, &card.CreatedAt,
		pq.Array(&card.Audience), pq.Array(&card.ContextParameters),
	)
	if err != nil {
		return nil, err
	}
	card.Category = domain.CardCategory(category)
	return &card, nil
}

func scanCards(rows *sql.Rows) ([]*domain.ValidationCard, error) {
	var cards []*domain.ValidationCard
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cards: %w", err)
	}
	return cards, nil
}
