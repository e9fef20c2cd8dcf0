package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/validately/api/internal/core/domain"
	"github.com/validately/api/internal/core/ports"
)

type feedbackRepository struct {
	db *sql.DB
}

func NewFeedbackRepository(db *sql.DB) ports.FeedbackRepository {
	return &feedbackRepository{
		db: db,
	}
}

func (r *feedbackRepository) Save(ctx context.Context, feedback *domain.Feedback) error {
	query := `
		INSERT INTO feedback (id, card_id, stakeholder_id, approved, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		feedback.ID, feedback.CardID, feedback.StakeholderID,
		feedback.Approved, feedback.Comment, feedback.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}
	return nil
}

func (r *feedbackRepository) GetByCard(ctx context.Context, cardID uuid.UUID) ([]*domain.Feedback, error) {
	query := `
		SELECT id, card_id, stakeholder_id, approved, comment, created_at
		FROM feedback
		WHERE card_id = $1
		ORDER BY seq
	`
	rows, err := r.db.QueryContext(ctx, query, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	defer rows.Close()

	var records []*domain.Feedback
	for rows.Next() {
		var f domain.Feedback
		if err := rows.Scan(&f.ID, &f.CardID, &f.StakeholderID, &f.Approved, &f.Comment, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		records = append(records, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback: %w", err)
	}
	return records, nil
}
