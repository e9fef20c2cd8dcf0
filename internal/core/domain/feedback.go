package domain

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is one stakeholder's decision on one card. Records are
// append-only; the same (card, stakeholder) pair may appear more than once
// across sessions, since dedup happens at the session level, not here.
type Feedback struct {
	ID            uuid.UUID `json:"id"`
	CardID        uuid.UUID `json:"card_id"`
	StakeholderID string    `json:"stakeholder_id"`
	Approved      bool      `json:"approved"`
	Comment       *string   `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// CardMetrics is derived from the feedback log on every query, never stored.
type CardMetrics struct {
	ApprovalCount    int      `json:"approval_count"`
	RejectionCount   int      `json:"rejection_count"`
	ApprovalRate     float64  `json:"approval_rate"`
	FeedbackComments []string `json:"feedback_comments"`
}
