package ports

import (
	"context"

	"github.com/validately/api/internal/core/domain"
	"github.com/validately/api/internal/core/swipe"
)

// ReviewState is what the presentation layer needs to render the current
// card: the card itself, the gesture state, and the live offset/rotation.
type ReviewState struct {
	Card      *domain.ValidationCard `json:"card,omitempty"`
	State     string                 `json:"state"`
	Offset    float64                `json:"offset"`
	Rotation  float64                `json:"rotation"`
	Remaining int                    `json:"remaining"`
}

// ReviewService drives one review session per stakeholder identity: it keeps
// the pending queue current and feeds gesture events into that session's
// swipe machine. All methods for one identity are serialized.
type ReviewService interface {
	Current(ctx context.Context, identity string) (*ReviewState, error)
	PointerDown(ctx context.Context, identity string, x float64) (*ReviewState, error)
	PointerMove(ctx context.Context, identity string, x float64) (*ReviewState, error)
	Release(ctx context.Context, identity string) (swipe.Result, error)
	Approve(ctx context.Context, identity string) (swipe.Result, error)
	Reject(ctx context.Context, identity string) error
	SubmitComment(ctx context.Context, identity, comment string) (swipe.Result, error)
	CancelComment(ctx context.Context, identity string) error
	// ResetSession clears the decided set, the actor's "review again" control.
	ResetSession(ctx context.Context, identity string) error
}
