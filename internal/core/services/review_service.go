package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/validately/api/internal/core/domain"
	"github.com/validately/api/internal/core/ports"
	"github.com/validately/api/internal/core/swipe"
)

// reviewService owns one swipe machine per stakeholder identity. A single
// lock serializes gesture events; the engine targets one writer per session,
// so contention is not a concern here.
type reviewService struct {
	mu         sync.Mutex
	visibility ports.VisibilityService
	feedback   ports.FeedbackService
	decided    ports.DecidedSetStore
	machines   map[string]*swipe.Machine
}

func NewReviewService(visibility ports.VisibilityService, feedback ports.FeedbackService, decided ports.DecidedSetStore) ports.ReviewService {
	return &reviewService{
		visibility: visibility,
		feedback:   feedback,
		decided:    decided,
		machines:   make(map[string]*swipe.Machine),
	}
}

func (s *reviewService) machine(identity string) *swipe.Machine {
	if m, ok := s.machines[identity]; ok {
		return m
	}

	record := func(ctx context.Context, cardID uuid.UUID, d swipe.Decision) error {
		_, err := s.feedback.Record(ctx, ports.RecordFeedbackInput{
			CardID:        cardID,
			StakeholderID: identity,
			Approved:      d.Approved,
			Comment:       d.Comment,
		})
		return err
	}
	markDecided := func(ctx context.Context, cardID uuid.UUID) error {
		return s.decided.MarkDecided(ctx, identity, cardID)
	}

	m := swipe.New(record, markDecided)
	s.machines[identity] = m
	return m
}

// ensureCard recomputes the pending queue and pins its head to the machine
// when no card is presented yet. The pinned card stays until its gesture
// resolves, so a mid-drag queue change never swaps the card under the actor.
func (s *reviewService) ensureCard(ctx context.Context, identity string, m *swipe.Machine) (*domain.ValidationCard, int, error) {
	visible, err := s.visibility.CardsVisibleTo(ctx, ports.RoleStakeholder, identity)
	if err != nil {
		return nil, 0, err
	}
	decidedSet, err := s.decided.DecidedCards(ctx, identity)
	if err != nil {
		return nil, 0, err
	}
	queue := s.visibility.PendingQueue(visible, decidedSet)

	if pinned, ok := m.Card(); ok {
		for _, card := range visible {
			if card.ID == pinned {
				return card, len(queue), nil
			}
		}
		return nil, len(queue), domain.ErrCardNotFound
	}

	if len(queue) == 0 {
		return nil, 0, nil
	}
	if err := m.Present(queue[0].ID); err != nil {
		return nil, 0, err
	}
	return queue[0], len(queue), nil
}

func (s *reviewService) state(card *domain.ValidationCard, remaining int, m *swipe.Machine) *ports.ReviewState {
	return &ports.ReviewState{
		Card:      card,
		State:     m.State().String(),
		Offset:    m.Offset(),
		Rotation:  m.Rotation(),
		Remaining: remaining,
	}
}

func (s *reviewService) Current(ctx context.Context, identity string) (*ports.ReviewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.machine(identity)
	card, remaining, err := s.ensureCard(ctx, identity, m)
	if err != nil {
		return nil, err
	}
	return s.state(card, remaining, m), nil
}

func (s *reviewService) PointerDown(ctx context.Context, identity string, x float64) (*ports.ReviewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.machine(identity)
	card, remaining, err := s.ensureCard(ctx, identity, m)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, domain.ErrNoCardPresented
	}
	if err := m.PointerDown(x); err != nil {
		return nil, err
	}
	return s.state(card, remaining, m), nil
}

func (s *reviewService) PointerMove(ctx context.Context, identity string, x float64) (*ports.ReviewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.machine(identity)
	m.PointerMove(x)
	card, remaining, err := s.ensureCard(ctx, identity, m)
	if err != nil {
		return nil, err
	}
	return s.state(card, remaining, m), nil
}

func (s *reviewService) Release(ctx context.Context, identity string) (swipe.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.machine(identity).Release(ctx)
}

func (s *reviewService) Approve(ctx context.Context, identity string) (swipe.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.machine(identity)
	card, _, err := s.ensureCard(ctx, identity, m)
	if err != nil {
		return swipe.ResultNone, err
	}
	if card == nil {
		return swipe.ResultNone, domain.ErrNoCardPresented
	}
	return m.Approve(ctx)
}

func (s *reviewService) Reject(ctx context.Context, identity string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.machine(identity)
	card, _, err := s.ensureCard(ctx, identity, m)
	if err != nil {
		return err
	}
	if card == nil {
		return domain.ErrNoCardPresented
	}
	return m.Reject()
}

func (s *reviewService) SubmitComment(ctx context.Context, identity, comment string) (swipe.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.machine(identity).SubmitComment(ctx, comment)
}

func (s *reviewService) CancelComment(ctx context.Context, identity string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.machine(identity).CancelComment()
}

func (s *reviewService) ResetSession(ctx context.Context, identity string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.machine(identity).CancelComment(); err != nil {
		return err
	}
	return s.decided.Reset(ctx, identity)
}
