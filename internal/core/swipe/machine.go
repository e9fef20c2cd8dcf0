// Package swipe turns a continuous horizontal drag into a discrete
// approve/reject/cancel outcome for the card currently presented.
package swipe

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Threshold is the displacement in device-independent pixels a drag must
// exceed (strictly) at release time to count as a decision.
const Threshold = 100.0

// DisplayDelay is how long the presentation layer keeps a committed card on
// screen for its exit transition. Purely visual; by the time a commit result
// is returned the feedback record already exists.
const DisplayDelay = 500 * time.Millisecond

type State int

const (
	StateIdle State = iota
	StateDragging
	StateAwaitingComment
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateAwaitingComment:
		return "awaiting_comment"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Result reports how a gesture event resolved.
type Result int

const (
	// ResultNone: no decision was made; the card stays presented.
	ResultNone Result = iota
	ResultApproved
	// ResultPendingComment: rejection started, waiting on the comment modal.
	ResultPendingComment
	ResultRejected
)

func (r Result) String() string {
	switch r {
	case ResultApproved:
		return "approved"
	case ResultPendingComment:
		return "pending_comment"
	case ResultRejected:
		return "rejected"
	}
	return "none"
}

// StateError reports an event that is not legal in the current state.
type StateError struct {
	State State
	Event string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s while %s", e.Event, e.State)
}

// Decision is a committed outcome handed to the Recorder. Comment is non-nil
// only for rejections, and may point at an empty string.
type Decision struct {
	Approved bool
	Comment  *string
}

// Recorder persists a committed decision. If it fails, the machine keeps the
// card presented and does not mark it decided.
type Recorder func(ctx context.Context, cardID uuid.UUID, d Decision) error

// DecidedSink marks a card decided in the caller's session state once its
// feedback record exists.
type DecidedSink func(ctx context.Context, cardID uuid.UUID) error

// Machine interprets pointer events for one card at a time. It is not safe
// for concurrent use; callers serialize events per session.
type Machine struct {
	record  Recorder
	decided DecidedSink

	state   State
	card    uuid.UUID
	hasCard bool
	startX  float64
	offset  float64
}

func New(record Recorder, decided DecidedSink) *Machine {
	return &Machine{record: record, decided: decided}
}

func (m *Machine) State() State    { return m.state }
func (m *Machine) Offset() float64 { return m.offset }

// Rotation is the card tilt the presentation layer renders, derived from the
// live offset the same way the swipe view does.
func (m *Machine) Rotation() float64 { return m.offset * 0.1 }

// Card returns the card currently presented, if any.
func (m *Machine) Card() (uuid.UUID, bool) { return m.card, m.hasCard }

// Present pins a card for the next gesture. Only legal while idle.
func (m *Machine) Present(cardID uuid.UUID) error {
	if m.state != StateIdle {
		return &StateError{State: m.state, Event: "present card"}
	}
	m.card = cardID
	m.hasCard = true
	m.offset = 0
	return nil
}

// PointerDown begins a drag at x.
func (m *Machine) PointerDown(x float64) error {
	if m.state != StateIdle {
		return &StateError{State: m.state, Event: "start drag"}
	}
	if !m.hasCard {
		return &StateError{State: m.state, Event: "start drag without card"}
	}
	m.state = StateDragging
	m.startX = x
	m.offset = 0
	return nil
}

// PointerMove updates the live offset. Moves outside a drag are ignored,
// matching how a pointer stream behaves after the pointer leaves the card.
func (m *Machine) PointerMove(x float64) {
	if m.state != StateDragging {
		return
	}
	m.offset = x - m.startX
}

// Release ends the drag and branches on the offset: past +Threshold commits
// an approval, past -Threshold opens the comment step, anything else snaps
// back with no record created. A release outside a drag is a no-op.
func (m *Machine) Release(ctx context.Context) (Result, error) {
	if m.state == StateAwaitingComment {
		return ResultNone, &StateError{State: m.state, Event: "release"}
	}
	if m.state != StateDragging {
		return ResultNone, nil
	}
	switch {
	case m.offset > Threshold:
		return m.commit(ctx, Decision{Approved: true})
	case m.offset < -Threshold:
		m.state = StateAwaitingComment
		return ResultPendingComment, nil
	default:
		m.state = StateIdle
		m.offset = 0
		return ResultNone, nil
	}
}

// Approve commits an approval directly, bypassing the drag.
func (m *Machine) Approve(ctx context.Context) (Result, error) {
	if m.state == StateAwaitingComment {
		return ResultNone, &StateError{State: m.state, Event: "approve"}
	}
	if !m.hasCard {
		return ResultNone, &StateError{State: m.state, Event: "approve without card"}
	}
	return m.commit(ctx, Decision{Approved: true})
}

// Reject opens the comment step directly, bypassing the drag. Rejection
// always gets a chance for commentary before it is finalized.
func (m *Machine) Reject() error {
	if m.state == StateAwaitingComment {
		return &StateError{State: m.state, Event: "reject"}
	}
	if !m.hasCard {
		return &StateError{State: m.state, Event: "reject without card"}
	}
	m.state = StateAwaitingComment
	return nil
}

// SubmitComment finalizes a pending rejection. The comment may be empty.
func (m *Machine) SubmitComment(ctx context.Context, comment string) (Result, error) {
	if m.state != StateAwaitingComment {
		return ResultNone, &StateError{State: m.state, Event: "submit comment"}
	}
	return m.commit(ctx, Decision{Approved: false, Comment: &comment})
}

// CancelComment abandons a pending rejection. No record is created and the
// next gesture on the same card starts from a clean idle state. Cancelling
// when no rejection is pending is a no-op, so retries are harmless.
func (m *Machine) CancelComment() error {
	if m.state == StateDragging {
		return &StateError{State: m.state, Event: "cancel comment"}
	}
	m.state = StateIdle
	m.offset = 0
	return nil
}

func (m *Machine) commit(ctx context.Context, d Decision) (Result, error) {
	if err := m.record(ctx, m.card, d); err != nil {
		// The actor sees the same card again, offset reset.
		m.state = StateIdle
		m.offset = 0
		return ResultNone, err
	}

	card := m.card
	m.state = StateIdle
	m.offset = 0
	m.hasCard = false

	if m.decided != nil {
		if err := m.decided(ctx, card); err != nil {
			// The record exists, so the card must not be re-presented; the
			// session just failed to note it.
			return ResultNone, fmt.Errorf("mark card %s decided: %w", card, err)
		}
	}

	if d.Approved {
		return ResultApproved, nil
	}
	return ResultRejected, nil
}
