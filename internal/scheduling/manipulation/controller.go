// Package manipulation implements the move/resize drag state machine.
//
// A session starts on pointer-down, produces snapped preview intervals on
// every pointer-move and either emits a Commit or is discarded on pointer-up.
// Only one session exists per controller.
package manipulation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling/conflict"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling/grid"
)

// Mode what the gesture changes
type Mode string

const (
	ModeMove        Mode = "move"
	ModeResizeStart Mode = "resize_start"
	ModeResizeEnd   Mode = "resize_end"
)

// ParseMode validates a mode string
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeMove, ModeResizeStart, ModeResizeEnd:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// State of the controller
type State int

const (
	StateIdle State = iota
	StateDragging
	StateCommitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateCommitting:
		return "committing"
	default:
		return "unknown"
	}
}

// Commit change request emitted by a successful gesture
type Commit struct {
	ReservationID int64
	ResourceID    int64
	Origin        domain.Interval
	Interval      domain.Interval
}

type session struct {
	target    *domain.Reservation
	mode      Mode
	originY   float64
	origin    domain.Interval
	candidate domain.Interval
}

// Controller drag/resize state machine bound to one grid
type Controller struct {
	grid        grid.Grid
	minDuration time.Duration

	state   State
	session *session
}

// NewController creates an idle controller
func NewController(g grid.Grid, minDuration time.Duration) *Controller {
	return &Controller{
		grid:        g,
		minDuration: minDuration,
		state:       StateIdle,
	}
}

func (c *Controller) State() State {
	return c.state
}

// PointerDown opens a session on target. Idle -> Dragging.
func (c *Controller) PointerDown(target *domain.Reservation, mode Mode, pointerY float64) error {
	if c.state != StateIdle {
		return ErrSessionActive
	}
	if target == nil {
		return ErrNoTarget
	}
	if _, err := ParseMode(string(mode)); err != nil {
		return err
	}

	origin := target.Interval()
	c.session = &session{
		target:    target,
		mode:      mode,
		originY:   pointerY,
		origin:    origin,
		candidate: origin,
	}
	c.state = StateDragging
	return nil
}

// PointerMove recomputes the preview interval from the cumulative displacement.
// The preview is never conflict-checked.
func (c *Controller) PointerMove(pointerY float64) (domain.Interval, error) {
	if c.state != StateDragging || c.session == nil {
		return domain.Interval{}, ErrNoSession
	}
	c.session.candidate = c.candidateAt(pointerY)
	return c.session.candidate, nil
}

// PointerUp finishes the session. Dragging -> Committing -> Idle.
//
// Returns nil, nil when the interval did not change, ErrOutOfGrid when it
// leaves the visible grid and domain.ErrConflict when it overlaps another
// reservation of the same resource. The session is destroyed in every case.
func (c *Controller) PointerUp(pointerY float64, existing []*domain.Reservation) (*Commit, error) {
	if c.state != StateDragging || c.session == nil {
		return nil, ErrNoSession
	}

	s := c.session
	s.candidate = c.candidateAt(pointerY)
	c.state = StateCommitting
	defer c.reset()

	if s.candidate.Equal(s.origin) {
		return nil, nil
	}
	if !c.grid.Contains(s.origin.Start, s.candidate) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfGrid, s.candidate)
	}

	id := s.target.ID
	if conflict.HasConflict(s.target.ResourceID, s.candidate, existing, &id) {
		return nil, fmt.Errorf("%w: %s", domain.ErrConflict, s.candidate)
	}

	return &Commit{
		ReservationID: s.target.ID,
		ResourceID:    s.target.ResourceID,
		Origin:        s.origin,
		Interval:      s.candidate,
	}, nil
}

// Cancel drops the active session without emitting anything
func (c *Controller) Cancel() {
	c.reset()
}

func (c *Controller) reset() {
	c.session = nil
	c.state = StateIdle
}

func (c *Controller) candidateAt(pointerY float64) domain.Interval {
	s := c.session
	snapped := c.grid.SnapDelta(pointerY - s.originY)
	delta := time.Duration(grid.PixelsToMinutes(snapped, c.grid.RowHeightPx)) * time.Minute

	switch s.mode {
	case ModeResizeStart:
		start := s.origin.Start.Add(delta)
		if s.origin.End.Sub(start) < c.minDuration {
			start = s.origin.End.Add(-c.minDuration)
		}
		return domain.Interval{Start: start, End: s.origin.End}
	case ModeResizeEnd:
		end := s.origin.End.Add(delta)
		if end.Sub(s.origin.Start) < c.minDuration {
			end = s.origin.Start.Add(c.minDuration)
		}
		return domain.Interval{Start: s.origin.Start, End: end}
	default:
		return s.origin.Shift(delta)
	}
}
