package manipulation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling/grid"
)

// 60 px per hour, so 1 px == 1 minute
var testGrid = grid.Grid{StartHour: 8, EndHour: 22, RowHeightPx: 60, SnapMinutes: 30}

func at(hour, minute int) time.Time {
	return time.Date(2025, time.October, 13, hour, minute, 0, 0, time.UTC)
}

func newTarget() *domain.Reservation {
	return &domain.Reservation{
		ID:         1,
		ResourceID: 10,
		Start:      at(10, 0),
		End:        at(11, 0),
		Status:     domain.StatusConfirmed,
	}
}

func newController() *Controller {
	return NewController(testGrid, 30*time.Minute)
}

func TestController_MoveSnapsWholeInterval(t *testing.T) {
	c := newController()
	target := newTarget()

	require.NoError(t, c.PointerDown(target, ModeMove, 120))
	assert.Equal(t, StateDragging, c.State())

	preview, err := c.PointerMove(137)
	require.NoError(t, err)
	assert.True(t, preview.Start.Equal(at(10, 30)))
	assert.True(t, preview.End.Equal(at(11, 30)))

	commit, err := c.PointerUp(137, []*domain.Reservation{target})
	require.NoError(t, err)
	require.NotNil(t, commit)
	assert.Equal(t, int64(1), commit.ReservationID)
	assert.Equal(t, int64(10), commit.ResourceID)
	assert.True(t, commit.Interval.Start.Equal(at(10, 30)))
	assert.True(t, commit.Interval.End.Equal(at(11, 30)))
	assert.True(t, commit.Origin.Equal(target.Interval()))
	assert.Equal(t, StateIdle, c.State())
}

func TestController_Unchanged(t *testing.T) {
	c := newController()

	require.NoError(t, c.PointerDown(newTarget(), ModeMove, 100))
	commit, err := c.PointerUp(110, nil)

	assert.NoError(t, err)
	assert.Nil(t, commit)
	assert.Equal(t, StateIdle, c.State())
}

func TestController_ResizeEnd(t *testing.T) {
	c := newController()

	require.NoError(t, c.PointerDown(newTarget(), ModeResizeEnd, 0))
	commit, err := c.PointerUp(50, nil)

	require.NoError(t, err)
	require.NotNil(t, commit)
	assert.True(t, commit.Interval.Start.Equal(at(10, 0)))
	assert.True(t, commit.Interval.End.Equal(at(12, 0)))
}

func TestController_ResizeStart(t *testing.T) {
	c := newController()

	require.NoError(t, c.PointerDown(newTarget(), ModeResizeStart, 0))
	commit, err := c.PointerUp(-60, nil)

	require.NoError(t, err)
	require.NotNil(t, commit)
	assert.True(t, commit.Interval.Start.Equal(at(9, 0)))
	assert.True(t, commit.Interval.End.Equal(at(11, 0)))
}

func TestController_MinimumDurationFloor(t *testing.T) {
	tests := []struct {
		name      string
		mode      Mode
		delta     float64
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"resize end far up", ModeResizeEnd, -600, at(10, 0), at(10, 30)},
		{"resize end to zero length", ModeResizeEnd, -60, at(10, 0), at(10, 30)},
		{"resize start far down", ModeResizeStart, 600, at(10, 30), at(11, 0)},
		{"resize start exactly at floor", ModeResizeStart, 30, at(10, 30), at(11, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newController()
			require.NoError(t, c.PointerDown(newTarget(), tt.mode, 200))

			preview, err := c.PointerMove(200 + tt.delta)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, preview.Duration(), 30*time.Minute)

			commit, err := c.PointerUp(200+tt.delta, nil)
			require.NoError(t, err)
			require.NotNil(t, commit)
			assert.True(t, commit.Interval.Start.Equal(tt.wantStart), "start %s", commit.Interval.Start)
			assert.True(t, commit.Interval.End.Equal(tt.wantEnd), "end %s", commit.Interval.End)
		})
	}
}

func TestController_ConflictDiscardsSession(t *testing.T) {
	c := newController()
	target := newTarget()
	other := &domain.Reservation{ID: 2, ResourceID: 10, Start: at(11, 0), End: at(12, 0), Status: domain.StatusConfirmed}

	require.NoError(t, c.PointerDown(target, ModeMove, 0))
	commit, err := c.PointerUp(30, []*domain.Reservation{target, other})

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Nil(t, commit)
	assert.Equal(t, StateIdle, c.State())
	// target itself is untouched so the caller can revert to it
	assert.True(t, target.Start.Equal(at(10, 0)))
}

func TestController_OtherResourceDoesNotConflict(t *testing.T) {
	c := newController()
	other := &domain.Reservation{ID: 2, ResourceID: 11, Start: at(11, 0), End: at(12, 0), Status: domain.StatusConfirmed}

	require.NoError(t, c.PointerDown(newTarget(), ModeMove, 0))
	commit, err := c.PointerUp(30, []*domain.Reservation{other})

	require.NoError(t, err)
	assert.NotNil(t, commit)
}

func TestController_OutOfGrid(t *testing.T) {
	c := newController()

	require.NoError(t, c.PointerDown(newTarget(), ModeMove, 0))
	commit, err := c.PointerUp(-150, nil)

	assert.ErrorIs(t, err, ErrOutOfGrid)
	assert.Nil(t, commit)
	assert.Equal(t, StateIdle, c.State())
}

func TestController_SessionGuards(t *testing.T) {
	c := newController()

	_, err := c.PointerMove(10)
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = c.PointerUp(10, nil)
	assert.ErrorIs(t, err, ErrNoSession)

	assert.ErrorIs(t, c.PointerDown(nil, ModeMove, 0), ErrNoTarget)
	assert.ErrorIs(t, c.PointerDown(newTarget(), Mode("rotate"), 0), ErrInvalidMode)

	require.NoError(t, c.PointerDown(newTarget(), ModeMove, 0))
	assert.ErrorIs(t, c.PointerDown(newTarget(), ModeMove, 0), ErrSessionActive)

	c.Cancel()
	assert.Equal(t, StateIdle, c.State())
	assert.NoError(t, c.PointerDown(newTarget(), ModeMove, 0))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("resize_end")
	require.NoError(t, err)
	assert.Equal(t, ModeResizeEnd, m)

	_, err = ParseMode("")
	assert.ErrorIs(t, err, ErrInvalidMode)
}
