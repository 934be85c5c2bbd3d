package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var day = time.Date(2025, time.October, 13, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func TestTimeToOffset(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want float64
	}{
		{"grid start", at(8, 0), 0},
		{"one hour", at(9, 0), 60},
		{"half hour", at(10, 30), 150},
		{"before grid is negative", at(7, 30), -30},
		{"after grid is not clamped", at(23, 0), 900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TimeToOffset(tt.t, 8, 60), 1e-9)
		})
	}
}

func TestTimeToOffset_RowHeight(t *testing.T) {
	assert.InDelta(t, 120.0, TimeToOffset(at(9, 30), 8, 80), 1e-9)
}

func TestOffsetToTime(t *testing.T) {
	tests := []struct {
		name string
		px   float64
		snap int
		want time.Time
	}{
		{"exact mark", 60, 30, at(9, 0)},
		{"rounds down", 74, 30, at(9, 0)},
		{"tie rounds up", 75, 30, at(9, 30)},
		{"rounds up", 89, 30, at(9, 30)},
		{"fifteen minute snap", 22, 15, at(8, 15)},
		{"negative offset is not clamped", -60, 30, at(7, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OffsetToTime(tt.px, day.Add(13*time.Hour), 8, 60, tt.snap)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestSnapIdempotence(t *testing.T) {
	for _, rowHeight := range []float64{40, 60, 48.5} {
		for _, snap := range []int{15, 30, 60} {
			for m := 8 * 60; m <= 22*60; m += snap {
				aligned := day.Add(time.Duration(m) * time.Minute)
				got := OffsetToTime(TimeToOffset(aligned, 8, rowHeight), day, 8, rowHeight, snap)
				require.True(t, aligned.Equal(got), "row=%v snap=%d t=%s got=%s", rowHeight, snap, aligned, got)
			}
		}
	}
}

func TestSnapDelta(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		want float64
	}{
		{"zero", 0, 0},
		{"17 minutes snaps to 30", 17, 30},
		{"14 minutes snaps to 0", 14, 0},
		{"44 minutes snaps to 30", 44, 30},
		{"46 minutes snaps to 60", 46, 60},
		{"negative", -40, -30},
		{"half step up", 15, 30},
		{"half step down rounds toward later", -15, 0},
		{"one and a half steps down", -45, -30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// row height 60 px, so 1 px == 1 minute
			assert.InDelta(t, tt.want, SnapDelta(tt.raw, 60, 30), 1e-9)
		})
	}
}

func TestPixelsToMinutes(t *testing.T) {
	assert.Equal(t, 30, PixelsToMinutes(40, 80))
	assert.Equal(t, -45, PixelsToMinutes(-45, 60))
}

func TestNew(t *testing.T) {
	g, err := New(8, 22, 60, 30)
	require.NoError(t, err)
	assert.InDelta(t, 840.0, g.Height(), 1e-9)

	_, err = New(22, 8, 60, 30)
	assert.ErrorIs(t, err, ErrInvalidGrid)

	_, err = New(8, 22, 0, 30)
	assert.ErrorIs(t, err, ErrInvalidGrid)

	_, err = New(8, 22, 60, 0)
	assert.ErrorIs(t, err, ErrInvalidGrid)
}

func TestGrid_Contains(t *testing.T) {
	g := Grid{StartHour: 8, EndHour: 22, RowHeightPx: 60, SnapMinutes: 30}

	assert.True(t, g.Contains(day, domain.Interval{Start: at(8, 0), End: at(22, 0)}))
	assert.True(t, g.Contains(day, domain.Interval{Start: at(10, 0), End: at(11, 0)}))
	assert.False(t, g.Contains(day, domain.Interval{Start: at(7, 30), End: at(8, 30)}))
	assert.False(t, g.Contains(day, domain.Interval{Start: at(21, 30), End: at(22, 30)}))
}

func TestGrid_MethodsDelegate(t *testing.T) {
	g := Grid{StartHour: 8, EndHour: 22, RowHeightPx: 60, SnapMinutes: 30}

	assert.InDelta(t, 120.0, g.TimeToOffset(at(10, 0)), 1e-9)
	assert.True(t, at(10, 0).Equal(g.OffsetToTime(120, day)))
	assert.InDelta(t, 30.0, g.SnapDelta(17), 1e-9)
}
