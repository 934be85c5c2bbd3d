package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

func TestResource_BusinessHours(t *testing.T) {
	r := &Resource{OpenTime: types.TimeString("09:00"), CloseTime: types.TimeString("18:30")}
	day := time.Date(2025, time.October, 13, 15, 0, 0, 0, time.UTC)

	hours := r.BusinessHours(day)
	assert.True(t, hours.Start.Equal(time.Date(2025, time.October, 13, 9, 0, 0, 0, time.UTC)))
	assert.True(t, hours.End.Equal(time.Date(2025, time.October, 13, 18, 30, 0, 0, time.UTC)))
	assert.Equal(t, 9*60, r.OpenMinute())
	assert.Equal(t, 18*60+30, r.CloseMinute())

	assert.True(t, r.IsWithinBusinessHours(NewInterval(hours.Start, time.Hour)))
	assert.True(t, r.IsWithinBusinessHours(Interval{Start: hours.End.Add(-time.Hour), End: hours.End}))
	assert.False(t, r.IsWithinBusinessHours(NewInterval(hours.Start.Add(-time.Minute), time.Hour)))
	assert.False(t, r.IsWithinBusinessHours(NewInterval(hours.End.Add(-30*time.Minute), time.Hour)))
}

func TestTotalDuration(t *testing.T) {
	services := []*Service{{DurationMinutes: 30}, {DurationMinutes: 45}}
	assert.Equal(t, 75*time.Minute, TotalDuration(services))
	assert.Equal(t, time.Duration(0), TotalDuration(nil))
}

func TestParseResourceKind(t *testing.T) {
	k, ok := ParseResourceKind("professional")
	assert.True(t, ok)
	assert.Equal(t, ResourceKindProfessional, k)

	_, ok = ParseResourceKind("robot")
	assert.False(t, ok)
}
