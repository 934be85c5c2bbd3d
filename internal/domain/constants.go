package domain

import "time"

// Default scheduling values
const (
	DefaultGridStartHour      = 8
	DefaultGridEndHour        = 22
	DefaultSnapMinutes        = 30
	DefaultMinDurationMinutes = 30
	DefaultSlotStepMinutes    = 60
)

// Business validation constants
const (
	MaxNotesLength        = 500
	MaxCustomerNameLength = 200
)

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM
)

// StartOfDay truncates t to local midnight in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsSameDay reports whether both instants fall on the same calendar date
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
