package manipulation

import "errors"

var (
	ErrSessionActive = errors.New("manipulation: drag session already active")
	ErrNoSession     = errors.New("manipulation: no active drag session")
	ErrInvalidMode   = errors.New("manipulation: invalid drag mode")
	ErrNoTarget      = errors.New("manipulation: target reservation is required")
	ErrOutOfGrid     = errors.New("manipulation: interval is outside the visible grid")
)
