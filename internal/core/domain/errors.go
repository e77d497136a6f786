package domain

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrDuplicateRequest = errors.New("duplicate request")
)

// DefaultListLimit is the row cap applied when a caller passes no limit.
const DefaultListLimit = 10

// MaxListLimit bounds any caller-supplied limit.
const MaxListLimit = 100

// NormalizeLimit applies DefaultListLimit to non-positive limits and clamps
// the rest to MaxListLimit.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
