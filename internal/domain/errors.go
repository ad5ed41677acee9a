package domain

import (
	"errors"
	"fmt"
)

// ErrValidation marks input errors rejected before any exchange call.
// Callers exit non-zero without submitting anything.
var ErrValidation = errors.New("invalid input")

// ErrSentimentBlocked marks a trade rejected by the fear & greed gate.
var ErrSentimentBlocked = errors.New("blocked by market sentiment")

// ErrNoFills marks a planner run in which every slice or level failed.
var ErrNoFills = errors.New("no orders were executed successfully")

// ExchangeError carries a failure reported by the exchange or the
// transport. Planners treat it as per-attempt: log, mark FAILED, continue.
type ExchangeError struct {
	Code int // exchange error code, 0 for transport failures
	Msg  string
}

func (e *ExchangeError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("exchange error %d: %s", e.Code, e.Msg)
	}
	return fmt.Sprintf("exchange error: %s", e.Msg)
}
