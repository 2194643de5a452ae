package booking

import (
	"strings"

	"shareit/internal/platform/apperr"
)

// State filters booking lists. CURRENT/PAST/FUTURE are evaluated against
// "now" at query time; WAITING/REJECTED match the status column.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState is case-insensitive on input; unknown values are a validation
// error.
func ParseState(s string) (State, error) {
	switch st := State(strings.ToUpper(s)); st {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return st, nil
	default:
		return "", apperr.Invalid("unknown state: " + s)
	}
}
