// Package guard gates rendering of views on the current session.
package guard

import (
	"art-market/internal/models"
	"art-market/internal/policy"
)

// State is the guard's verdict for one evaluation
type State int

const (
	Loading State = iota
	Redirecting
	Rendering
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Redirecting:
		return "redirecting"
	default:
		return "rendering"
	}
}

// Decision is the outcome of evaluating a path against a session
type Decision struct {
	State    State
	Redirect policy.Redirect
}

// Evaluate must be called again on every path change and every session
// change. While the session is loading nothing is decided.
func Evaluate(session models.Session, path string) Decision {
	if session.Loading {
		return Decision{State: Loading}
	}
	if r, ok := policy.RedirectFor(session.Principal, path); ok {
		return Decision{State: Redirecting, Redirect: r}
	}
	return Decision{State: Rendering}
}
