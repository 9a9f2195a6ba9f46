package session

import "github.com/dmitrijs2005/newsdesk/internal/client/models"

type State int

const (
	StateBootstrapping State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateBootstrapping:
		return "bootstrapping"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

type EventKind int

const (
	EventLoggedIn EventKind = iota + 1
	EventLoggedOut
	EventTokenRejected
	EventProfileUpdated
)

func (k EventKind) String() string {
	switch k {
	case EventLoggedIn:
		return "logged_in"
	case EventLoggedOut:
		return "logged_out"
	case EventTokenRejected:
		return "token_rejected"
	case EventProfileUpdated:
		return "profile_updated"
	}
	return "unknown"
}

// Event is delivered to subscribers after a transition. User is a copy of
// the session user after the transition, nil when logged out.
type Event struct {
	Kind   EventKind
	User   *models.User
	Reason string
}

// Snapshot is a consistent copy of the session.
type Snapshot struct {
	State   State
	User    *models.User
	Token   string
	Loading bool
}

func (s Snapshot) Authenticated() bool {
	return s.State == StateAuthenticated && s.User != nil
}
