package session

import (
	"errors"

	"github.com/dmitrijs2005/newsdesk/internal/client/client"
)

var ErrNotLoggedIn = errors.New("not logged in")

// AuthError is a failed login or registration. Message is fit for display.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return e.Err }

func authError(err error, fallback string) error {
	return &AuthError{Message: client.UserMessage(err, fallback), Err: err}
}
