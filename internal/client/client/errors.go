package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrUnavailable       = errors.New("server unavailable")
	ErrServer            = errors.New("server error")
	ErrMalformedResponse = errors.New("malformed response")
)

// APIError describes a failed request. Status is 0 when no response was
// received.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s %s: %v: %v", e.Method, e.Path, ErrUnavailable, e.Err)
		}
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, ErrUnavailable)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, e.Message)
}

// Unwrap exposes both the status sentinel and the transport cause.
func (e *APIError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (e *APIError) sentinel() error {
	switch {
	case e.Status == 0:
		return ErrUnavailable
	case e.Status == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.Status == http.StatusForbidden:
		return ErrForbidden
	case e.Status == http.StatusNotFound:
		return ErrNotFound
	case e.Status == http.StatusBadRequest, e.Status == http.StatusUnprocessableEntity:
		return ErrValidation
	case e.Status >= 500:
		return ErrServer
	}
	return nil
}

var tokenRejectionWords = []string{"token", "expired", "invalid", "revoked"}

// IsTokenRejection reports whether err is a 401 whose message says the
// token itself is unusable. Only such errors may end a session.
func IsTokenRejection(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		return false
	}
	msg := strings.ToLower(apiErr.Message)
	for _, w := range tokenRejectionWords {
		if strings.Contains(msg, w) {
			return true
		}
	}
	return false
}

// MentionsToken reports whether the server message of err refers to a
// token, typically a 422 from the JWT layer.
func MentionsToken(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return strings.Contains(strings.ToLower(apiErr.Message), "token")
}

// Message returns the server-provided message of err, if any.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status != 0 {
		return apiErr.Message
	}
	return ""
}

// UserMessage renders err as a one-line message for the terminal, using
// fallback when the server gave no explanation.
func UserMessage(err error, fallback string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnavailable):
		return "Cannot connect to server"
	case errors.Is(err, ErrValidation) && MentionsToken(err):
		return "Your session may have expired. Please log in again."
	case errors.Is(err, ErrMalformedResponse):
		return "Invalid response from server"
	}
	if msg := Message(err); msg != "" {
		return msg
	}
	if fallback != "" {
		return fallback
	}
	return err.Error()
}

// ArticleMessage is UserMessage specialised for loading a single article.
func ArticleMessage(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "Article not found"
	case errors.Is(err, ErrForbidden):
		return "Premium subscription required to view this article"
	}
	return UserMessage(err, "Failed to load article")
}
