package cli

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/newsdesk/internal/client/client"
	"github.com/dmitrijs2005/newsdesk/internal/client/feed"
	"github.com/dmitrijs2005/newsdesk/internal/client/session"
)

var errUnknownCommand = errors.New("unknown command")

type usageError struct {
	usage string
}

func (e *usageError) Error() string { return "usage: " + e.usage }

// pageError carries a page-specific message for err.
type pageError struct {
	msg string
	err error
}

func (e *pageError) Error() string { return e.msg + ": " + e.err.Error() }

func (e *pageError) Unwrap() error { return e.err }

// describe renders err as the single line shown in the REPL.
func describe(err error) string {
	var (
		apiErr  *client.APIError
		authErr *session.AuthError
		pageErr *pageError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &pageErr):
		return pageErr.msg
	case errors.As(err, &authErr):
		return authErr.Message
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Request cancelled"
	case errors.Is(err, feed.ErrNotLoaded):
		return "Article is not loaded, open it with 'show <id>' or list the feed first"
	case errors.As(err, &apiErr), errors.Is(err, client.ErrMalformedResponse):
		return client.UserMessage(err, "Request failed")
	}
	return capitalize(err.Error())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return strings.TrimSpace(string(r))
}
