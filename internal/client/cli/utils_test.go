package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/newsdesk/internal/client/client"
	"github.com/dmitrijs2005/newsdesk/internal/client/feed"
	"github.com/dmitrijs2005/newsdesk/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgID(t *testing.T) {
	id, err := argID([]string{"7"}, 0, "show <id>")
	require.NoError(t, err)
	assert.EqualValues(t, 7, id)

	for _, args := range [][]string{nil, {"x"}, {"0"}, {"-3"}} {
		_, err := argID(args, 0, "show <id>")
		var usage *usageError
		require.ErrorAs(t, err, &usage, "%v", args)
		assert.Equal(t, "usage: show <id>", err.Error())
	}
}

func TestArgPage(t *testing.T) {
	p, err := argPage(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, p)

	p, err = argPage([]string{"4"}, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, p)

	_, err = argPage([]string{"zero"}, 0)
	assert.Error(t, err)
}

func TestArgRest(t *testing.T) {
	assert.Equal(t, "hello world", argRest([]string{"1", "hello", "world"}, 1))
	assert.Empty(t, argRest([]string{"1"}, 1))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a b c", truncate("a\n  b\tc", 10))
	assert.Equal(t, "héllo…", truncate("héllo wörld", 6))
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"unavailable", &client.APIError{Err: errors.New("dial tcp: refused")}, "Cannot connect to server"},
		{"server message", &client.APIError{Status: 400, Message: "Title is required"}, "Title is required"},
		{"no message", &client.APIError{Status: 500}, "Request failed"},
		{"auth error", &session.AuthError{Message: "Invalid credentials"}, "Invalid credentials"},
		{"page error", &pageError{msg: "Article not found", err: client.ErrNotFound}, "Article not found"},
		{"not loaded", fmt.Errorf("like: %w", feed.ErrNotLoaded), "Article is not loaded, open it with 'show <id>' or list the feed first"},
		{"cancelled", context.Canceled, "Request cancelled"},
		{"malformed", fmt.Errorf("GET /news: %w: missing %q", client.ErrMalformedResponse, "articles"), "Invalid response from server"},
		{"plain", errors.New("unknown category"), "Unknown category"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, describe(tc.err))
		})
	}
}
