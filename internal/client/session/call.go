package session

import (
	"context"

	"github.com/dmitrijs2005/newsdesk/internal/client/client"
)

// Call runs fn with a snapshot of the current credentials and lets the
// store react to a token rejection in its error.
func Call[T any](ctx context.Context, s *Store, fn func(client.Credentials) (T, error)) (T, error) {
	creds := s.Credentials()
	v, err := fn(creds)
	if err != nil {
		s.HandleError(ctx, creds, err)
	}
	return v, err
}

// Exec is Call for operations without a result.
func Exec(ctx context.Context, s *Store, fn func(client.Credentials) error) error {
	_, err := Call(ctx, s, func(c client.Credentials) (struct{}, error) {
		return struct{}{}, fn(c)
	})
	return err
}
