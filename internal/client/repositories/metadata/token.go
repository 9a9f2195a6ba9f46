package metadata

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/newsdesk/internal/common"
	"github.com/dmitrijs2005/newsdesk/internal/dbx"
)

// TokenStore keeps the single persisted bearer token under a fixed key,
// together with the time it was written.
type TokenStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewTokenStore(db *sql.DB) *TokenStore {
	return &TokenStore{db: db, now: time.Now}
}

// Load returns the persisted token or "" when none is stored.
func (s *TokenStore) Load(ctx context.Context) (string, error) {
	v, err := NewSQLiteRepository(s.db).Get(ctx, common.TokenMetadataKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Save replaces the persisted token.
func (s *TokenStore) Save(ctx context.Context, token string) error {
	savedAt := s.now().UTC().Format(time.RFC3339)
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.TokenMetadataKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.TokenSavedAtMetadataKey, []byte(savedAt))
	})
}

// Clear removes the persisted token. Clearing an empty store is not an error.
func (s *TokenStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, common.TokenMetadataKey); err != nil {
			return err
		}
		return repo.Delete(ctx, common.TokenSavedAtMetadataKey)
	})
}

// SavedAt reports when the current token was persisted.
func (s *TokenStore) SavedAt(ctx context.Context) (time.Time, bool, error) {
	v, err := NewSQLiteRepository(s.db).Get(ctx, common.TokenSavedAtMetadataKey)
	if err != nil || v == nil {
		return time.Time{}, false, err
	}
	t, err := time.Parse(time.RFC3339, string(v))
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
