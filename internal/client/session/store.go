package session

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/essaehaan/Profile/internal/client/repositories/metadata"
	"github.com/essaehaan/Profile/internal/common"
	"github.com/essaehaan/Profile/internal/dbx"
)

const savedAtKey = common.AccessTokenKey + "_saved_at"

// TokenStore persists the bearer credential in the local metadata table.
type TokenStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewTokenStore(db *sql.DB) *TokenStore {
	return &TokenStore{db: db, now: time.Now}
}

func repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// Get returns the stored credential, or "" when none is stored.
func (s *TokenStore) Get(ctx context.Context) (string, error) {
	v, err := repo(s.db).Get(ctx, common.AccessTokenKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Set stores token together with the time it was saved.
func (s *TokenStore) Set(ctx context.Context, token string) error {
	savedAt := strconv.FormatInt(s.now().Unix(), 10)
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := repo(tx)
		if err := r.Set(ctx, common.AccessTokenKey, []byte(token)); err != nil {
			return err
		}
		return r.Set(ctx, savedAtKey, []byte(savedAt))
	})
}

// Clear removes the credential. Clearing an empty store is not an error.
func (s *TokenStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := repo(tx)
		if err := r.Delete(ctx, common.AccessTokenKey); err != nil {
			return err
		}
		return r.Delete(ctx, savedAtKey)
	})
}

// SavedAt returns when the current credential was stored.
func (s *TokenStore) SavedAt(ctx context.Context) (time.Time, bool, error) {
	v, err := repo(s.db).Get(ctx, savedAtKey)
	if err != nil || v == nil {
		return time.Time{}, false, err
	}
	sec, err := strconv.ParseInt(string(v), 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse %s: %w", savedAtKey, err)
	}
	return time.Unix(sec, 0), true, nil
}
