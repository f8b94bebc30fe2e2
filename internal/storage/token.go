package storage

import (
	"context"
	"database/sql"
)

// TokenSource reads the auth token for outbound requests. An absent token
// yields an empty string, not an error.
type TokenSource struct {
	db *sql.DB
}

func NewTokenSource(db *sql.DB) *TokenSource {
	return &TokenSource{db: db}
}

func (s *TokenSource) Token(ctx context.Context) (string, error) {
	v, err := NewSQLiteRepository(s.db).Get(ctx, KeyAuthToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}
