// Package session owns the client-side authentication state: the current
// user record, the authenticated flag and the startup loading flag, backed
// by the durable local store.
//
// A single Store instance is constructed in the app wiring and passed by
// reference to every consumer; there is no package-level state. Operations
// are meant to be called from the UI goroutine only — submissions are
// serialized by the screens, so the store takes no lock.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"accountcli/internal/api"
	"accountcli/internal/dbx"
	"accountcli/internal/logging"
	"accountcli/internal/models"
	"accountcli/internal/storage"
)

type Store struct {
	api api.Client
	db  *sql.DB
	log logging.Logger

	user          *models.User
	authenticated bool
	loading       bool
	initialized   bool
}

// NewStore builds a Store in its pre-initialization state: loading, not
// authenticated, no user.
func NewStore(client api.Client, db *sql.DB, log logging.Logger) *Store {
	return &Store{api: client, db: db, log: log, loading: true}
}

func (s *Store) repo(db dbx.DBTX) storage.Repository {
	return storage.NewSQLiteRepository(db)
}

// Initialize restores the session from the local store. It runs once per
// process, before any screen renders.
//
// No stored token: ends logged out without touching the network. A token is
// present: the profile is fetched; success populates the user and re-persists
// it, any failure is treated as an expired session and demotes to logged out
// (the token is removed). The loading flag always ends false.
func (s *Store) Initialize(ctx context.Context) error {
	if s.initialized {
		return nil
	}
	s.initialized = true
	defer func() { s.loading = false }()

	token, err := s.repo(s.db).Get(ctx, storage.KeyAuthToken)
	if err != nil {
		return fmt.Errorf("reading stored token: %w", err)
	}
	if len(token) == 0 {
		return nil
	}

	user, err := s.api.GetProfile(ctx)
	if err != nil {
		// invalid or expired session; land on login without an error shown
		s.log.Info(ctx, "session restore failed, logging out", "reason", err)
		return s.Logout(ctx)
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding user record: %w", err)
	}
	if err := s.repo(s.db).Set(ctx, storage.KeyUserData, data); err != nil {
		return err
	}

	s.user = user
	s.authenticated = true
	return nil
}

// Login persists the token and user record and marks the session
// authenticated. Both durable writes happen in one transaction, so storage
// and memory cannot diverge if one of them fails.
func (s *Store) Login(ctx context.Context, user *models.User, token string) error {
	var data []byte
	if user != nil {
		var err error
		if data, err = json.Marshal(user); err != nil {
			return fmt.Errorf("encoding user record: %w", err)
		}
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if token != "" {
			if err := repo.Set(ctx, storage.KeyAuthToken, []byte(token)); err != nil {
				return err
			}
		}
		if user != nil {
			if err := repo.Set(ctx, storage.KeyUserData, data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if user != nil {
		s.user = user
	}
	s.authenticated = true
	return nil
}

// Logout removes the token and user record from the local store and clears
// the in-memory session. Calling it when already logged out is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Delete(ctx, storage.KeyAuthToken); err != nil {
			return err
		}
		return repo.Delete(ctx, storage.KeyUserData)
	})
	if err != nil {
		return err
	}

	s.user = nil
	s.authenticated = false
	return nil
}

// UpdateUser replaces the current user record and re-persists it. The token
// is not touched.
func (s *Store) UpdateUser(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding user record: %w", err)
	}
	if err := s.repo(s.db).Set(ctx, storage.KeyUserData, data); err != nil {
		return err
	}

	s.user = user
	return nil
}

// User returns the current user record, nil when logged out.
func (s *Store) User() *models.User { return s.user }

// IsAuthenticated reports whether a valid session is active.
func (s *Store) IsAuthenticated() bool { return s.authenticated }

// Loading reports whether Initialize has not finished yet.
func (s *Store) Loading() bool { return s.loading }
