// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package credential

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rayliner-project/rayliner/lib/secret"
)

// Session file names under the state directory. Two files, two
// namespaces: user and admin logins never share storage, so logging
// out of one can never clobber the other.
const (
	userSessionFile  = "session"
	adminSessionFile = "admin-session"
)

// ErrNoSession is returned when no session file exists for the
// requested namespace. The caller should direct the user to log in.
var ErrNoSession = errors.New("credential: not logged in")

// Store persists session tokens under a state directory.
type Store struct {
	stateDir string
}

// NewStore creates a store rooted at the given state directory. The
// directory is created on first save, not here.
func NewStore(stateDir string) *Store {
	return &Store{stateDir: stateDir}
}

// UserSessionPath returns the user session file path, for display in
// login/logout output.
func (s *Store) UserSessionPath() string {
	return filepath.Join(s.stateDir, userSessionFile)
}

// AdminSessionPath returns the admin session file path.
func (s *Store) AdminSessionPath() string {
	return filepath.Join(s.stateDir, adminSessionFile)
}

// SaveUser persists a user session token, replacing any previous one.
func (s *Store) SaveUser(token UserToken) error {
	return s.save(s.UserSessionPath(), token.Value())
}

// SaveAdmin persists an admin session token, replacing any previous one.
func (s *Store) SaveAdmin(token AdminToken) error {
	return s.save(s.AdminSessionPath(), token.Value())
}

// LoadUser loads the persisted user session token. Returns
// ErrNoSession when the user has not logged in.
func (s *Store) LoadUser() (UserToken, error) {
	buffer, err := s.load(s.UserSessionPath())
	if err != nil {
		return UserToken{}, err
	}
	return NewUserToken(buffer), nil
}

// LoadAdmin loads the persisted admin session token. Returns
// ErrNoSession when no admin login has been performed.
func (s *Store) LoadAdmin() (AdminToken, error) {
	buffer, err := s.load(s.AdminSessionPath())
	if err != nil {
		return AdminToken{}, err
	}
	return NewAdminToken(buffer), nil
}

// ClearUser removes the user session file. Clearing an absent session
// is not an error — logout is idempotent.
func (s *Store) ClearUser() error {
	return s.clear(s.UserSessionPath())
}

// ClearAdmin removes the admin session file.
func (s *Store) ClearAdmin() error {
	return s.clear(s.AdminSessionPath())
}

func (s *Store) save(path, token string) error {
	if token == "" {
		return fmt.Errorf("credential: refusing to save an empty token")
	}
	if err := os.MkdirAll(s.stateDir, 0o700); err != nil {
		return fmt.Errorf("credential: creating state dir: %w", err)
	}
	// Owner-only: the token grants full account access.
	if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("credential: writing %s: %w", path, err)
	}
	return nil
}

func (s *Store) load(path string) (*secret.Buffer, error) {
	buffer, err := secret.ReadFromPath(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("credential: reading %s: %w", path, err)
	}
	return buffer, nil
}

func (s *Store) clear(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("credential: removing %s: %w", path, err)
	}
	return nil
}
