// Package sessionfile persists the active session in a local JSON file,
// the durable client storage for a single-user front end process.
package sessionfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	domainauth "github.com/dms-platform/dms-cli/internal/domain/auth"
	"github.com/dms-platform/dms-cli/internal/ports"
)

// Store is a file-based session store. The file holds exactly one session;
// saving replaces it, clearing removes it.
type Store struct {
	path string
}

var _ ports.SessionStore = (*Store)(nil)

// New creates a session store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Save atomically persists the session: write to a temp file in the same
// directory, then rename over the target. The file is user-readable only.
func (s *Store) Save(_ context.Context, sess domainauth.Session) error {
	if sess.Token == "" {
		return errors.New("session token cannot be empty")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	dir := filepath.Dir(s.path)
	if mkErr := os.MkdirAll(dir, 0o700); mkErr != nil {
		return fmt.Errorf("create session dir: %w", mkErr)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()

	if _, writeErr := tmp.Write(data); writeErr != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write session: %w", writeErr)
	}
	if chmodErr := tmp.Chmod(0o600); chmodErr != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod session: %w", chmodErr)
	}
	if closeErr := tmp.Close(); closeErr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close session file: %w", closeErr)
	}

	if renameErr := os.Rename(tmpName, s.path); renameErr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace session file: %w", renameErr)
	}
	return nil
}

// Load reads the persisted session. A missing, unreadable, or incomplete
// file yields ports.ErrNoSession: restore fails closed rather than
// activating a broken session.
func (s *Store) Load(_ context.Context) (domainauth.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domainauth.Session{}, ports.ErrNoSession
		}
		return domainauth.Session{}, fmt.Errorf("read session file: %w", err)
	}

	var sess domainauth.Session
	if unmarshalErr := json.Unmarshal(data, &sess); unmarshalErr != nil {
		return domainauth.Session{}, ports.ErrNoSession
	}

	// Both token and actor summary must be present for the session to count.
	if sess.Token == "" || sess.Actor.ID == 0 {
		return domainauth.Session{}, ports.ErrNoSession
	}
	return sess, nil
}

// Clear removes the session file. Removing an absent file is not an error.
func (s *Store) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
