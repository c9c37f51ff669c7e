// Package auth loads the bearer credentials used against the chat
// workspace API. Tokens are acquired out of band (OAuth consent, service
// account exchange) and written to a JSON file; this package only reads
// and serves them.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// ErrNoCredentials is returned when the credential file is missing or
// holds no usable token. Callers surface it immediately: nothing in this
// process can repair missing credentials.
var ErrNoCredentials = errors.New("no valid credentials found")

// Token is the credential file payload.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	Expiry      string `json:"expiry,omitempty"`
}

// DefaultTokenPath returns the conventional credential file location,
// ~/.catchup/token.json.
func DefaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".catchup", "token.json")
	}
	return filepath.Join(home, ".catchup", "token.json")
}

// FileTokenSource serves the access token stored in a file. It is safe
// for concurrent use; Reload (and the Watch goroutine) may swap the token
// while requests read it.
type FileTokenSource struct {
	path   string
	logger zerolog.Logger

	mu    sync.RWMutex
	token string
}

// NewFileTokenSource loads the credential file eagerly so that missing
// credentials fail fast at startup.
func NewFileTokenSource(path string, logger zerolog.Logger) (*FileTokenSource, error) {
	s := &FileTokenSource{path: path, logger: logger}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the credential file location.
func (s *FileTokenSource) Path() string {
	return s.path
}

// Token returns the current access token.
func (s *FileTokenSource) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", fmt.Errorf("%w: credential file %s", ErrNoCredentials, s.path)
	}
	return s.token, nil
}

// Reload re-reads the credential file. On failure the previously loaded
// token, if any, stays in effect.
func (s *FileTokenSource) Reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: credential file %s does not exist, authenticate first", ErrNoCredentials, s.path)
		}
		return fmt.Errorf("read credential file %s: %w", s.path, err)
	}

	var tok Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return fmt.Errorf("parse credential file %s: %w", s.path, err)
	}
	if tok.AccessToken == "" {
		return fmt.Errorf("%w: credential file %s has no access_token", ErrNoCredentials, s.path)
	}

	s.mu.Lock()
	s.token = tok.AccessToken
	s.mu.Unlock()
	return nil
}
