package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotLoggedIn is returned when no token is stored locally.
var ErrNotLoggedIn = errors.New("not logged in, run 'pxl login' first")

// Store keeps the bearer token on disk between invocations.
type Store struct {
	TokenPath string
}

// New creates a Store with XDG-compliant paths.
// Follows XDG Base Directory specification on Unix and uses AppData on Windows.
func New() (*Store, error) {
	dataDir, err := getDataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine session path: %w", err)
	}
	return &Store{
		TokenPath: filepath.Join(dataDir, "token"),
	}, nil
}

// getDataDir returns the pxl data directory path
func getDataDir() (string, error) {
	// Check XDG_DATA_HOME first (Unix-like systems)
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, "pxl"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// Check if we're on Windows by looking for APPDATA
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "pxl"), nil
	}

	// Fall back to ~/.local/share/pxl (Unix-like systems)
	return filepath.Join(homeDir, ".local", "share", "pxl"), nil
}

// Token loads the stored bearer token.
func (s *Store) Token() (string, error) {
	data, err := os.ReadFile(s.TokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotLoggedIn
		}
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNotLoggedIn
	}
	return token, nil
}

// Save writes the token with owner-only permissions.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.TokenPath), 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(s.TokenPath, []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// Clear removes the stored token. Missing token is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.TokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

// LoggedIn reports whether a token is stored.
func (s *Store) LoggedIn() bool {
	_, err := s.Token()
	return err == nil
}
