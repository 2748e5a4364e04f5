package session

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return &Store{TokenPath: filepath.Join(t.TempDir(), "token")}
}

func TestTokenNotLoggedIn(t *testing.T) {
	s := tempStore(t)

	_, err := s.Token()
	if !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("error = %v, want ErrNotLoggedIn", err)
	}
	if s.LoggedIn() {
		t.Error("LoggedIn() should be false with no stored token")
	}
}

func TestSaveAndToken(t *testing.T) {
	s := tempStore(t)

	if err := s.Save("abc123"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	token, err := s.Token()
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if token != "abc123" {
		t.Errorf("token = %q, want abc123", token)
	}
	if !s.LoggedIn() {
		t.Error("LoggedIn() should be true after Save")
	}
}

func TestSavePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not enforced on windows")
	}
	s := tempStore(t)
	if err := s.Save("secret"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(s.TokenPath)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("token file mode = %o, want 0600", perm)
	}
}

func TestClear(t *testing.T) {
	s := tempStore(t)
	if err := s.Save("abc123"); err != nil {
		t.Fatal(err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if s.LoggedIn() {
		t.Error("LoggedIn() should be false after Clear")
	}

	// Clearing again is not an error.
	if err := s.Clear(); err != nil {
		t.Errorf("second Clear() error = %v", err)
	}
}

func TestTokenTrimsWhitespaceAndRejectsEmpty(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.TokenPath, []byte("  tok-x \n"), 0600); err != nil {
		t.Fatal(err)
	}
	token, err := s.Token()
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if token != "tok-x" {
		t.Errorf("token = %q, want tok-x", token)
	}

	if err := os.WriteFile(s.TokenPath, []byte("\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Token(); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("blank token file should read as not logged in, got %v", err)
	}
}
