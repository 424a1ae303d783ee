package Client

import (
	"path/filepath"
	"testing"
)

func TestRequireWithoutToken(t *testing.T) {
	sessions := NewSessionStore(NewMemStore())
	if _, ok := sessions.Require(); ok {
		t.Error("Require must signal redirect when no token is stored")
	}
}

func TestClearKeepsTheme(t *testing.T) {
	store := NewMemStore()
	sessions := NewSessionStore(store)
	themes := NewThemeController(store)

	sessions.Begin(TokenResponse{AccessToken: "tok-1", DoctorID: 3, DoctorName: "Dr. Chen"})
	themes.Toggle()

	sessions.Clear()

	if _, ok := sessions.Require(); ok {
		t.Error("session survived Clear")
	}
	if themes.Current() != ThemeDark {
		t.Error("theme preference must survive logout")
	}
}

func TestThemeDoubleToggleRoundTrips(t *testing.T) {
	themes := NewThemeController(NewMemStore())

	original := themes.Current()
	if original != ThemeLight {
		t.Fatalf("default theme = %q, want light", original)
	}

	if got := themes.Toggle(); got != ThemeDark {
		t.Errorf("first toggle = %q", got)
	}
	if got := themes.Toggle(); got != original {
		t.Errorf("double toggle = %q, want the original %q", got, original)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := store.Set("access_token", "tok-9"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if value, ok := reopened.Get("access_token"); !ok || value != "tok-9" {
		t.Errorf("reopened store = %q, %v", value, ok)
	}
}
