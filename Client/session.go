package Client

import (
	"encoding/json"
	"os"
	"strconv"
	"sync"
)

// Store is the persisted key/value state behind sessions and the theme
// preference. Injected so components never reach into ambient storage.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

const (
	keyToken      = "access_token"
	keyDoctorID   = "doctor_id"
	keyDoctorName = "doctor_name"
	keyTheme      = "theme"
)

// Session is the authenticated doctor's identity for the lifetime of a
// token.
type Session struct {
	Token      string
	DoctorID   uint
	DoctorName string
}

// SessionStore owns the session lifecycle: begun on login or register
// success, cleared on logout.
type SessionStore struct {
	store Store
}

func NewSessionStore(store Store) *SessionStore {
	return &SessionStore{store: store}
}

func (s *SessionStore) Begin(token TokenResponse) error {
	if err := s.store.Set(keyToken, token.AccessToken); err != nil {
		return err
	}
	if err := s.store.Set(keyDoctorID, strconv.FormatUint(uint64(token.DoctorID), 10)); err != nil {
		return err
	}
	return s.store.Set(keyDoctorName, token.DoctorName)
}

// Require returns the current session. A false second value is a navigation
// signal, send the user to the login page, never an error.
func (s *SessionStore) Require() (Session, bool) {
	token, ok := s.store.Get(keyToken)
	if !ok || token == "" {
		return Session{}, false
	}

	session := Session{Token: token}
	if name, ok := s.store.Get(keyDoctorName); ok {
		session.DoctorName = name
	}
	if raw, ok := s.store.Get(keyDoctorID); ok {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			session.DoctorID = uint(id)
		}
	}
	return session, true
}

func (s *SessionStore) Token() string {
	token, _ := s.store.Get(keyToken)
	return token
}

// Clear drops every session field. The theme preference survives, it is a
// device setting rather than a session one.
func (s *SessionStore) Clear() {
	s.store.Delete(keyToken)
	s.store.Delete(keyDoctorID)
	s.store.Delete(keyDoctorName)
}

// MemStore is an in-memory Store for tests and short-lived tooling.
type MemStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (m *MemStore) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	return value, ok
}

func (m *MemStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// FileStore persists the key/value state as a JSON file so sessions survive
// restarts.
type FileStore struct {
	path   string
	mu     sync.Mutex
	values map[string]string
}

func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &fs.values); err != nil {
		return nil, err
	}
	return fs, nil
}

func (f *FileStore) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.values[key]
	return value, ok
}

func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return f.flush()
}

func (f *FileStore) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return f.flush()
}

func (f *FileStore) flush() error {
	data, err := json.Marshal(f.values)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0600)
}
