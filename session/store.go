package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Storage keys mirror the browser local-storage keys used by the web client,
// so a session file is readable next to the backend's own naming.
const (
	KeyToken      = "token"
	KeyUsername   = "username"
	KeyRole       = "role"
	KeyUserID     = "userId"
	KeyCustomerID = "customerId"
)

// Event is delivered to subscribers whenever a key changes or the session is
// cleared.
type Event struct {
	Key     string
	Value   string
	Cleared bool
}

// Store is a small persisted key-value session holder. Values are written
// through to a JSON file so a restarted client keeps its login. Writes are
// last-writer-wins; there is no cross-process locking.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]string
	subs []chan Event
}

// Open loads the session file at path, creating an empty store if the file
// does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	// A corrupt session file is treated as logged out, not as a fatal error.
	if err := json.Unmarshal(raw, &s.data); err != nil {
		s.data = make(map[string]string)
	}
	return s, nil
}

// Get returns the stored value for key, or "" when absent.
func (s *Store) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[key]
}

// Token is shorthand for Get(KeyToken).
func (s *Store) Token() string {
	return s.Get(KeyToken)
}

// Set stores key=value, persists, and notifies subscribers.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	s.data[key] = value
	s.persistLocked()
	s.notifyLocked(Event{Key: key, Value: value})
	s.mu.Unlock()
}

// Delete removes a single key, persists, and notifies subscribers.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.data, key)
	s.persistLocked()
	s.notifyLocked(Event{Key: key})
	s.mu.Unlock()
}

// Clear wipes every session key. This is the logout path; subscribers see a
// single Cleared event rather than one event per key.
func (s *Store) Clear() {
	s.mu.Lock()
	s.data = make(map[string]string)
	s.persistLocked()
	s.notifyLocked(Event{Cleared: true})
	s.mu.Unlock()
}

// Subscribe returns a channel receiving session change events. Slow
// subscribers drop events instead of blocking writers.
func (s *Store) Subscribe() <-chan Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan Event, 8)
	s.subs = append(s.subs, ch)
	return ch
}

func (s *Store) notifyLocked(ev Event) {
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (s *Store) persistLocked() {
	if s.path == "" {
		return
	}
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(s.path), 0o755)
	_ = os.WriteFile(s.path, raw, 0o600)
}
