package session

import "sync"

// Locker serializes turns per session id. Dialogue state is mutated in place
// without internal locking, so no two turns for the same session may run
// concurrently; different sessions proceed independently.
type Locker struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func NewLocker() *Locker {
	return &Locker{entries: make(map[string]*lockEntry)}
}

// Lock blocks until the session is free and returns the unlock function.
// Entries are refcounted and removed once the last holder releases, keeping
// the map bounded by the number of in-flight turns.
func (l *Locker) Lock(sessionID string) func() {
	l.mu.Lock()
	e, ok := l.entries[sessionID]
	if !ok {
		e = &lockEntry{}
		l.entries[sessionID] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.entries, sessionID)
		}
		l.mu.Unlock()
	}
}
