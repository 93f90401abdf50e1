package usecase

import "sync"

// emailLock serializes reconciliation per email so two concurrent
// captures for the same address cannot both miss the lookup and create
// duplicate customers. Entries are dropped once the last holder leaves.
type emailLock struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newEmailLock() *emailLock {
	return &emailLock{locks: make(map[string]*lockEntry)}
}

func (l *emailLock) Lock(key string) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &lockEntry{}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
}

func (l *emailLock) Unlock(key string) {
	l.mu.Lock()
	e := l.locks[key]
	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	}
	l.mu.Unlock()

	e.mu.Unlock()
}
