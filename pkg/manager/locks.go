package manager

import "sync"

// actorLocks hands out one mutex per actor so instance starts for the same
// actor run one at a time: the quota check in Prepare reads namespaces and
// then creates one, and two concurrent starts could both pass the read.
// Entries are reference counted and dropped when the last holder unlocks,
// so the map does not grow with every actor ever seen.
type actorLocks struct {
	mu    sync.Mutex
	locks map[string]*actorLock
}

type actorLock struct {
	mu   sync.Mutex
	refs int
}

// lock blocks until the actor's mutex is held and returns the release
// function.
func (l *actorLocks) lock(actor string) (unlock func()) {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*actorLock)
	}
	entry, ok := l.locks[actor]
	if !ok {
		entry = &actorLock{}
		l.locks[actor] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, actor)
		}
		l.mu.Unlock()
	}
}
