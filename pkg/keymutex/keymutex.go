// Package keymutex provides mutual exclusion keyed by an arbitrary id.
// The ledger serializes balance mutations per user with it, and booking
// admission serializes the availability check per item.
package keymutex

import "sync"

type KeyMutex struct {
	mu    sync.Mutex
	locks map[int]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New() *KeyMutex {
	return &KeyMutex{
		locks: make(map[int]*entry),
	}
}

// Lock acquires the mutex for key, blocking until it is free.
func (km *KeyMutex) Lock(key int) {
	km.mu.Lock()
	e, ok := km.locks[key]
	if !ok {
		e = &entry{}
		km.locks[key] = e
	}
	e.refs++
	km.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the mutex for key. The per-key entry is dropped once
// no goroutine is waiting on it.
func (km *KeyMutex) Unlock(key int) {
	km.mu.Lock()
	e, ok := km.locks[key]
	if !ok {
		km.mu.Unlock()
		panic("keymutex: unlock of unlocked key")
	}
	e.refs--
	if e.refs == 0 {
		delete(km.locks, key)
	}
	km.mu.Unlock()

	e.mu.Unlock()
}
