package objpool

import "sync"

// nopLocker satisfies sync.Locker without doing anything. Installed by
// New, where the caller serializes all access externally.
type nopLocker struct{}

func (nopLocker) Lock()   {}
func (nopLocker) Unlock() {}

// NewShared creates a pool that is safe for concurrent use from multiple
// goroutines. A single mutex serializes free-list and counter mutations;
// object construction (the init function) and Cleanup never run under it,
// so slow or pool-re-entrant user code cannot stall other callers.
//
// Everything else behaves exactly like a pool from New, including the
// error callback and log sink options.
func NewShared[T any](capacity int, opts ...Option) (*Pool[T], error) {
	return newPool[T](capacity, new(sync.Mutex), opts)
}
