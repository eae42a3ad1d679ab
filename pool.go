package objpool

import (
	"fmt"
	"math"
	"sync"
	"unsafe"
)

// Error codes passed to the callback registered via WithErrorCallback.
const (
	CodeZeroCapacity = 0
	CodeExhausted    = 1
	CodeSizeOverflow = 2
)

const (
	msgZeroCapacity = "pool capacity cannot be 0"
	msgExhausted    = "object pool exhausted"
	msgSizeOverflow = "object pool size overflow"
)

// maxArenaBytes bounds the arena buffer to the platform's int range,
// since len() and make() operate on int.
const maxArenaBytes = uintptr(math.MaxInt)

// Cleaner is implemented by pooled types that need teardown logic. When
// *T implements Cleaner, the pool calls Cleanup() on an object right
// before its slot is recycled.
type Cleaner interface {
	Cleanup()
}

// Pool is a fixed-capacity object pool for values of type T. All objects
// live inside a single preallocated arena; Make hands out slots in O(1)
// and handle teardown returns them in O(1) via a LIFO free list threaded
// through the unused slots themselves.
//
// A pool created with New is not goroutine-safe: the caller must
// serialize all access. Use NewShared for concurrent access.
type Pool[T any] struct {
	mu       sync.Locker
	arena    arena
	capacity int

	// Free list and counters. Only touched under mu.
	freeHead     *freeSlot
	used         int
	maxAllocated int // slots ever carved from the linear region, never decreases

	onError    func(msg string, code int)
	logf       func(string)
	hasCleanup bool
}

// New creates a single-owner pool with room for capacity objects of type T.
//
// Fails with ErrZeroCapacity if capacity < 1 and with ErrSizeOverflow if
// the arena size would overflow. When an error callback is registered,
// those conditions are reported to it instead and New returns (nil, nil).
func New[T any](capacity int, opts ...Option) (*Pool[T], error) {
	return newPool[T](capacity, nopLocker{}, opts)
}

func newPool[T any](capacity int, mu sync.Locker, opts []Option) (*Pool[T], error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	fail := func(msg string, code int, err error) (*Pool[T], error) {
		if cfg.logf != nil {
			cfg.logf(fmt.Sprintf("[Pool][ERROR] %s code=%d", msg, code))
		}
		if cfg.onError != nil {
			cfg.onError(msg, code)
			return nil, nil
		}
		return nil, err
	}

	if capacity < 1 {
		return fail(msgZeroCapacity, CodeZeroCapacity, ErrZeroCapacity)
	}
	layout := layoutOf[T]()
	if uintptr(capacity) > (maxArenaBytes-(layout.align-1))/layout.size {
		return fail(msgSizeOverflow, CodeSizeOverflow, ErrSizeOverflow)
	}

	p := &Pool[T]{
		mu:       mu,
		arena:    newArena(layout, capacity),
		capacity: capacity,
		onError:  cfg.onError,
		logf:     cfg.logf,
	}
	_, p.hasCleanup = any((*T)(nil)).(Cleaner)

	p.logfmt("[Pool][INIT] capacity=%d bytes=%d", capacity, p.arena.bytes())
	return p, nil
}

// Make reserves a slot, constructs a T in it and returns the owning
// handle. The slot is zeroed before init runs; init may be nil to leave
// the object at its zero value.
//
// Make is strongly failure-safe: if init returns an error or panics, the
// slot goes back onto the free list, Used() is unchanged, and the failure
// propagates to the caller unmodified.
//
// When the pool is exhausted, Make returns ErrExhausted. If an error
// callback is registered, Make instead invokes it once and returns an
// empty handle with a nil error.
func (p *Pool[T]) Make(init func(*T) error) (*Handle[T], error) {
	p.mu.Lock()
	p.panicIfReleased()
	ptr, reused, index := p.reserveLocked()
	p.mu.Unlock()

	if ptr == nil {
		if p.onError != nil {
			p.logfmt("[Pool][ERROR] exhausted -> calling error callback")
			p.onError(msgExhausted, CodeExhausted)
			return &Handle[T]{}, nil
		}
		p.logfmt("[Pool][ERROR] %s code=%d", msgExhausted, CodeExhausted)
		return nil, ErrExhausted
	}
	if reused {
		p.logfmt("[Pool][ALLOC][REUSE] slot=%#x", uintptr(ptr))
	} else {
		p.logfmt("[Pool][ALLOC][NEW] slot=%#x index=%d", uintptr(ptr), index)
	}

	// Construction runs outside the lock so a slow or re-entrant init
	// cannot stall or deadlock other callers.
	committed := false
	defer func() {
		if committed {
			return
		}
		p.mu.Lock()
		p.recycleLocked(ptr)
		p.mu.Unlock()
		p.logfmt("[Pool][FREE] slot=%#x", uintptr(ptr))
	}()

	obj := (*T)(ptr)
	var zero T
	*obj = zero
	p.logfmt("[Pool][CREATE] construct object at %#x", uintptr(ptr))
	if init != nil {
		if err := init(obj); err != nil {
			return nil, err
		}
	}

	p.mu.Lock()
	p.used++
	p.mu.Unlock()
	committed = true

	return &Handle[T]{pool: p, obj: obj}, nil
}

// MakeValue constructs a pooled copy of v. Shorthand for Make with an
// init that assigns v.
func (p *Pool[T]) MakeValue(v T) (*Handle[T], error) {
	return p.Make(func(obj *T) error {
		*obj = v
		return nil
	})
}

// Reclaim destructs an object previously detached via Handle.Detach and
// returns its slot to the pool. Passing a pointer that did not come from
// Detach on this pool corrupts the free list.
func (p *Pool[T]) Reclaim(obj *T) {
	if obj == nil {
		return
	}
	p.destroy(obj)
}

// Release drops the arena and makes the pool unusable; any subsequent
// Make panics. Panics if live objects remain. Release must not be called
// while another goroutine is inside Make.
func (p *Pool[T]) Release() {
	p.mu.Lock()
	if p.arena.released() {
		p.mu.Unlock()
		return
	}
	if p.used != 0 {
		p.mu.Unlock()
		panic("objpool: Release() with live objects")
	}
	maxAllocated := p.maxAllocated
	p.arena.release()
	p.freeHead = nil
	p.mu.Unlock()

	p.logfmt("[Pool][DESTROY] max allocated=%d", maxAllocated)
}

// Capacity returns the fixed number of slots. Immutable after construction.
func (p *Pool[T]) Capacity() int {
	return p.capacity
}

// Used returns the number of slots currently holding a live object.
func (p *Pool[T]) Used() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.used
}

// Available returns the number of objects that can still be made before
// the pool is exhausted.
func (p *Pool[T]) Available() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.capacity - p.used
}

// MaxAllocated returns the high-water mark: the number of slots ever
// carved from the arena's linear region. It never decreases.
func (p *Pool[T]) MaxAllocated() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.maxAllocated
}

// reserveLocked pops the free list head or carves the next linear slot.
// Returns a nil pointer when the pool is exhausted. index is the linear
// slot index for a fresh carve, -1 for a reused slot. Caller holds mu.
func (p *Pool[T]) reserveLocked() (ptr unsafe.Pointer, reused bool, index int) {
	if p.freeHead != nil {
		node := p.freeHead
		p.freeHead = node.next
		return unsafe.Pointer(node), true, -1
	}
	if p.maxAllocated >= p.capacity {
		return nil, false, -1
	}
	i := p.maxAllocated
	p.maxAllocated++
	return p.arena.slot(i), false, i
}

// recycleLocked threads a slot back onto the free list. Caller holds mu.
func (p *Pool[T]) recycleLocked(ptr unsafe.Pointer) {
	node := (*freeSlot)(ptr)
	node.next = p.freeHead
	p.freeHead = node
}

// destroy runs the object's cleanup outside the lock, then returns its
// slot to the free list. Reached only through handle teardown and Reclaim.
func (p *Pool[T]) destroy(obj *T) {
	p.logfmt("[Pool][OBJ_DTOR] object=%#x", uintptr(unsafe.Pointer(obj)))
	if p.hasCleanup {
		any(obj).(Cleaner).Cleanup()
	}

	p.mu.Lock()
	p.recycleLocked(unsafe.Pointer(obj))
	p.used--
	p.mu.Unlock()

	p.logfmt("[Pool][FREE] slot=%#x", uintptr(unsafe.Pointer(obj)))
}

// panicIfReleased panics if the pool has been released. Caller holds mu.
func (p *Pool[T]) panicIfReleased() {
	if p.arena.released() {
		panic("objpool: use after Release()")
	}
}

// logfmt formats and emits a message to the log sink, if one is set.
// Never called while holding mu, so a sink that reads pool state back
// cannot deadlock a shared pool.
func (p *Pool[T]) logfmt(format string, args ...any) {
	if p.logf != nil {
		p.logf(fmt.Sprintf(format, args...))
	}
}
