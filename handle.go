package objpool

import "unsafe"

// Handle is the exclusive owner of one live object inside a Pool.
// Resetting it (or letting a deferred Reset run at scope exit) destructs
// the object and returns its slot to the pool.
//
// A handle must not outlive the pool that issued it. Ownership moves
// between handles only through MoveFrom; copying the Handle struct by
// value would create two owners for one slot and is not supported.
type Handle[T any] struct {
	pool *Pool[T]
	obj  *T
}

// Get returns the owned object, or nil if the handle is empty.
func (h *Handle[T]) Get() *T {
	if h == nil {
		return nil
	}
	return h.obj
}

// Valid reports whether the handle currently owns a live object.
func (h *Handle[T]) Valid() bool {
	return h != nil && h.obj != nil
}

// Reset destructs the owned object and returns its slot to the pool.
// Resetting an empty handle is a no-op, so Reset is safe to defer and to
// call again after a move or Detach.
func (h *Handle[T]) Reset() {
	if h == nil || h.obj == nil {
		return
	}
	pool, obj := h.pool, h.obj
	h.pool, h.obj = nil, nil

	pool.logfmt("[PoolHandle][DESTROY] object=%#x", uintptr(unsafe.Pointer(obj)))
	pool.destroy(obj)
}

// Detach disowns the object without destructing it and empties the
// handle. The pool still counts the object as live; the caller assumes
// responsibility for handing the returned pointer to Pool.Reclaim.
func (h *Handle[T]) Detach() *T {
	if h == nil || h.obj == nil {
		return nil
	}
	obj := h.obj
	h.pool, h.obj = nil, nil
	return obj
}

// MoveFrom transfers ownership from other to h and empties other. If h
// already owns an object, that object is destructed first. Moving a
// handle onto itself is a no-op.
func (h *Handle[T]) MoveFrom(other *Handle[T]) {
	if h == other || other == nil {
		return
	}
	h.Reset()
	h.pool, h.obj = other.pool, other.obj
	other.pool, other.obj = nil, nil
}
