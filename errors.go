package objpool

import "errors"

var (
	// ErrZeroCapacity indicates a pool was constructed with capacity < 1.
	ErrZeroCapacity = errors.New("objpool: capacity must be at least 1")

	// ErrSizeOverflow indicates slot size times capacity would overflow
	// the platform's int range.
	ErrSizeOverflow = errors.New("objpool: arena size overflows")

	// ErrExhausted indicates no free slot remains. The pool stays fully
	// usable; resetting any live handle makes room for a retry.
	ErrExhausted = errors.New("objpool: pool exhausted")
)
