// Package objpool implements a fixed-capacity, type-homogeneous object pool.
//
// # Overview
//
// An object pool preallocates a single arena sized for a known number of
// objects of one type T, then hands out and reclaims individual slots in
// O(1). This is particularly useful for:
//
//   - Latency-sensitive code paths where per-object heap allocation is
//     too expensive or too unpredictable
//   - Workloads with a bounded, known object count
//   - Reducing garbage collection pressure for hot, short-lived objects
//
// Unused slots are chained into a LIFO free list threaded through the
// slots' own storage, so the most recently freed slot is reused first.
//
// # Basic Usage
//
//	pool, err := objpool.New[Conn](64)
//	if err != nil {
//	    return err
//	}
//	defer pool.Release() // Clean up when done
//
//	h, err := pool.Make(func(c *Conn) error {
//	    c.ID = nextID()
//	    return c.dial()
//	})
//	if err != nil {
//	    return err
//	}
//	defer h.Reset() // Slot goes back to the pool at scope exit
//
//	h.Get().Send(msg)
//
// # Ownership Handles
//
// Make returns a *Handle, the exclusive owner of the new object. Exactly
// one handle refers to any live slot; ownership is transferred with
// MoveFrom, dropped with Reset, or detached with Detach (after which the
// raw pointer must eventually be passed to Pool.Reclaim).
//
// # Thread Safety
//
// A pool created with New is not goroutine-safe. For concurrent access,
// use NewShared:
//
//	pool, err := objpool.NewShared[Conn](64)
//
// A shared pool serializes its free list and counters with one mutex.
// The init function and Cleanup always run outside that lock.
//
// # Failure Handling
//
// Construction with capacity < 1, or with a capacity whose arena size
// would overflow, fails with ErrZeroCapacity or ErrSizeOverflow. Calling
// Make on a full pool fails with ErrExhausted; the pool stays usable and
// the call can be retried after a handle is reset. Registering a callback
// via WithErrorCallback reroutes these conditions to the callback instead
// of returning errors.
//
// If the init function passed to Make returns an error or panics, the
// reserved slot is returned to the free list and the failure propagates
// to the caller unchanged.
//
// # Important Notes
//
//   - The pool never grows, compacts or relocates live objects
//   - A pool must outlive every handle and detached pointer it issued
//   - Objects live in a raw byte arena that the garbage collector does
//     not scan. Pointer fields inside pooled objects must be kept
//     reachable elsewhere, or pool pointer-free types
//   - If *T implements Cleaner, Cleanup() runs right before the slot is
//     recycled
//
// # Metrics and Monitoring
//
// The pool provides a consistent snapshot of its counters:
//
//	m := pool.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization * 100)
//	fmt.Printf("High-water mark: %d of %d slots\n", m.MaxAllocated, m.Capacity)
package objpool
