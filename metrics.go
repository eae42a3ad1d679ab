package objpool

// PoolMetrics contains statistical information about a pool.
type PoolMetrics struct {
	Capacity     int     // Fixed number of slots
	Used         int     // Slots currently holding a live object
	Available    int     // Capacity - Used
	MaxAllocated int     // High-water mark of slots ever carved
	SlotSize     int     // Stride between slots in bytes
	SlotAlign    int     // Alignment of every slot in bytes
	ArenaBytes   int     // Size of the backing buffer, padding included
	Utilization  float64 // Ratio of used to total slots (0.0-1.0)
}

// Metrics returns a snapshot of pool statistics. The counters are read
// under a single lock acquisition, so they are consistent with each
// other even when the pool is shared.
func (p *Pool[T]) Metrics() PoolMetrics {
	p.mu.Lock()
	used := p.used
	maxAllocated := p.maxAllocated
	p.mu.Unlock()

	return PoolMetrics{
		Capacity:     p.capacity,
		Used:         used,
		Available:    p.capacity - used,
		MaxAllocated: maxAllocated,
		SlotSize:     int(p.arena.layout.size),
		SlotAlign:    int(p.arena.layout.align),
		ArenaBytes:   p.arena.bytes(),
		Utilization:  float64(used) / float64(p.capacity),
	}
}
