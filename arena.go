package objpool

import "unsafe"

// freeSlot is the link node threaded through unused slot storage. A slot
// holds either a live object or a freeSlot, never both.
type freeSlot struct {
	next *freeSlot
}

// slotLayout describes the slot geometry for a pooled type: the stride
// between consecutive slots and the alignment every slot must satisfy.
type slotLayout struct {
	size  uintptr // multiple of align
	align uintptr
}

// layoutOf computes the slot geometry for T. Each slot must be able to
// store either a T or a freeSlot and satisfy the stricter of the two
// alignment requirements.
func layoutOf[T any]() slotLayout {
	var zero T
	var node freeSlot

	size := unsafe.Sizeof(zero)
	if unsafe.Sizeof(node) > size {
		size = unsafe.Sizeof(node)
	}
	align := unsafe.Alignof(zero)
	if unsafe.Alignof(node) > align {
		align = unsafe.Alignof(node)
	}
	return slotLayout{size: alignUp(size, align), align: align}
}

// alignUp rounds n up to the next multiple of align.
// align must be a power of two.
func alignUp(n, align uintptr) uintptr {
	mask := align - 1
	return (n + mask) & ^mask
}

// arena is the contiguous slot storage backing one pool instance. The
// buffer is over-allocated by align-1 bytes and base is rounded up so
// every slot address is a multiple of layout.align.
type arena struct {
	buf    []byte
	base   uintptr // offset of slot 0 within buf
	layout slotLayout
}

func newArena(layout slotLayout, capacity int) arena {
	total := layout.size*uintptr(capacity) + layout.align - 1
	buf := make([]byte, total)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	return arena{
		buf:    buf,
		base:   alignUp(addr, layout.align) - addr,
		layout: layout,
	}
}

// slot returns a pointer to the storage of slot i. The caller must ensure
// the arena remains reachable while the pointer is in use.
func (a *arena) slot(i int) unsafe.Pointer {
	off := a.base + a.layout.size*uintptr(i)
	return unsafe.Pointer(&a.buf[off])
}

func (a *arena) release() {
	a.buf = nil
}

func (a *arena) released() bool {
	return a.buf == nil
}

// bytes returns the size of the backing buffer, including alignment padding.
func (a *arena) bytes() int {
	return len(a.buf)
}
