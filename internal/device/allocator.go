package device

import (
	"sync"
	"unsafe"
)

// Allocator is the pluggable allocation capability used by the tensor
// layer. Implementations must be safe for concurrent use if a single
// instance is shared across goroutines.
type Allocator interface {
	// Alloc returns a pointer to size bytes aligned to alignment
	// (a power of two), or nil on failure. Zero size or an
	// unavailable device returns nil.
	Alloc(size, alignment int, dev Device) unsafe.Pointer

	// Free releases memory returned by Alloc. Freeing nil, or a
	// pointer this allocator does not know, is a no-op.
	Free(ptr unsafe.Pointer, dev Device)

	// Name identifies the allocator for diagnostics.
	Name() string
}

// SystemAllocator is the default allocator. It hands out aligned
// pointers into Go-managed buffers and pins each buffer in a registry
// until Free, so the garbage collector never reclaims live tensor
// storage. The registry is mutex-guarded.
type SystemAllocator struct {
	mu     sync.Mutex
	pinned map[unsafe.Pointer][]byte
}

// NewSystemAllocator returns an empty system allocator.
func NewSystemAllocator() *SystemAllocator {
	return &SystemAllocator{pinned: make(map[unsafe.Pointer][]byte)}
}

// Alloc implements Allocator.
func (a *SystemAllocator) Alloc(size, alignment int, dev Device) unsafe.Pointer {
	if size <= 0 || !dev.Available() {
		return nil
	}
	// Raise to the platform minimum pointer alignment.
	if alignment < int(unsafe.Sizeof(uintptr(0))) {
		alignment = int(unsafe.Sizeof(uintptr(0)))
	}

	// Over-allocate so an aligned offset always exists.
	buf := make([]byte, size+alignment)
	base := uintptr(unsafe.Pointer(&buf[0]))
	off := 0
	if rem := int(base % uintptr(alignment)); rem != 0 {
		off = alignment - rem
	}
	ptr := unsafe.Pointer(&buf[off])

	a.mu.Lock()
	a.pinned[ptr] = buf
	a.mu.Unlock()
	return ptr
}

// Free implements Allocator.
func (a *SystemAllocator) Free(ptr unsafe.Pointer, dev Device) {
	if ptr == nil {
		return
	}
	a.mu.Lock()
	delete(a.pinned, ptr)
	a.mu.Unlock()
}

// Name implements Allocator.
func (a *SystemAllocator) Name() string { return "system" }

var (
	defaultMu sync.RWMutex
	defaultAl Allocator = NewSystemAllocator()
)

// Default returns the process-wide allocator.
func Default() Allocator {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultAl
}

// SetDefault installs a custom allocator. It must outlive every
// allocation made through it. Call at startup, before tensors exist;
// swapping allocators under live tensors loses track of their memory.
func SetDefault(a Allocator) {
	if a == nil {
		return
	}
	defaultMu.Lock()
	defaultAl = a
	defaultMu.Unlock()
}
