package device

import "unsafe"

// Alloc allocates size bytes aligned to alignment on dev through the
// default allocator. Returns nil on zero size, unavailable device, or
// allocation failure. These helpers and the allocator behind them are
// the only code in the runtime that touches the heap.
func Alloc(size, alignment int, dev Device) unsafe.Pointer {
	return Default().Alloc(size, alignment, dev)
}

// AllocZero is Alloc followed by a zero fill.
func AllocZero(size, alignment int, dev Device) unsafe.Pointer {
	ptr := Alloc(size, alignment, dev)
	if ptr != nil {
		clear(unsafe.Slice((*byte)(ptr), size))
	}
	return ptr
}

// Free releases memory obtained from Alloc. Free(nil, dev) is a no-op.
func Free(ptr unsafe.Pointer, dev Device) {
	Default().Free(ptr, dev)
}

// Copy moves n bytes between two locations on the same device.
func Copy(dst, src unsafe.Pointer, n int) {
	if dst == nil || src == nil || n <= 0 {
		return
	}
	copy(unsafe.Slice((*byte)(dst), n), unsafe.Slice((*byte)(src), n))
}
