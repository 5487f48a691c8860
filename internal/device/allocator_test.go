package device

import (
	"testing"
	"unsafe"
)

func TestSystemAllocatorAlignment(t *testing.T) {
	a := NewSystemAllocator()
	for _, alignment := range []int{1, 2, 4, 8, 16, 64} {
		ptr := a.Alloc(128, alignment, CPU)
		if ptr == nil {
			t.Fatalf("Alloc(128, %d) returned nil", alignment)
		}
		if uintptr(ptr)%uintptr(alignment) != 0 {
			t.Errorf("pointer %p not aligned to %d", ptr, alignment)
		}
		a.Free(ptr, CPU)
	}
}

func TestSystemAllocatorZeroSize(t *testing.T) {
	a := NewSystemAllocator()
	if ptr := a.Alloc(0, 8, CPU); ptr != nil {
		t.Error("zero-size allocation should return nil")
	}
	if ptr := a.Alloc(-4, 8, CPU); ptr != nil {
		t.Error("negative-size allocation should return nil")
	}
}

func TestSystemAllocatorUnavailableDevice(t *testing.T) {
	a := NewSystemAllocator()
	if ptr := a.Alloc(64, 8, GPU); ptr != nil {
		t.Error("allocation on unavailable device should return nil")
	}
}

func TestSystemAllocatorFreeSafety(t *testing.T) {
	a := NewSystemAllocator()
	a.Free(nil, CPU) // must not panic

	ptr := a.Alloc(32, 8, CPU)
	a.Free(ptr, CPU)
	a.Free(ptr, CPU) // double free is a no-op

	var x int64
	a.Free(unsafe.Pointer(&x), CPU) // unknown pointer is a no-op
}

func TestSystemAllocatorWriteReadBack(t *testing.T) {
	a := NewSystemAllocator()
	ptr := a.Alloc(16, 8, CPU)
	defer a.Free(ptr, CPU)

	buf := unsafe.Slice((*byte)(ptr), 16)
	for i := range buf {
		buf[i] = byte(i)
	}
	for i := range buf {
		if buf[i] != byte(i) {
			t.Fatalf("byte %d = %d after write", i, buf[i])
		}
	}
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	if orig.Name() != "system" {
		t.Errorf("default allocator name = %q, want %q", orig.Name(), "system")
	}

	custom := NewSystemAllocator()
	SetDefault(custom)
	if Default() != Allocator(custom) {
		t.Error("SetDefault did not install the allocator")
	}

	SetDefault(nil)
	if Default() != Allocator(custom) {
		t.Error("SetDefault(nil) should be ignored")
	}
}

func TestMemoryHelpers(t *testing.T) {
	ptr := AllocZero(64, 8, CPU)
	if ptr == nil {
		t.Fatal("AllocZero returned nil")
	}
	defer Free(ptr, CPU)

	buf := unsafe.Slice((*byte)(ptr), 64)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("AllocZero byte %d = %d, want 0", i, b)
		}
	}

	src := Alloc(8, 8, CPU)
	defer Free(src, CPU)
	unsafe.Slice((*byte)(src), 8)[3] = 0xAB
	Copy(ptr, src, 8)
	if buf[3] != 0xAB {
		t.Error("Copy did not move bytes")
	}

	Copy(nil, src, 8)
	Copy(ptr, nil, 8)
	Copy(ptr, src, 0)
}
