// Copyright 2026 The Zero ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package device exposes the runtime's device model and raw memory
// primitives: the Device enum, the pluggable Allocator, typed-free
// byte-level Alloc/Free/Copy helpers, and synchronization stubs that
// keep callers correct when asynchronous backends arrive.
package device

import (
	"unsafe"

	"github.com/zero-ml/zero/internal/device"
)

// Device identifies where tensor storage lives.
type Device = device.Device

// Known device kinds. Only CPU is available in this build.
const (
	CPU Device = device.CPU
	GPU Device = device.GPU
	NPU Device = device.NPU
)

// Allocator is the pluggable allocation capability used by the tensor
// layer.
type Allocator = device.Allocator

// SystemAllocator is the default Go-heap-backed allocator.
type SystemAllocator = device.SystemAllocator

// NewSystemAllocator returns an empty system allocator.
func NewSystemAllocator() *SystemAllocator { return device.NewSystemAllocator() }

// Default returns the process-wide allocator.
func Default() Allocator { return device.Default() }

// SetDefault installs a custom allocator. Call at startup, before any
// tensors exist.
func SetDefault(a Allocator) { device.SetDefault(a) }

// Alloc allocates size bytes aligned to alignment on dev through the
// default allocator. Returns nil on zero size, unavailable device, or
// allocation failure.
func Alloc(size, alignment int, dev Device) unsafe.Pointer {
	return device.Alloc(size, alignment, dev)
}

// AllocZero is Alloc followed by a zero fill.
func AllocZero(size, alignment int, dev Device) unsafe.Pointer {
	return device.AllocZero(size, alignment, dev)
}

// Free releases memory obtained from Alloc. Free(nil, dev) is a no-op.
func Free(ptr unsafe.Pointer, dev Device) { device.Free(ptr, dev) }

// Copy moves n bytes between two locations on the same device.
func Copy(dst, src unsafe.Pointer, n int) { device.Copy(dst, src, n) }

// CopyDir classifies a transfer by its endpoints.
type CopyDir = device.CopyDir

// Transfer directions.
const (
	HostToHost     CopyDir = device.HostToHost
	HostToDevice   CopyDir = device.HostToDevice
	DeviceToHost   CopyDir = device.DeviceToHost
	DeviceToDevice CopyDir = device.DeviceToDevice
)

// Direction returns the transfer direction between two devices.
func Direction(src, dst Device) CopyDir { return device.Direction(src, dst) }

// CopyBetween performs a synchronous copy of n bytes between devices,
// reporting whether the transfer happened.
func CopyBetween(dst, src unsafe.Pointer, n int, dstDev, srcDev Device) bool {
	return device.CopyBetween(dst, src, n, dstDev, srcDev)
}

// Sync blocks until all work on dev has completed.
func Sync(dev Device) { device.Sync(dev) }

// Stream is an execution-stream handle.
type Stream = device.Stream

// NewStream creates a stream bound to dev.
func NewStream(dev Device) Stream { return device.NewStream(dev) }
