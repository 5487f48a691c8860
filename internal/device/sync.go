package device

import "unsafe"

// CopyDir classifies a transfer by its endpoints.
type CopyDir uint8

const (
	HostToHost CopyDir = iota
	HostToDevice
	DeviceToHost
	DeviceToDevice
)

// Direction returns the transfer direction between two devices.
func Direction(src, dst Device) CopyDir {
	switch {
	case src == CPU && dst == CPU:
		return HostToHost
	case src == CPU:
		return HostToDevice
	case dst == CPU:
		return DeviceToHost
	default:
		return DeviceToDevice
	}
}

// CopyBetween performs a synchronous copy of n bytes between devices.
// Only host-to-host transfers are implemented; every other direction
// reports failure until a non-CPU backend exists.
func CopyBetween(dst, src unsafe.Pointer, n int, dstDev, srcDev Device) bool {
	if Direction(srcDev, dstDev) != HostToHost {
		return false
	}
	Copy(dst, src, n)
	return true
}

// Sync blocks until all work on dev has completed. CPU execution is
// always complete when a kernel returns, so this is a no-op; it exists
// so callers written against future async backends stay correct.
func Sync(dev Device) {
	if dev == CPU {
		return
	}
}

// Stream is an execution-stream handle. The CPU backend has no
// asynchronous work, so streams carry no state beyond their device.
type Stream struct {
	handle uint64
	device Device
}

// NewStream creates a stream bound to dev.
func NewStream(dev Device) Stream {
	return Stream{device: dev}
}

// Device returns the device the stream is bound to.
func (s Stream) Device() Device { return s.device }

// Sync blocks until all work submitted to the stream has completed.
func (s Stream) Sync() {
	Sync(s.device)
}

// Destroy releases the stream handle.
func (s *Stream) Destroy() {
	s.handle = 0
}
