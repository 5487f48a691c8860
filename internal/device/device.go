// Package device provides the device model and memory primitives for
// the zero runtime: device enumeration, a pluggable allocator, raw
// aligned allocation, and synchronization stubs for future backends.
package device

// Device identifies where tensor memory lives.
type Device uint8

// Supported compute devices. Only CPU has a working allocator and
// kernel suite in the core runtime; GPU and NPU are placeholders for
// future backends.
const (
	CPU Device = iota
	GPU
	NPU
)

// String returns a short human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "cpu"
	case GPU:
		return "gpu"
	case NPU:
		return "npu"
	default:
		return "unknown"
	}
}

// Available reports whether the device can actually allocate and
// execute in this build. CPU is always available.
func (d Device) Available() bool {
	return d == CPU
}
