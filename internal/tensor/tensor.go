package tensor

import (
	"unsafe"

	"github.com/zero-ml/zero/internal/device"
)

// MaxDims is the maximum supported tensor rank.
const MaxDims = 8

// Tensor is the strided-array value type of the runtime. It is a plain
// value, not a handle: copying a Tensor copies its metadata, and view
// operations return new values sharing the same storage. Shape and
// stride arrays have fixed capacity so view construction never touches
// the heap. Strides are byte offsets, not element counts.
//
// A Tensor owns its storage only when created by Alloc, FromScalar, or
// Clone; every view is non-owning. Free releases owned storage and is
// idempotent.
type Tensor struct {
	data    unsafe.Pointer
	dtype   DType
	device  device.Device
	ndim    int
	shape   [MaxDims]int64
	strides [MaxDims]int64
	owns    bool
}

// Empty returns a tensor with no storage: nil data, rank 0, F32, CPU.
func Empty() Tensor {
	return Tensor{dtype: F32, device: device.CPU}
}

// ContiguousStrides computes row-major byte strides for a shape. This
// is the single stride routine shared by Alloc, Wrap, Reshape, and the
// per-batch views built by the batched matmul kernel.
func ContiguousStrides(shape Shape, dt DType) []int64 {
	strides := make([]int64, len(shape))
	stride := int64(dt.Size())
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}
	return strides
}

func (t *Tensor) setContiguousStrides() {
	stride := int64(t.dtype.Size())
	for i := t.ndim - 1; i >= 0; i-- {
		t.strides[i] = stride
		stride *= t.shape[i]
	}
}

// Alloc creates a tensor with freshly allocated contiguous storage.
// On allocation failure (including unavailable devices) the result has
// nil data and does not own storage; callers check Data or Valid.
func Alloc(shape Shape, dt DType, dev device.Device) Tensor {
	if !shape.Valid() {
		return Empty()
	}

	t := Empty()
	t.dtype = dt
	t.device = dev
	t.ndim = len(shape)
	copy(t.shape[:], shape)
	t.setContiguousStrides()

	t.data = device.Alloc(int(t.Nbytes()), dt.Alignment(), dev)
	t.owns = t.data != nil
	return t
}

// View wraps existing memory with caller-supplied shape and stride
// metadata. The result never owns the memory.
func View(data unsafe.Pointer, shape Shape, strides []int64, dt DType, dev device.Device) Tensor {
	if !shape.Valid() || len(strides) != len(shape) {
		return Empty()
	}

	t := Empty()
	t.data = data
	t.dtype = dt
	t.device = dev
	t.ndim = len(shape)
	copy(t.shape[:], shape)
	copy(t.strides[:], strides)
	return t
}

// Wrap views external memory as a contiguous tensor, computing
// row-major strides for the given shape. Intended for interop with
// buffers the runtime did not allocate; the result never owns them.
func Wrap(data unsafe.Pointer, shape Shape, dt DType, dev device.Device) Tensor {
	if !shape.Valid() {
		return Empty()
	}

	t := Empty()
	t.data = data
	t.dtype = dt
	t.device = dev
	t.ndim = len(shape)
	copy(t.shape[:], shape)
	t.setContiguousStrides()
	return t
}

// FromScalar allocates a rank-0 tensor holding the scalar's value.
func FromScalar(s Scalar, dev device.Device) Tensor {
	t := Empty()
	t.dtype = s.DType()
	t.device = dev

	t.data = device.Alloc(s.DType().Size(), s.DType().Alignment(), dev)
	t.owns = t.data != nil
	if t.data != nil {
		s.ToBytes(unsafe.Slice((*byte)(t.data), s.DType().Size()))
	}
	return t
}

// ToScalar extracts the single element of a rank-0 tensor. Any other
// rank, or missing storage, yields the default zero scalar.
func (t *Tensor) ToScalar() Scalar {
	if t.ndim != 0 || t.data == nil {
		return defaultScalar()
	}
	return ScalarFromBytes(unsafe.Slice((*byte)(t.data), t.dtype.Size()), t.dtype)
}

// Data returns the address of the first element, nil for empty
// tensors.
func (t *Tensor) Data() unsafe.Pointer { return t.data }

// DType returns the element kind.
func (t *Tensor) DType() DType { return t.dtype }

// Device returns where the storage lives.
func (t *Tensor) Device() device.Device { return t.device }

// Ndim returns the rank (0 for a scalar-shaped tensor).
func (t *Tensor) Ndim() int { return t.ndim }

// Owns reports whether Free would release the storage.
func (t *Tensor) Owns() bool { return t.owns }

// Dim returns the extent of dimension i.
func (t *Tensor) Dim(i int) int64 { return t.shape[i] }

// Stride returns the byte stride of dimension i.
func (t *Tensor) Stride(i int) int64 { return t.strides[i] }

// Shape returns a copy of the shape.
func (t *Tensor) Shape() Shape {
	return Shape(t.shape[:t.ndim]).Clone()
}

// Strides returns a copy of the byte strides.
func (t *Tensor) Strides() []int64 {
	out := make([]int64, t.ndim)
	copy(out, t.strides[:t.ndim])
	return out
}

// Numel returns the total element count (1 for rank 0).
func (t *Tensor) Numel() int64 {
	if t.ndim == 0 {
		return 1
	}
	n := int64(1)
	for i := 0; i < t.ndim; i++ {
		n *= t.shape[i]
	}
	return n
}

// Nbytes returns the total storage size in bytes.
func (t *Tensor) Nbytes() int64 {
	return t.Numel() * int64(t.dtype.Size())
}

// IsContiguous reports whether the tensor is laid out densely in
// row-major order: scanning dimensions last to first, each stride
// equals the accumulated trailing byte size.
func (t *Tensor) IsContiguous() bool {
	expected := int64(t.dtype.Size())
	for i := t.ndim - 1; i >= 0; i-- {
		if t.strides[i] != expected {
			return false
		}
		expected *= t.shape[i]
	}
	return true
}

// IsRowMajor is an alias for IsContiguous.
func (t *Tensor) IsRowMajor() bool { return t.IsContiguous() }

// IsColumnMajor reports dense column-major layout: the first dimension
// is fastest-varying.
func (t *Tensor) IsColumnMajor() bool {
	expected := int64(t.dtype.Size())
	for i := 0; i < t.ndim; i++ {
		if t.strides[i] != expected {
			return false
		}
		expected *= t.shape[i]
	}
	return true
}

// IsDense reports whether the tensor is contiguous in either row-major
// or column-major order.
func (t *Tensor) IsDense() bool {
	return t.IsContiguous() || t.IsColumnMajor()
}

// IsScalar reports rank 0.
func (t *Tensor) IsScalar() bool { return t.ndim == 0 }

// IsVector reports rank 1.
func (t *Tensor) IsVector() bool { return t.ndim == 1 }

// IsMatrix reports rank 2.
func (t *Tensor) IsMatrix() bool { return t.ndim == 2 }

// SameShape reports whether both tensors have identical rank and
// extents.
func (t *Tensor) SameShape(other *Tensor) bool {
	if t.ndim != other.ndim {
		return false
	}
	for i := 0; i < t.ndim; i++ {
		if t.shape[i] != other.shape[i] {
			return false
		}
	}
	return true
}

// BroadcastableWith reports whether the two shapes are compatible
// under trailing-dimension broadcast rules.
func (t *Tensor) BroadcastableWith(other *Tensor) bool {
	return CanBroadcast(Shape(t.shape[:t.ndim]), Shape(other.shape[:other.ndim]))
}

// Valid reports whether the tensor satisfies the structural
// invariants: rank within bounds, available device, non-negative
// extents, data present whenever an owning tensor has elements, and a
// non-zero stride on every dimension with extent above 1. Broadcast
// views built by Expand intentionally break the last rule and are not
// expected to pass.
func (t *Tensor) Valid() bool {
	if t.ndim < 0 || t.ndim > MaxDims {
		return false
	}
	if !t.device.Available() {
		return false
	}
	for i := 0; i < t.ndim; i++ {
		if t.shape[i] < 0 {
			return false
		}
		if t.shape[i] > 1 && t.strides[i] == 0 {
			return false
		}
	}
	if t.data == nil && t.Numel() > 0 && t.owns {
		return false
	}
	return true
}

// Free releases the storage if this tensor owns it and clears the
// pointer and ownership flag. Safe to call more than once; a freed
// tensor must not be read.
func (t *Tensor) Free() {
	if t.owns && t.data != nil {
		device.Free(t.data, t.device)
		t.data = nil
		t.owns = false
	}
}

// Bytes views the storage as raw bytes. Nil when there is no data.
func (t *Tensor) Bytes() []byte {
	n := int(t.Nbytes())
	if t.data == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(t.data), n)
}

// Float32s views the storage as float32 elements. The caller is
// responsible for having checked the dtype; kernels do so before
// touching data.
func (t *Tensor) Float32s() []float32 {
	n := int(t.Numel())
	if t.data == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(t.data), n)
}

// Int32s views the storage as int32 elements.
func (t *Tensor) Int32s() []int32 {
	n := int(t.Numel())
	if t.data == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*int32)(t.data), n)
}

// Int64s views the storage as int64 elements.
func (t *Tensor) Int64s() []int64 {
	n := int(t.Numel())
	if t.data == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*int64)(t.data), n)
}
