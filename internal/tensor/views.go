package tensor

import (
	"unsafe"

	"github.com/zero-ml/zero/internal/device"
)

// View algebra. Every operation here is an O(1) metadata transform
// over shared storage; results never own data. Clone is the one
// exception and is the only tensor operation that copies elements.

// CanReshape reports whether Reshape to newShape is defined: the
// source must be contiguous and the element counts must match.
func (t *Tensor) CanReshape(newShape Shape) bool {
	return t.IsContiguous() && newShape.Valid() && newShape.Numel() == t.Numel()
}

// Reshape returns a view with a new shape. The caller is expected to
// have checked CanReshape; strides are recomputed only when the source
// is contiguous, and reshaping a non-contiguous tensor leaves stale
// strides behind.
func (t *Tensor) Reshape(newShape Shape) Tensor {
	if !newShape.Valid() {
		return Empty()
	}

	out := *t
	out.owns = false
	out.ndim = len(newShape)
	copy(out.shape[:], newShape)

	if t.IsContiguous() {
		out.setContiguousStrides()
	}
	return out
}

// Transpose swaps the two innermost dimensions. Rank below 2 is
// returned unchanged (as a non-owning copy).
func (t *Tensor) Transpose() Tensor {
	out := *t
	out.owns = false
	if t.ndim < 2 {
		return out
	}

	last, secondLast := t.ndim-1, t.ndim-2
	out.shape[last], out.shape[secondLast] = t.shape[secondLast], t.shape[last]
	out.strides[last], out.strides[secondLast] = t.strides[secondLast], t.strides[last]
	return out
}

// CanSlice reports whether Slice(dim, start, end) is in range.
func (t *Tensor) CanSlice(dim int, start, end int64) bool {
	if dim < 0 || dim >= t.ndim {
		return false
	}
	return start >= 0 && start <= end && end <= t.shape[dim]
}

// Slice narrows one dimension to [start, end), advancing the data
// pointer. The result aliases the source buffer. Out-of-range
// arguments yield an empty tensor.
func (t *Tensor) Slice(dim int, start, end int64) Tensor {
	if !t.CanSlice(dim, start, end) {
		return Empty()
	}

	out := *t
	out.owns = false
	out.data = unsafe.Add(t.data, start*t.strides[dim])
	out.shape[dim] = end - start
	return out
}

// Squeeze removes every dimension of extent 1, compacting the shape
// and stride arrays.
func (t *Tensor) Squeeze() Tensor {
	out := *t
	out.owns = false

	ndim := 0
	for i := 0; i < t.ndim; i++ {
		if t.shape[i] != 1 {
			out.shape[ndim] = t.shape[i]
			out.strides[ndim] = t.strides[i]
			ndim++
		}
	}
	out.ndim = ndim
	return out
}

// SqueezeDim removes one specific dimension of extent 1. Any other
// dimension is left alone and the tensor is returned unchanged (still
// non-owning).
func (t *Tensor) SqueezeDim(dim int) Tensor {
	out := *t
	out.owns = false
	if dim < 0 || dim >= t.ndim || t.shape[dim] != 1 {
		return out
	}

	for i := dim; i < t.ndim-1; i++ {
		out.shape[i] = t.shape[i+1]
		out.strides[i] = t.strides[i+1]
	}
	out.ndim = t.ndim - 1
	return out
}

// Unsqueeze inserts a dimension of extent 1 at dim, shifting later
// dimensions. A dim out of range, or a tensor already at MaxDims, is
// returned unchanged.
func (t *Tensor) Unsqueeze(dim int) Tensor {
	out := *t
	out.owns = false
	if dim < 0 || dim > t.ndim || t.ndim >= MaxDims {
		return out
	}

	out.ndim = t.ndim + 1
	for i := out.ndim - 1; i > dim; i-- {
		out.shape[i] = t.shape[i-1]
		out.strides[i] = t.strides[i-1]
	}
	out.shape[dim] = 1
	if dim < t.ndim {
		out.strides[dim] = t.strides[dim]
	} else {
		out.strides[dim] = int64(t.dtype.Size())
	}
	return out
}

// Permute reorders dimensions by an explicit permutation. The
// permutation must name each dimension exactly once; anything else
// yields an empty tensor.
func (t *Tensor) Permute(perm []int) Tensor {
	if len(perm) != t.ndim {
		return Empty()
	}
	var seen [MaxDims]bool
	for _, p := range perm {
		if p < 0 || p >= t.ndim || seen[p] {
			return Empty()
		}
		seen[p] = true
	}

	out := *t
	out.owns = false
	for i, p := range perm {
		out.shape[i] = t.shape[p]
		out.strides[i] = t.strides[p]
	}
	return out
}

// Expand produces a broadcast view of newShape without copying.
// Dimensions absent from the source, or present with extent 1, get
// stride 0, so one stored element backs many logical elements; writes
// through an expanded view alias them all and callers must treat the
// view as read-only.
func (t *Tensor) Expand(newShape Shape) Tensor {
	if !newShape.Valid() || len(newShape) < t.ndim {
		return Empty()
	}

	out := Empty()
	out.data = t.data
	out.dtype = t.dtype
	out.device = t.device
	out.ndim = len(newShape)
	copy(out.shape[:], newShape)

	offset := len(newShape) - t.ndim
	for i := 0; i < out.ndim; i++ {
		src := i - offset
		switch {
		case src < 0:
			out.strides[i] = 0
		case t.shape[src] == 1:
			out.strides[i] = 0
		default:
			out.strides[i] = t.strides[src]
		}
	}
	return out
}

// Flatten reshapes to rank 1 with every element in place.
func (t *Tensor) Flatten() Tensor {
	return t.Reshape(Shape{t.Numel()})
}

// Clone allocates fresh contiguous storage of the same shape, dtype,
// and device, and byte-copies the source into it. The result always
// owns its storage.
func (t *Tensor) Clone() Tensor {
	out := Alloc(t.Shape(), t.dtype, t.device)
	if out.data != nil && t.data != nil {
		device.Copy(out.data, t.data, int(t.Nbytes()))
	}
	return out
}

// To deep-copies the tensor to the target device. Same-device is
// equivalent to Clone; the only implemented cross-device path is
// CPU to CPU, and every other combination yields an empty tensor.
func (t *Tensor) To(dev device.Device) Tensor {
	if dev == t.device {
		return t.Clone()
	}

	out := Alloc(t.Shape(), t.dtype, dev)
	if out.data == nil {
		return Empty()
	}
	if !device.CopyBetween(out.data, t.data, int(t.Nbytes()), dev, t.device) {
		out.Free()
		return Empty()
	}
	return out
}
