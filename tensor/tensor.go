// Copyright 2026 The Zero ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the zero runtime's value
// types: the strided Tensor, the Scalar immediate, the DType table,
// and the shape/broadcast algebra.
//
// Tensors are plain values with explicit ownership. Allocation and
// release are manual:
//
//	t := tensor.Alloc(tensor.Shape{2, 3}, tensor.F32, device.CPU)
//	defer t.Free()
//
// View operations (Reshape, Transpose, Slice, Expand, ...) are O(1)
// metadata transforms that never own or copy storage; Clone is the
// only copying operation.
package tensor

import (
	"unsafe"

	"github.com/zero-ml/zero/internal/device"
	"github.com/zero-ml/zero/internal/tensor"
)

// MaxDims is the maximum supported tensor rank.
const MaxDims = tensor.MaxDims

// DType is the element kind of a tensor or scalar.
type DType = tensor.DType

// Supported element kinds.
const (
	F16  DType = tensor.F16
	F32  DType = tensor.F32
	F64  DType = tensor.F64
	I8   DType = tensor.I8
	I16  DType = tensor.I16
	I32  DType = tensor.I32
	I64  DType = tensor.I64
	U8   DType = tensor.U8
	U16  DType = tensor.U16
	U32  DType = tensor.U32
	U64  DType = tensor.U64
	Bool DType = tensor.Bool
	BF16 DType = tensor.BF16
)

// Shape holds the extent of each tensor dimension.
type Shape = tensor.Shape

// Tensor is the strided-array value type. See the internal package
// documentation on github.com/zero-ml/zero/internal/tensor.Tensor for
// the full ownership and view contract.
type Tensor = tensor.Tensor

// Scalar is a single immediate value of one element kind.
type Scalar = tensor.Scalar

// Element is the constraint for Go types a Scalar can be built from.
type Element = tensor.Element

// Empty returns a tensor with no storage.
func Empty() Tensor { return tensor.Empty() }

// Alloc creates a tensor with freshly allocated contiguous storage on
// the given device. Check Data or Valid for allocation failure.
func Alloc(shape Shape, dt DType, dev device.Device) Tensor {
	return tensor.Alloc(shape, dt, dev)
}

// View wraps existing memory with explicit shape/stride metadata; the
// result never owns it.
func View(data unsafe.Pointer, shape Shape, strides []int64, dt DType, dev device.Device) Tensor {
	return tensor.View(data, shape, strides, dt, dev)
}

// Wrap views external memory as a contiguous tensor; the result never
// owns it.
func Wrap(data unsafe.Pointer, shape Shape, dt DType, dev device.Device) Tensor {
	return tensor.Wrap(data, shape, dt, dev)
}

// FromScalar allocates a rank-0 tensor holding the scalar's value.
func FromScalar(s Scalar, dev device.Device) Tensor {
	return tensor.FromScalar(s, dev)
}

// Zeros allocates a tensor with zero-filled storage.
func Zeros(shape Shape, dt DType, dev device.Device) Tensor {
	return tensor.Zeros(shape, dt, dev)
}

// Full allocates a tensor of the scalar's dtype with every element set
// to the scalar's value.
func Full(shape Shape, s Scalar, dev device.Device) Tensor {
	return tensor.Full(shape, s, dev)
}

// Arange allocates a rank-1 F32 tensor holding 0, 1, ..., n-1.
func Arange(n int64, dev device.Device) Tensor {
	return tensor.Arange(n, dev)
}

// Randn allocates an F32 tensor filled from the standard normal
// distribution, honoring the global seed in deterministic mode.
func Randn(shape Shape, dev device.Device) Tensor {
	return tensor.Randn(shape, dev)
}

// NewScalar builds a Scalar from a concrete Go value.
func NewScalar[T Element](v T) Scalar { return tensor.NewScalar(v) }

// NewScalarF16 builds a half-precision scalar from a float32 value.
func NewScalarF16(v float32) Scalar { return tensor.NewScalarF16(v) }

// NewScalarBF16 builds a brain-float scalar from a float32 value.
func NewScalarBF16(v float32) Scalar { return tensor.NewScalarBF16(v) }

// ScalarFromF16Bits builds a half-precision scalar from raw bits.
func ScalarFromF16Bits(bits uint16) Scalar { return tensor.ScalarFromF16Bits(bits) }

// ScalarFromBF16Bits builds a brain-float scalar from raw bits.
func ScalarFromBF16Bits(bits uint16) Scalar { return tensor.ScalarFromBF16Bits(bits) }

// ScalarFromBytes reinterprets raw bytes as a scalar of the given
// kind.
func ScalarFromBytes(src []byte, dt DType) Scalar {
	return tensor.ScalarFromBytes(src, dt)
}

// ContiguousStrides computes row-major byte strides for a shape.
func ContiguousStrides(shape Shape, dt DType) []int64 {
	return tensor.ContiguousStrides(shape, dt)
}

// BroadcastShape computes the NumPy-style broadcast of two shapes,
// reporting false when they are incompatible.
func BroadcastShape(a, b Shape) (Shape, bool) {
	return tensor.BroadcastShape(a, b)
}

// CanBroadcast reports whether two shapes are broadcast-compatible.
func CanBroadcast(a, b Shape) bool { return tensor.CanBroadcast(a, b) }

// SetSeed sets the global seed and enables deterministic mode.
func SetSeed(seed uint64) { tensor.SetSeed(seed) }

// Seed returns the current global seed.
func Seed() uint64 { return tensor.Seed() }

// Deterministic reports whether deterministic mode is enabled.
func Deterministic() bool { return tensor.Deterministic() }

// SetDeterministic toggles deterministic mode without changing the
// seed.
func SetDeterministic(enabled bool) { tensor.SetDeterministic(enabled) }
