// Package ops implements the numeric kernel suite of the zero runtime:
// elementwise unary/binary/scalar kernels, the GEMM family, and
// reductions.
//
// Every kernel operates only on CPU-resident F32 tensors (integer
// outputs for argmax aside); any other device or dtype combination is
// a silent no-op that leaves the output untouched. Dispatch over
// devices and dtypes belongs to the layer above this core, and callers
// are responsible for shape validation. Kernels never allocate or free
// tensor storage.
package ops

import (
	"github.com/chewxy/math32"

	"github.com/zero-ml/zero/internal/device"
	"github.com/zero-ml/zero/internal/tensor"
)

// ElementwiseOp identifies an elementwise kernel.
type ElementwiseOp uint8

// Elementwise operation kinds. Add through Div are binary; the rest
// are unary and shape-preserving.
const (
	OpAdd ElementwiseOp = iota
	OpSub
	OpMul
	OpDiv
	OpNeg
	OpAbs
	OpExp
	OpLog
	OpSqrt
	OpSin
	OpCos
	OpTanh
	OpRelu    // max(0, x)
	OpSigmoid // 1 / (1 + exp(-x))
)

func onCPU(ts ...*tensor.Tensor) bool {
	for _, t := range ts {
		if t.Device() != device.CPU {
			return false
		}
	}
	return true
}

func allF32(ts ...*tensor.Tensor) bool {
	for _, t := range ts {
		if t.DType() != tensor.F32 {
			return false
		}
	}
	return true
}

// UnaryOp applies op to every element of in, writing to out. Input and
// output must have equal element counts and rank; in-place operation
// (out aliasing in) is supported.
func UnaryOp(in, out *tensor.Tensor, op ElementwiseOp) {
	if !onCPU(in, out) || !allF32(in, out) {
		return
	}
	if in.Data() == nil || out.Data() == nil {
		return
	}
	if in.Numel() != out.Numel() || in.Ndim() != out.Ndim() {
		return
	}

	src := in.Float32s()
	dst := out.Float32s()

	switch op {
	case OpNeg:
		for i, v := range src {
			dst[i] = -v
		}
	case OpAbs:
		for i, v := range src {
			dst[i] = math32.Abs(v)
		}
	case OpExp:
		for i, v := range src {
			dst[i] = math32.Exp(v)
		}
	case OpLog:
		for i, v := range src {
			dst[i] = math32.Log(v)
		}
	case OpSqrt:
		for i, v := range src {
			dst[i] = math32.Sqrt(v)
		}
	case OpSin:
		for i, v := range src {
			dst[i] = math32.Sin(v)
		}
	case OpCos:
		for i, v := range src {
			dst[i] = math32.Cos(v)
		}
	case OpTanh:
		for i, v := range src {
			dst[i] = math32.Tanh(v)
		}
	case OpRelu:
		for i, v := range src {
			if v > 0 {
				dst[i] = v
			} else {
				dst[i] = 0
			}
		}
	case OpSigmoid:
		for i, v := range src {
			dst[i] = 1 / (1 + math32.Exp(-v))
		}
	}
}

// BinaryOp applies op pairwise over a and b, writing to out. Two shape
// cases are handled: equal element counts, and a single-element right
// operand broadcast across a. Any other combination leaves out
// untouched; general broadcasting is the caller's job via Expand.
func BinaryOp(a, b, out *tensor.Tensor, op ElementwiseOp) {
	if !onCPU(a, b, out) || !allF32(a, b, out) {
		return
	}
	if a.Data() == nil || b.Data() == nil || out.Data() == nil {
		return
	}
	if out.Numel() != a.Numel() {
		return
	}

	av := a.Float32s()
	dst := out.Float32s()

	switch {
	case a.Numel() == b.Numel():
		bv := b.Float32s()
		switch op {
		case OpAdd:
			for i := range dst {
				dst[i] = av[i] + bv[i]
			}
		case OpSub:
			for i := range dst {
				dst[i] = av[i] - bv[i]
			}
		case OpMul:
			for i := range dst {
				dst[i] = av[i] * bv[i]
			}
		case OpDiv:
			for i := range dst {
				dst[i] = av[i] / bv[i]
			}
		}
	case b.Numel() == 1:
		bval := b.Float32s()[0]
		switch op {
		case OpAdd:
			for i := range dst {
				dst[i] = av[i] + bval
			}
		case OpSub:
			for i := range dst {
				dst[i] = av[i] - bval
			}
		case OpMul:
			for i := range dst {
				dst[i] = av[i] * bval
			}
		case OpDiv:
			for i := range dst {
				dst[i] = av[i] / bval
			}
		}
	}
}

// ScalarOp applies a Scalar operand to every element of in, writing to
// out. The scalar converts to float32 via its lossy accessor.
func ScalarOp(in *tensor.Tensor, s tensor.Scalar, out *tensor.Tensor, op ElementwiseOp) {
	if !onCPU(in, out) || !allF32(in, out) {
		return
	}
	if in.Data() == nil || out.Data() == nil {
		return
	}
	if out.Numel() != in.Numel() {
		return
	}

	src := in.Float32s()
	dst := out.Float32s()
	sv := s.ToF32()

	switch op {
	case OpAdd:
		for i, v := range src {
			dst[i] = v + sv
		}
	case OpSub:
		for i, v := range src {
			dst[i] = v - sv
		}
	case OpMul:
		for i, v := range src {
			dst[i] = v * sv
		}
	case OpDiv:
		for i, v := range src {
			dst[i] = v / sv
		}
	}
}

// Convenience wrappers.

// Add computes out = a + b elementwise.
func Add(a, b, out *tensor.Tensor) { BinaryOp(a, b, out, OpAdd) }

// Sub computes out = a - b elementwise.
func Sub(a, b, out *tensor.Tensor) { BinaryOp(a, b, out, OpSub) }

// Mul computes out = a * b elementwise.
func Mul(a, b, out *tensor.Tensor) { BinaryOp(a, b, out, OpMul) }

// Div computes out = a / b elementwise.
func Div(a, b, out *tensor.Tensor) { BinaryOp(a, b, out, OpDiv) }

// Neg computes out = -in.
func Neg(in, out *tensor.Tensor) { UnaryOp(in, out, OpNeg) }

// Abs computes out = |in|.
func Abs(in, out *tensor.Tensor) { UnaryOp(in, out, OpAbs) }

// Exp computes out = e^in.
func Exp(in, out *tensor.Tensor) { UnaryOp(in, out, OpExp) }

// Log computes the natural logarithm.
func Log(in, out *tensor.Tensor) { UnaryOp(in, out, OpLog) }

// Sqrt computes the square root.
func Sqrt(in, out *tensor.Tensor) { UnaryOp(in, out, OpSqrt) }

// Sin computes the sine.
func Sin(in, out *tensor.Tensor) { UnaryOp(in, out, OpSin) }

// Cos computes the cosine.
func Cos(in, out *tensor.Tensor) { UnaryOp(in, out, OpCos) }

// Tanh computes the hyperbolic tangent.
func Tanh(in, out *tensor.Tensor) { UnaryOp(in, out, OpTanh) }

// Relu computes max(0, x) per element.
func Relu(in, out *tensor.Tensor) { UnaryOp(in, out, OpRelu) }

// Sigmoid computes 1/(1+e^-x) per element.
func Sigmoid(in, out *tensor.Tensor) { UnaryOp(in, out, OpSigmoid) }
