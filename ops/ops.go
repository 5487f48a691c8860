// Copyright 2026 The Zero ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops exposes the runtime's numeric kernel suite: elementwise
// unary/binary/scalar kernels, the GEMM family, and reductions.
//
// Kernels are CPU- and F32-only; any other device or dtype combination
// is a silent no-op that leaves the output untouched. Shape validation
// and general broadcasting are the caller's responsibility.
package ops

import (
	"github.com/zero-ml/zero/internal/ops"
	"github.com/zero-ml/zero/internal/tensor"
)

// ElementwiseOp identifies an elementwise kernel.
type ElementwiseOp = ops.ElementwiseOp

// Elementwise operation kinds.
const (
	OpAdd     ElementwiseOp = ops.OpAdd
	OpSub     ElementwiseOp = ops.OpSub
	OpMul     ElementwiseOp = ops.OpMul
	OpDiv     ElementwiseOp = ops.OpDiv
	OpNeg     ElementwiseOp = ops.OpNeg
	OpAbs     ElementwiseOp = ops.OpAbs
	OpExp     ElementwiseOp = ops.OpExp
	OpLog     ElementwiseOp = ops.OpLog
	OpSqrt    ElementwiseOp = ops.OpSqrt
	OpSin     ElementwiseOp = ops.OpSin
	OpCos     ElementwiseOp = ops.OpCos
	OpTanh    ElementwiseOp = ops.OpTanh
	OpRelu    ElementwiseOp = ops.OpRelu
	OpSigmoid ElementwiseOp = ops.OpSigmoid
)

// ReduceOp identifies a reduction kernel.
type ReduceOp = ops.ReduceOp

// Reduction kinds.
const (
	ReduceSum  ReduceOp = ops.ReduceSum
	ReduceMax  ReduceOp = ops.ReduceMax
	ReduceMin  ReduceOp = ops.ReduceMin
	ReduceMean ReduceOp = ops.ReduceMean
	ReduceProd ReduceOp = ops.ReduceProd
)

// UnaryOp applies op to every element of in, writing to out.
func UnaryOp(in, out *tensor.Tensor, op ElementwiseOp) { ops.UnaryOp(in, out, op) }

// BinaryOp applies op pairwise over a and b, writing to out.
func BinaryOp(a, b, out *tensor.Tensor, op ElementwiseOp) { ops.BinaryOp(a, b, out, op) }

// ScalarOp applies a Scalar operand to every element of in.
func ScalarOp(in *tensor.Tensor, s tensor.Scalar, out *tensor.Tensor, op ElementwiseOp) {
	ops.ScalarOp(in, s, out, op)
}

// Add computes out = a + b elementwise.
func Add(a, b, out *tensor.Tensor) { ops.Add(a, b, out) }

// Sub computes out = a - b elementwise.
func Sub(a, b, out *tensor.Tensor) { ops.Sub(a, b, out) }

// Mul computes out = a * b elementwise.
func Mul(a, b, out *tensor.Tensor) { ops.Mul(a, b, out) }

// Div computes out = a / b elementwise.
func Div(a, b, out *tensor.Tensor) { ops.Div(a, b, out) }

// Neg computes out = -in.
func Neg(in, out *tensor.Tensor) { ops.Neg(in, out) }

// Abs computes out = |in|.
func Abs(in, out *tensor.Tensor) { ops.Abs(in, out) }

// Exp computes out = e^in.
func Exp(in, out *tensor.Tensor) { ops.Exp(in, out) }

// Log computes the natural logarithm.
func Log(in, out *tensor.Tensor) { ops.Log(in, out) }

// Sqrt computes the square root.
func Sqrt(in, out *tensor.Tensor) { ops.Sqrt(in, out) }

// Sin computes the sine.
func Sin(in, out *tensor.Tensor) { ops.Sin(in, out) }

// Cos computes the cosine.
func Cos(in, out *tensor.Tensor) { ops.Cos(in, out) }

// Tanh computes the hyperbolic tangent.
func Tanh(in, out *tensor.Tensor) { ops.Tanh(in, out) }

// Relu computes max(0, x) per element.
func Relu(in, out *tensor.Tensor) { ops.Relu(in, out) }

// Sigmoid computes 1/(1+e^-x) per element.
func Sigmoid(in, out *tensor.Tensor) { ops.Sigmoid(in, out) }

// Gemm computes C = alpha*(A@B) + beta*C for rank-2 tensors.
func Gemm(a, b, c *tensor.Tensor, alpha, beta float32) { ops.Gemm(a, b, c, alpha, beta) }

// Matmul computes C = A @ B for rank-2 tensors.
func Matmul(a, b, c *tensor.Tensor) { ops.Matmul(a, b, c) }

// BatchedMatmul computes C[i] = A[i] @ B[i] for rank-3 tensors.
func BatchedMatmul(a, b, c *tensor.Tensor) { ops.BatchedMatmul(a, b, c) }

// Matvec computes y = A @ x for A[M,N], x[N], y[M].
func Matvec(a, x, y *tensor.Tensor) { ops.Matvec(a, x, y) }

// ReduceAll folds every element to a single float.
func ReduceAll(in *tensor.Tensor, op ReduceOp) float32 { return ops.ReduceAll(in, op) }

// ReduceLastAxis folds the innermost dimension.
func ReduceLastAxis(in, out *tensor.Tensor, op ReduceOp) { ops.ReduceLastAxis(in, out, op) }

// Argmax writes the index of the first maximum along the last axis.
func Argmax(in, out *tensor.Tensor) { ops.Argmax(in, out) }

// SumAll returns the sum of every element.
func SumAll(in *tensor.Tensor) float32 { return ops.SumAll(in) }

// MaxAll returns the largest element (0 for empty tensors).
func MaxAll(in *tensor.Tensor) float32 { return ops.MaxAll(in) }

// MinAll returns the smallest element (0 for empty tensors).
func MinAll(in *tensor.Tensor) float32 { return ops.MinAll(in) }

// MeanAll returns the arithmetic mean (0 for empty tensors).
func MeanAll(in *tensor.Tensor) float32 { return ops.MeanAll(in) }

// ProdAll returns the product of every element (0 for empty tensors).
func ProdAll(in *tensor.Tensor) float32 { return ops.ProdAll(in) }

// Sum folds the last axis with a sum.
func Sum(in, out *tensor.Tensor) { ops.Sum(in, out) }

// Max folds the last axis with a maximum.
func Max(in, out *tensor.Tensor) { ops.Max(in, out) }

// Min folds the last axis with a minimum.
func Min(in, out *tensor.Tensor) { ops.Min(in, out) }

// Mean folds the last axis with an arithmetic mean.
func Mean(in, out *tensor.Tensor) { ops.Mean(in, out) }
