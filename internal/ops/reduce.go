package ops

import (
	"github.com/zero-ml/zero/internal/tensor"
)

// ReduceOp identifies a reduction kernel.
type ReduceOp uint8

// Reduction kinds.
const (
	ReduceSum ReduceOp = iota
	ReduceMax
	ReduceMin
	ReduceMean
	ReduceProd
)

// ReduceAll folds every element of a CPU F32 tensor to a single float.
// An empty tensor reduces to 0 for every kind, including max and min;
// callers that need infinities for the empty case must test for it.
func ReduceAll(in *tensor.Tensor, op ReduceOp) float32 {
	if !onCPU(in) || !allF32(in) || in.Data() == nil {
		return 0
	}

	data := in.Float32s()
	if len(data) == 0 {
		return 0
	}

	switch op {
	case ReduceSum:
		sum := float32(0)
		for _, v := range data {
			sum += v
		}
		return sum
	case ReduceMax:
		maxVal := data[0]
		for _, v := range data[1:] {
			if v > maxVal {
				maxVal = v
			}
		}
		return maxVal
	case ReduceMin:
		minVal := data[0]
		for _, v := range data[1:] {
			if v < minVal {
				minVal = v
			}
		}
		return minVal
	case ReduceMean:
		sum := float32(0)
		for _, v := range data {
			sum += v
		}
		return sum / float32(len(data))
	case ReduceProd:
		prod := float32(1)
		for _, v := range data {
			prod *= v
		}
		return prod
	default:
		return 0
	}
}

// ReduceLastAxis folds the innermost dimension: input [..., N] becomes
// output [...] with one result per outer position. The output must
// hold exactly the outer element count.
func ReduceLastAxis(in, out *tensor.Tensor, op ReduceOp) {
	if !onCPU(in, out) || !allF32(in, out) {
		return
	}
	if in.Ndim() == 0 || in.Data() == nil || out.Data() == nil {
		return
	}

	reduceSize := in.Dim(in.Ndim() - 1)
	if reduceSize == 0 {
		return
	}
	outerSize := in.Numel() / reduceSize
	if out.Numel() != outerSize {
		return
	}

	src := in.Float32s()
	dst := out.Float32s()

	for outer := int64(0); outer < outerSize; outer++ {
		row := src[outer*reduceSize : (outer+1)*reduceSize]

		switch op {
		case ReduceSum:
			sum := float32(0)
			for _, v := range row {
				sum += v
			}
			dst[outer] = sum
		case ReduceMax:
			maxVal := row[0]
			for _, v := range row[1:] {
				if v > maxVal {
					maxVal = v
				}
			}
			dst[outer] = maxVal
		case ReduceMin:
			minVal := row[0]
			for _, v := range row[1:] {
				if v < minVal {
					minVal = v
				}
			}
			dst[outer] = minVal
		case ReduceMean:
			sum := float32(0)
			for _, v := range row {
				sum += v
			}
			dst[outer] = sum / float32(reduceSize)
		case ReduceProd:
			prod := float32(1)
			for _, v := range row {
				prod *= v
			}
			dst[outer] = prod
		}
	}
}

// Argmax writes, for every outer position, the index of the first
// maximum along the last axis. The output dtype must be I64 or I32 and
// hold the outer element count.
func Argmax(in, out *tensor.Tensor) {
	if !onCPU(in, out) || !allF32(in) {
		return
	}
	if out.DType() != tensor.I64 && out.DType() != tensor.I32 {
		return
	}
	if in.Ndim() == 0 || in.Data() == nil || out.Data() == nil {
		return
	}

	reduceSize := in.Dim(in.Ndim() - 1)
	if reduceSize == 0 {
		return
	}
	outerSize := in.Numel() / reduceSize
	if out.Numel() != outerSize {
		return
	}

	src := in.Float32s()
	for outer := int64(0); outer < outerSize; outer++ {
		row := src[outer*reduceSize : (outer+1)*reduceSize]
		maxVal := row[0]
		maxIdx := int64(0)
		for i, v := range row[1:] {
			if v > maxVal {
				maxVal = v
				maxIdx = int64(i) + 1
			}
		}

		if out.DType() == tensor.I64 {
			out.Int64s()[outer] = maxIdx
		} else {
			out.Int32s()[outer] = int32(maxIdx)
		}
	}
}

// Convenience wrappers over the reductions.

// SumAll returns the sum of every element.
func SumAll(in *tensor.Tensor) float32 { return ReduceAll(in, ReduceSum) }

// MaxAll returns the largest element (0 for empty tensors).
func MaxAll(in *tensor.Tensor) float32 { return ReduceAll(in, ReduceMax) }

// MinAll returns the smallest element (0 for empty tensors).
func MinAll(in *tensor.Tensor) float32 { return ReduceAll(in, ReduceMin) }

// MeanAll returns the arithmetic mean (0 for empty tensors).
func MeanAll(in *tensor.Tensor) float32 { return ReduceAll(in, ReduceMean) }

// ProdAll returns the product of every element (0 for empty tensors).
func ProdAll(in *tensor.Tensor) float32 { return ReduceAll(in, ReduceProd) }

// Sum folds the last axis with a sum.
func Sum(in, out *tensor.Tensor) { ReduceLastAxis(in, out, ReduceSum) }

// Max folds the last axis with a maximum.
func Max(in, out *tensor.Tensor) { ReduceLastAxis(in, out, ReduceMax) }

// Min folds the last axis with a minimum.
func Min(in, out *tensor.Tensor) { ReduceLastAxis(in, out, ReduceMin) }

// Mean folds the last axis with an arithmetic mean.
func Mean(in, out *tensor.Tensor) { ReduceLastAxis(in, out, ReduceMean) }
