package ops

import (
	"unsafe"

	"github.com/zero-ml/zero/internal/tensor"
)

// Gemm computes C = alpha*(A@B) + beta*C for rank-2 F32 CPU tensors
// A[M,K], B[K,N], C[M,N], assuming row-major contiguous storage. Any
// dimension disagreement is a silent no-op. The triple loop is the
// canonical implementation; optimized lowerings must match it within
// float rounding.
func Gemm(a, b, c *tensor.Tensor, alpha, beta float32) {
	if !onCPU(a, b, c) || !allF32(a, b, c) {
		return
	}
	if a.Ndim() != 2 || b.Ndim() != 2 || c.Ndim() != 2 {
		return
	}

	m, k := a.Dim(0), a.Dim(1)
	n := b.Dim(1)
	if b.Dim(0) != k || c.Dim(0) != m || c.Dim(1) != n {
		return
	}
	if a.Data() == nil || b.Data() == nil || c.Data() == nil {
		return
	}

	av := a.Float32s()
	bv := b.Float32s()
	cv := c.Float32s()

	for i := int64(0); i < m; i++ {
		for j := int64(0); j < n; j++ {
			sum := float32(0)
			for kk := int64(0); kk < k; kk++ {
				sum += av[i*k+kk] * bv[kk*n+j]
			}
			cv[i*n+j] = alpha*sum + beta*cv[i*n+j]
		}
	}
}

// Matmul computes C = A @ B.
func Matmul(a, b, c *tensor.Tensor) {
	Gemm(a, b, c, 1, 0)
}

// BatchedMatmul computes C[i] = A[i] @ B[i] for rank-3 tensors
// [batch,M,K] @ [batch,K,N] -> [batch,M,N], delegating each batch to
// Matmul through a contiguous 2-D view. The per-batch views share the
// stride routine used by Alloc and touch only stack metadata, so no
// storage is allocated inside the loop.
func BatchedMatmul(a, b, c *tensor.Tensor) {
	if !onCPU(a, b, c) || !allF32(a, b, c) {
		return
	}
	if a.Ndim() != 3 || b.Ndim() != 3 || c.Ndim() != 3 {
		return
	}

	batch := a.Dim(0)
	m, k := a.Dim(1), a.Dim(2)
	n := b.Dim(2)
	if b.Dim(0) != batch || c.Dim(0) != batch || b.Dim(1) != k || c.Dim(1) != m || c.Dim(2) != n {
		return
	}
	if a.Data() == nil || b.Data() == nil || c.Data() == nil {
		return
	}

	aShape := tensor.Shape{m, k}
	bShape := tensor.Shape{k, n}
	cShape := tensor.Shape{m, n}
	aStrides := tensor.ContiguousStrides(aShape, tensor.F32)
	bStrides := tensor.ContiguousStrides(bShape, tensor.F32)
	cStrides := tensor.ContiguousStrides(cShape, tensor.F32)

	elem := int64(tensor.F32.Size())
	for i := int64(0); i < batch; i++ {
		ai := tensor.View(unsafe.Add(a.Data(), i*m*k*elem), aShape, aStrides, tensor.F32, a.Device())
		bi := tensor.View(unsafe.Add(b.Data(), i*k*n*elem), bShape, bStrides, tensor.F32, b.Device())
		ci := tensor.View(unsafe.Add(c.Data(), i*m*n*elem), cShape, cStrides, tensor.F32, c.Device())
		Matmul(&ai, &bi, &ci)
	}
}

// Matvec computes y = A @ x for A[M,N], x[N], y[M].
func Matvec(a, x, y *tensor.Tensor) {
	if !onCPU(a, x, y) || !allF32(a, x, y) {
		return
	}
	if a.Ndim() != 2 || x.Ndim() != 1 || y.Ndim() != 1 {
		return
	}

	m, n := a.Dim(0), a.Dim(1)
	if x.Dim(0) != n || y.Dim(0) != m {
		return
	}
	if a.Data() == nil || x.Data() == nil || y.Data() == nil {
		return
	}

	av := a.Float32s()
	xv := x.Float32s()
	yv := y.Float32s()

	for i := int64(0); i < m; i++ {
		sum := float32(0)
		for j := int64(0); j < n; j++ {
			sum += av[i*n+j] * xv[j]
		}
		yv[i] = sum
	}
}
