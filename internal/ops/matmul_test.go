package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/zero-ml/zero/internal/device"
	"github.com/zero-ml/zero/internal/tensor"
)

func TestMatmul(t *testing.T) {
	// [2,3] @ [3,2] -> [2,2]
	a := newF32(t, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)
	b := newF32(t, tensor.Shape{3, 2}, 1, 4, 2, 5, 3, 6)
	c := newF32(t, tensor.Shape{2, 2}, 0, 0, 0, 0)
	defer a.Free()
	defer b.Free()
	defer c.Free()

	Matmul(&a, &b, &c)
	assert.Equal(t, []float32{14, 32, 32, 77}, c.Float32s())
}

func TestMatmulIdentity(t *testing.T) {
	a := newF32(t, tensor.Shape{2, 2}, 1, 2, 3, 4)
	eye := newF32(t, tensor.Shape{2, 2}, 1, 0, 0, 1)
	c := newF32(t, tensor.Shape{2, 2}, 0, 0, 0, 0)
	defer a.Free()
	defer eye.Free()
	defer c.Free()

	Matmul(&a, &eye, &c)
	assert.Equal(t, a.Float32s(), c.Float32s())
}

func TestGemmAgainstReference(t *testing.T) {
	const m, k, n = 3, 4, 2
	const alpha, beta = float32(2.0), float32(0.5)

	aVals := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	bVals := []float32{1, -1, 2, -2, 3, -3, 4, -4}
	cVals := []float32{10, 20, 30, 40, 50, 60}

	a := newF32(t, tensor.Shape{m, k}, aVals...)
	b := newF32(t, tensor.Shape{k, n}, bVals...)
	c := newF32(t, tensor.Shape{m, n}, cVals...)
	defer a.Free()
	defer b.Free()
	defer c.Free()

	Gemm(&a, &b, &c, alpha, beta)

	toF64 := func(vals []float32) []float64 {
		out := make([]float64, len(vals))
		for i, v := range vals {
			out[i] = float64(v)
		}
		return out
	}
	var ab mat.Dense
	ab.Mul(mat.NewDense(m, k, toF64(aVals)), mat.NewDense(k, n, toF64(bVals)))

	got := c.Float32s()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			want := float64(alpha)*ab.At(i, j) + float64(beta)*float64(cVals[i*n+j])
			assert.InDelta(t, want, float64(got[i*n+j]), 1e-4, "C[%d,%d]", i, j)
		}
	}
}

func TestGemmBetaAccumulates(t *testing.T) {
	a := newF32(t, tensor.Shape{1, 1}, 3)
	b := newF32(t, tensor.Shape{1, 1}, 4)
	c := newF32(t, tensor.Shape{1, 1}, 100)
	defer a.Free()
	defer b.Free()
	defer c.Free()

	Gemm(&a, &b, &c, 1, 1)
	assert.Equal(t, []float32{112}, c.Float32s())
}

func TestMatmulDimensionMismatch(t *testing.T) {
	a := newF32(t, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)
	b := newF32(t, tensor.Shape{2, 2}, 1, 2, 3, 4)
	c := newF32(t, tensor.Shape{2, 2}, -9, -9, -9, -9)
	defer a.Free()
	defer b.Free()
	defer c.Free()

	Matmul(&a, &b, &c)
	assert.Equal(t, []float32{-9, -9, -9, -9}, c.Float32s(), "inner dimension mismatch must not write")

	vec := newF32(t, tensor.Shape{3}, 1, 2, 3)
	defer vec.Free()
	Matmul(&a, &vec, &c)
	assert.Equal(t, []float32{-9, -9, -9, -9}, c.Float32s(), "non-matrix operand must not write")
}

func TestBatchedMatmul(t *testing.T) {
	const batch, m, k, n = 2, 2, 3, 2

	a := tensor.Alloc(tensor.Shape{batch, m, k}, tensor.F32, device.CPU)
	b := tensor.Alloc(tensor.Shape{batch, k, n}, tensor.F32, device.CPU)
	c := tensor.Alloc(tensor.Shape{batch, m, n}, tensor.F32, device.CPU)
	defer a.Free()
	defer b.Free()
	defer c.Free()
	require.NotNil(t, a.Data())

	for i := range a.Float32s() {
		a.Float32s()[i] = float32(i + 1)
	}
	for i := range b.Float32s() {
		b.Float32s()[i] = float32(i%3 - 1)
	}

	BatchedMatmul(&a, &b, &c)

	// Each batch must match a standalone 2-D matmul over its slab.
	for i := int64(0); i < batch; i++ {
		ai := newF32(t, tensor.Shape{m, k}, a.Float32s()[i*m*k:(i+1)*m*k]...)
		bi := newF32(t, tensor.Shape{k, n}, b.Float32s()[i*k*n:(i+1)*k*n]...)
		ci := newF32(t, tensor.Shape{m, n}, make([]float32, m*n)...)

		Matmul(&ai, &bi, &ci)
		assert.Equal(t, ci.Float32s(), c.Float32s()[i*m*n:(i+1)*m*n], "batch %d", i)

		ai.Free()
		bi.Free()
		ci.Free()
	}
}

func TestBatchedMatmulRankMismatch(t *testing.T) {
	a := newF32(t, tensor.Shape{2, 2}, 1, 2, 3, 4)
	b := newF32(t, tensor.Shape{2, 2}, 1, 2, 3, 4)
	c := newF32(t, tensor.Shape{2, 2}, -9, -9, -9, -9)
	defer a.Free()
	defer b.Free()
	defer c.Free()

	BatchedMatmul(&a, &b, &c)
	assert.Equal(t, []float32{-9, -9, -9, -9}, c.Float32s(), "rank-2 operands must not write")
}

func TestMatvec(t *testing.T) {
	a := newF32(t, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)
	x := newF32(t, tensor.Shape{3}, 1, 1, 1)
	y := newF32(t, tensor.Shape{2}, 0, 0)
	defer a.Free()
	defer x.Free()
	defer y.Free()

	Matvec(&a, &x, &y)
	assert.Equal(t, []float32{6, 15}, y.Float32s())

	bad := newF32(t, tensor.Shape{2}, 1, 2)
	sentinel := newF32(t, tensor.Shape{2}, -9, -9)
	defer bad.Free()
	defer sentinel.Free()
	Matvec(&a, &bad, &sentinel)
	assert.Equal(t, []float32{-9, -9}, sentinel.Float32s(), "length mismatch must not write")
}
