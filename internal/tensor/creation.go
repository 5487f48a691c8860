package tensor

import (
	"math/rand/v2"

	"github.com/zero-ml/zero/internal/device"
)

// Creation helpers. These are conveniences over Alloc; like every
// other constructor they signal failure with an empty result rather
// than an error.

// Zeros allocates a tensor with zero-filled storage.
func Zeros(shape Shape, dt DType, dev device.Device) Tensor {
	if !shape.Valid() {
		return Empty()
	}

	t := Empty()
	t.dtype = dt
	t.device = dev
	t.ndim = len(shape)
	copy(t.shape[:], shape)
	t.setContiguousStrides()

	t.data = device.AllocZero(int(t.Nbytes()), dt.Alignment(), dev)
	t.owns = t.data != nil
	return t
}

// Full allocates a tensor of the scalar's dtype and writes the
// scalar's raw bytes into every element slot.
func Full(shape Shape, s Scalar, dev device.Device) Tensor {
	t := Alloc(shape, s.DType(), dev)
	if t.data == nil {
		return t
	}

	size := s.DType().Size()
	buf := t.Bytes()
	for off := 0; off < len(buf); off += size {
		s.ToBytes(buf[off : off+size])
	}
	return t
}

// Arange allocates a rank-1 F32 tensor holding 0, 1, ..., n-1.
func Arange(n int64, dev device.Device) Tensor {
	t := Alloc(Shape{n}, F32, dev)
	if t.data == nil {
		return t
	}

	data := t.Float32s()
	for i := range data {
		data[i] = float32(i)
	}
	return t
}

// Randn allocates a rank-1..n F32 tensor filled from the standard
// normal distribution. In deterministic mode the stream is derived
// from the global seed, so equal seeds reproduce equal tensors.
func Randn(shape Shape, dev device.Device) Tensor {
	t := Alloc(shape, F32, dev)
	if t.data == nil {
		return t
	}

	data := t.Float32s()
	if Deterministic() {
		seed := Seed()
		rng := rand.New(rand.NewPCG(seed, seed))
		for i := range data {
			data[i] = float32(rng.NormFloat64())
		}
	} else {
		for i := range data {
			data[i] = float32(rand.NormFloat64())
		}
	}
	return t
}
