package tensor

// Shape holds the extent of each tensor dimension.
type Shape []int64

// Numel returns the total element count: the product of all extents,
// or 1 for the rank-0 shape.
func (s Shape) Numel() int64 {
	n := int64(1)
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Equal reports whether two shapes match dimension for dimension.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// Valid reports whether the shape fits the supported rank and has no
// negative extents.
func (s Shape) Valid() bool {
	if len(s) > MaxDims {
		return false
	}
	for _, dim := range s {
		if dim < 0 {
			return false
		}
	}
	return true
}

// BroadcastShape computes the NumPy-style broadcast of two shapes,
// aligning from the trailing dimension and treating absent dimensions
// as 1. For each aligned position the output extent is the common
// extent when equal, or the non-1 extent when one side is 1. The
// second result is false when some position satisfies neither rule.
func BroadcastShape(a, b Shape) (Shape, bool) {
	outNdim := len(a)
	if len(b) > outNdim {
		outNdim = len(b)
	}
	out := make(Shape, outNdim)

	for i := 0; i < outNdim; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := int64(1)
		if aIdx >= 0 {
			aDim = a[aIdx]
		}
		bDim := int64(1)
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			out[outNdim-1-i] = aDim
		case aDim == 1:
			out[outNdim-1-i] = bDim
		case bDim == 1:
			out[outNdim-1-i] = aDim
		default:
			return nil, false
		}
	}

	return out, true
}

// CanBroadcast reports whether two shapes are broadcast-compatible.
func CanBroadcast(a, b Shape) bool {
	_, ok := BroadcastShape(a, b)
	return ok
}
