// Package tensor implements the core value types of the zero runtime:
// the DType table, the Scalar immediate, and the strided Tensor with
// its O(1) view algebra and broadcast shape rules.
package tensor

// DType enumerates the closed set of element kinds a Tensor or Scalar
// can hold.
type DType uint8

// Supported element kinds. The numeric values are part of the in-memory
// record contract consumed by generated code.
const (
	F16 DType = iota // 16-bit float (half precision)
	F32              // 32-bit float (single precision)
	F64              // 64-bit float (double precision)
	I8
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	Bool // stored as one byte
	BF16 // brain float, for ML weights
)

// Size returns the fixed byte size of the element kind.
func (dt DType) Size() int {
	switch dt {
	case I8, U8, Bool:
		return 1
	case F16, BF16, I16, U16:
		return 2
	case F32, I32, U32:
		return 4
	case F64, I64, U64:
		return 8
	default:
		return 0
	}
}

// Alignment returns the natural alignment of the element kind, which
// equals its size.
func (dt DType) Alignment() int {
	return dt.Size()
}

// IsFloat reports whether dt is a floating-point kind.
func (dt DType) IsFloat() bool {
	return dt == F16 || dt == F32 || dt == F64 || dt == BF16
}

// IsSigned reports whether dt is a signed integer kind.
func (dt DType) IsSigned() bool {
	return dt == I8 || dt == I16 || dt == I32 || dt == I64
}

// IsUnsigned reports whether dt is an unsigned integer kind.
func (dt DType) IsUnsigned() bool {
	return dt == U8 || dt == U16 || dt == U32 || dt == U64
}

// IsInteger reports whether dt is any integer kind.
func (dt DType) IsInteger() bool {
	return dt.IsSigned() || dt.IsUnsigned()
}

// IsLogical reports whether dt is the boolean kind.
func (dt DType) IsLogical() bool {
	return dt == Bool
}

// String returns the short diagnostic name of the element kind.
func (dt DType) String() string {
	switch dt {
	case F16:
		return "f16"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case Bool:
		return "bool"
	case BF16:
		return "bf16"
	default:
		return "unknown"
	}
}
