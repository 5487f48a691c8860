package tensor

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/d4l3k/go-bfloat16"
	"github.com/x448/float16"
)

// Element is the constraint for Go types a Scalar can be built from.
type Element interface {
	~float32 | ~float64 | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~bool
}

// Scalar is a single immediate value of one element kind: a rank-0
// tensor payload plus its dtype tag. The value lives in a fixed
// native-endian buffer, bit-identical to the corresponding element in
// tensor storage, so ToBytes/ScalarFromBytes round-trip through tensor
// memory without conversion. Scalar never owns heap memory.
//
// All cross-dtype conversions are lossy and unchecked; Scalar carries
// a value, not a conversion policy.
type Scalar struct {
	raw   [8]byte
	dtype DType
}

// NewScalar builds a Scalar from a concrete Go value, inferring the
// element kind from the value's type.
func NewScalar[T Element](v T) Scalar {
	var s Scalar
	switch x := any(v).(type) {
	case float32:
		s.dtype = F32
		binary.NativeEndian.PutUint32(s.raw[:4], math.Float32bits(x))
	case float64:
		s.dtype = F64
		binary.NativeEndian.PutUint64(s.raw[:8], math.Float64bits(x))
	case int8:
		s.dtype = I8
		s.raw[0] = byte(x)
	case int16:
		s.dtype = I16
		binary.NativeEndian.PutUint16(s.raw[:2], uint16(x))
	case int32:
		s.dtype = I32
		binary.NativeEndian.PutUint32(s.raw[:4], uint32(x))
	case int64:
		s.dtype = I64
		binary.NativeEndian.PutUint64(s.raw[:8], uint64(x))
	case uint8:
		s.dtype = U8
		s.raw[0] = x
	case uint16:
		s.dtype = U16
		binary.NativeEndian.PutUint16(s.raw[:2], x)
	case uint32:
		s.dtype = U32
		binary.NativeEndian.PutUint32(s.raw[:4], x)
	case uint64:
		s.dtype = U64
		binary.NativeEndian.PutUint64(s.raw[:8], x)
	case bool:
		s.dtype = Bool
		if x {
			s.raw[0] = 1
		}
	default:
		// Named types under the constraint fall through to the
		// F32 zero default.
		s.dtype = F32
	}
	return s
}

// defaultScalar is the zero-valued F32 scalar returned when an
// operation has no defined result.
func defaultScalar() Scalar {
	return NewScalar(float32(0))
}

// ScalarFromF16Bits builds a half-precision scalar from raw bits.
func ScalarFromF16Bits(bits uint16) Scalar {
	var s Scalar
	s.dtype = F16
	binary.NativeEndian.PutUint16(s.raw[:2], bits)
	return s
}

// ScalarFromBF16Bits builds a brain-float scalar from raw bits.
func ScalarFromBF16Bits(bits uint16) Scalar {
	var s Scalar
	s.dtype = BF16
	binary.NativeEndian.PutUint16(s.raw[:2], bits)
	return s
}

// NewScalarF16 builds a half-precision scalar from a float32 value,
// rounding to the nearest representable half.
func NewScalarF16(v float32) Scalar {
	return ScalarFromF16Bits(float16.Fromfloat32(v).Bits())
}

// NewScalarBF16 builds a brain-float scalar from a float32 value.
func NewScalarBF16(v float32) Scalar {
	enc := bfloat16.EncodeFloat32([]float32{v})
	var s Scalar
	s.dtype = BF16
	copy(s.raw[:2], enc)
	return s
}

// ScalarFromBytes reinterprets raw bytes as a scalar of the given
// kind. Low-level escape hatch for tensor internals: it bypasses the
// typed constructors and can produce any bit pattern.
func ScalarFromBytes(src []byte, dt DType) Scalar {
	var s Scalar
	s.dtype = dt
	copy(s.raw[:dt.Size()], src)
	return s
}

// DType returns the element kind of the scalar.
func (s Scalar) DType() DType { return s.dtype }

// IsInteger reports whether the scalar holds an integer kind.
func (s Scalar) IsInteger() bool { return s.dtype.IsInteger() }

// IsFloating reports whether the scalar holds a floating-point kind.
func (s Scalar) IsFloating() bool { return s.dtype.IsFloat() }

// IsSigned reports whether the scalar's kind can represent negatives.
func (s Scalar) IsSigned() bool {
	return s.dtype.IsSigned() || s.dtype.IsFloat()
}

// IsLogical reports whether the scalar holds a boolean.
func (s Scalar) IsLogical() bool { return s.dtype.IsLogical() }

// ToBytes copies the scalar's raw value into dst, which must hold at
// least DType().Size() bytes. This is the only way to move a scalar
// into tensor storage.
func (s Scalar) ToBytes(dst []byte) {
	copy(dst, s.raw[:s.dtype.Size()])
}

func (s Scalar) f32() float32 {
	return math.Float32frombits(binary.NativeEndian.Uint32(s.raw[:4]))
}

func (s Scalar) f64() float64 {
	return math.Float64frombits(binary.NativeEndian.Uint64(s.raw[:8]))
}

func (s Scalar) u16() uint16 { return binary.NativeEndian.Uint16(s.raw[:2]) }
func (s Scalar) u32() uint32 { return binary.NativeEndian.Uint32(s.raw[:4]) }
func (s Scalar) u64() uint64 { return binary.NativeEndian.Uint64(s.raw[:8]) }

// ToF64 converts the stored value to float64.
func (s Scalar) ToF64() float64 {
	switch s.dtype {
	case F64:
		return s.f64()
	case F32:
		return float64(s.f32())
	case F16:
		return float64(float16.Frombits(s.u16()).Float32())
	case BF16:
		return float64(bfloat16.DecodeFloat32(s.raw[:2])[0])
	case I8:
		return float64(int8(s.raw[0]))
	case I16:
		return float64(int16(s.u16()))
	case I32:
		return float64(int32(s.u32()))
	case I64:
		return float64(int64(s.u64()))
	case U8:
		return float64(s.raw[0])
	case U16:
		return float64(s.u16())
	case U32:
		return float64(s.u32())
	case U64:
		return float64(s.u64())
	case Bool:
		if s.raw[0] != 0 {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// ToF32 converts the stored value to float32.
func (s Scalar) ToF32() float32 {
	if s.dtype == F32 {
		return s.f32()
	}
	return float32(s.ToF64())
}

// ToI64 converts the stored value to int64, truncating floats.
func (s Scalar) ToI64() int64 {
	switch s.dtype {
	case I64:
		return int64(s.u64())
	case I32:
		return int64(int32(s.u32()))
	case I16:
		return int64(int16(s.u16()))
	case I8:
		return int64(int8(s.raw[0]))
	case U64:
		return int64(s.u64())
	case U32:
		return int64(s.u32())
	case U16:
		return int64(s.u16())
	case U8:
		return int64(s.raw[0])
	case F32, F64, F16, BF16:
		return int64(s.ToF64())
	case Bool:
		if s.raw[0] != 0 {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// ToBool converts the stored value to a boolean (non-zero is true).
func (s Scalar) ToBool() bool {
	switch s.dtype {
	case Bool:
		return s.raw[0] != 0
	case F32, F64, F16, BF16:
		return s.ToF64() != 0
	case I8, I16, I32, I64, U8, U16, U32, U64:
		return s.ToI64() != 0
	default:
		return false
	}
}

// Add returns the sum of two scalars. Same-class operands promote to
// the 64-bit representative (float+float to F64, int+int to I64);
// mixed-class operands have no defined result and yield the default
// zero scalar.
func (s Scalar) Add(other Scalar) Scalar {
	if s.IsFloating() && other.IsFloating() {
		return NewScalar(s.ToF64() + other.ToF64())
	}
	if s.IsInteger() && other.IsInteger() {
		return NewScalar(s.ToI64() + other.ToI64())
	}
	return defaultScalar()
}

// Sub returns the difference of two scalars under the same promotion
// rules as Add.
func (s Scalar) Sub(other Scalar) Scalar {
	if s.IsFloating() && other.IsFloating() {
		return NewScalar(s.ToF64() - other.ToF64())
	}
	if s.IsInteger() && other.IsInteger() {
		return NewScalar(s.ToI64() - other.ToI64())
	}
	return defaultScalar()
}

// Mul returns the product of two scalars under the same promotion
// rules as Add.
func (s Scalar) Mul(other Scalar) Scalar {
	if s.IsFloating() && other.IsFloating() {
		return NewScalar(s.ToF64() * other.ToF64())
	}
	if s.IsInteger() && other.IsInteger() {
		return NewScalar(s.ToI64() * other.ToI64())
	}
	return defaultScalar()
}

// Div returns the quotient of two scalars under the same promotion
// rules as Add. Division by zero in either class yields the default
// zero scalar, never a trap or an infinity.
func (s Scalar) Div(other Scalar) Scalar {
	if s.IsFloating() && other.IsFloating() {
		d := other.ToF64()
		if d == 0 {
			return defaultScalar()
		}
		return NewScalar(s.ToF64() / d)
	}
	if s.IsInteger() && other.IsInteger() {
		d := other.ToI64()
		if d == 0 {
			return defaultScalar()
		}
		return NewScalar(s.ToI64() / d)
	}
	return defaultScalar()
}

// String returns a diagnostic rendering of the scalar.
func (s Scalar) String() string {
	switch {
	case s.dtype == Bool:
		return fmt.Sprintf("Scalar(bool: %v)", s.ToBool())
	case s.dtype.IsFloat():
		return fmt.Sprintf("Scalar(%s: %g)", s.dtype, s.ToF64())
	case s.dtype == U64:
		return fmt.Sprintf("Scalar(u64: %d)", s.u64())
	default:
		return fmt.Sprintf("Scalar(%s: %d)", s.dtype, s.ToI64())
	}
}
