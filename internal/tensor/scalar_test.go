package tensor

import (
	"math"
	"testing"
)

func TestNewScalarInfersDType(t *testing.T) {
	tests := []struct {
		s     Scalar
		dtype DType
	}{
		{NewScalar(float32(1.5)), F32},
		{NewScalar(float64(2.5)), F64},
		{NewScalar(int8(-3)), I8},
		{NewScalar(int16(-4)), I16},
		{NewScalar(int32(-5)), I32},
		{NewScalar(int64(-6)), I64},
		{NewScalar(uint8(7)), U8},
		{NewScalar(uint16(8)), U16},
		{NewScalar(uint32(9)), U32},
		{NewScalar(uint64(10)), U64},
		{NewScalar(true), Bool},
	}

	for _, tt := range tests {
		if got := tt.s.DType(); got != tt.dtype {
			t.Errorf("scalar %v dtype = %s, want %s", tt.s, got, tt.dtype)
		}
	}
}

func TestScalarRoundTrip(t *testing.T) {
	if got := NewScalar(float32(3.25)).ToF32(); got != 3.25 {
		t.Errorf("F32 round trip = %v, want 3.25", got)
	}
	if got := NewScalar(float64(-1e100)).ToF64(); got != -1e100 {
		t.Errorf("F64 round trip = %v, want -1e100", got)
	}
	if got := NewScalar(int64(math.MinInt64)).ToI64(); got != math.MinInt64 {
		t.Errorf("I64 round trip = %v, want MinInt64", got)
	}
	if got := NewScalar(int8(-128)).ToI64(); got != -128 {
		t.Errorf("I8 widening = %v, want -128", got)
	}
	if got := NewScalar(uint64(math.MaxUint64)).u64(); got != math.MaxUint64 {
		t.Errorf("U64 round trip = %v, want MaxUint64", got)
	}
	if !NewScalar(true).ToBool() || NewScalar(false).ToBool() {
		t.Error("Bool round trip failed")
	}
}

func TestScalarBytesRoundTrip(t *testing.T) {
	src := NewScalar(float32(-7.5))
	var buf [4]byte
	src.ToBytes(buf[:])
	back := ScalarFromBytes(buf[:], F32)
	if back.ToF32() != -7.5 {
		t.Errorf("ToBytes/FromBytes = %v, want -7.5", back.ToF32())
	}
	if back.DType() != F32 {
		t.Errorf("restored dtype = %s, want f32", back.DType())
	}
}

func TestScalarHalfPrecision(t *testing.T) {
	s := NewScalarF16(1.5)
	if s.DType() != F16 {
		t.Fatalf("dtype = %s, want f16", s.DType())
	}
	// 1.5 is exactly representable as a half.
	if got := s.ToF32(); got != 1.5 {
		t.Errorf("F16 value = %v, want 1.5", got)
	}

	// 0x3C00 is half-precision 1.0.
	if got := ScalarFromF16Bits(0x3C00).ToF64(); got != 1.0 {
		t.Errorf("F16 bits 0x3C00 = %v, want 1.0", got)
	}
}

func TestScalarBrainFloat(t *testing.T) {
	s := NewScalarBF16(2.0)
	if s.DType() != BF16 {
		t.Fatalf("dtype = %s, want bf16", s.DType())
	}
	if got := s.ToF32(); got != 2.0 {
		t.Errorf("BF16 value = %v, want 2.0", got)
	}
}

func TestScalarArithmeticPromotion(t *testing.T) {
	sum := NewScalar(float32(1.5)).Add(NewScalar(float64(2.0)))
	if sum.DType() != F64 || sum.ToF64() != 3.5 {
		t.Errorf("float+float = %v (%s), want 3.5 (f64)", sum.ToF64(), sum.DType())
	}

	diff := NewScalar(int32(10)).Sub(NewScalar(int8(3)))
	if diff.DType() != I64 || diff.ToI64() != 7 {
		t.Errorf("int-int = %v (%s), want 7 (i64)", diff.ToI64(), diff.DType())
	}

	prod := NewScalar(uint16(6)).Mul(NewScalar(int64(7)))
	if prod.DType() != I64 || prod.ToI64() != 42 {
		t.Errorf("uint*int = %v (%s), want 42 (i64)", prod.ToI64(), prod.DType())
	}

	quot := NewScalar(float64(9)).Div(NewScalar(float32(2)))
	if quot.ToF64() != 4.5 {
		t.Errorf("float/float = %v, want 4.5", quot.ToF64())
	}
}

func TestScalarArithmeticDegradesToDefault(t *testing.T) {
	// Mixed float/integer classes have no defined result.
	mixed := NewScalar(float32(1)).Add(NewScalar(int32(1)))
	if mixed.DType() != F32 || mixed.ToF32() != 0 {
		t.Errorf("mixed-class add = %v (%s), want 0 (f32)", mixed.ToF32(), mixed.DType())
	}

	// Division by zero degrades instead of trapping.
	byZeroF := NewScalar(float64(5)).Div(NewScalar(float64(0)))
	if byZeroF.DType() != F32 || byZeroF.ToF32() != 0 {
		t.Errorf("float div by zero = %v (%s), want 0 (f32)", byZeroF.ToF32(), byZeroF.DType())
	}
	byZeroI := NewScalar(int64(5)).Div(NewScalar(int64(0)))
	if byZeroI.DType() != F32 || byZeroI.ToF32() != 0 {
		t.Errorf("int div by zero = %v (%s), want 0 (f32)", byZeroI.ToF32(), byZeroI.DType())
	}

	// Bool participates in no arithmetic class.
	boolOp := NewScalar(true).Mul(NewScalar(true))
	if boolOp.DType() != F32 || boolOp.ToF32() != 0 {
		t.Errorf("bool*bool = %v (%s), want 0 (f32)", boolOp.ToF32(), boolOp.DType())
	}
}

func TestScalarClassification(t *testing.T) {
	if !NewScalar(float32(1)).IsFloating() {
		t.Error("F32 scalar not floating")
	}
	if !NewScalar(int32(1)).IsInteger() || !NewScalar(int32(1)).IsSigned() {
		t.Error("I32 scalar not signed integer")
	}
	if NewScalar(uint8(1)).IsSigned() {
		t.Error("U8 scalar reported signed")
	}
	if !NewScalar(float64(1)).IsSigned() {
		t.Error("floats should report signed")
	}
	if !NewScalar(true).IsLogical() {
		t.Error("Bool scalar not logical")
	}
}

func TestScalarString(t *testing.T) {
	tests := []struct {
		s    Scalar
		want string
	}{
		{NewScalar(float32(1.5)), "Scalar(f32: 1.5)"},
		{NewScalar(int32(-4)), "Scalar(i32: -4)"},
		{NewScalar(true), "Scalar(bool: true)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
