package numeric_test

import (
	"errors"
	"math"
	"math/big"
	"strings"
	"testing"

	"go.dw1.io/fhecore/internal/wyrand"
	"go.dw1.io/fhecore/numeric"
)

func TestCastFrom(t *testing.T) {
	tests := []struct {
		name string
		got  any
		want any
	}{
		{name: "I32 to U32", got: numeric.CastFrom[numeric.U32](numeric.I32(-1)), want: numeric.U32(math.MaxUint32)},
		{name: "U8 to I8", got: numeric.CastFrom[numeric.I8](numeric.U8(200)), want: numeric.I8(-56)},
		{name: "I64 to U8 truncates", got: numeric.CastFrom[numeric.U8](numeric.I64(300)), want: numeric.U8(44)},
		{name: "I8 to I64 sign extends", got: numeric.CastFrom[numeric.I64](numeric.I8(-5)), want: numeric.I64(-5)},
		{name: "I8 to U64 sign extends", got: numeric.CastFrom[numeric.U64](numeric.I8(-1)), want: numeric.U64(math.MaxUint64)},
		{name: "U8 to I64 zero extends", got: numeric.CastFrom[numeric.I64](numeric.U8(255)), want: numeric.I64(255)},
		{name: "I8 to I128", got: numeric.CastFrom[numeric.I128](numeric.I8(-5)), want: numeric.I128From64(-5)},
		{name: "I8 to U128", got: numeric.CastFrom[numeric.U128](numeric.I8(-1)), want: numeric.U128{}.Max()},
		{name: "U128 to U8", got: numeric.CastFrom[numeric.U8](numeric.U128{}.Max()), want: numeric.U8(math.MaxUint8)},
		{name: "I128 to I64", got: numeric.CastFrom[numeric.I64](numeric.I128From64(-1)), want: numeric.I64(-1)},
		{name: "U128 to I128", got: numeric.CastFrom[numeric.I128](numeric.U128FromRaw(1<<63, 0)), want: numeric.I128{}.Min()},
		{name: "F64 to I32 truncates", got: numeric.CastFrom[numeric.I32](numeric.F64(3.9)), want: numeric.I32(3)},
		{name: "F64 to I32 negative", got: numeric.CastFrom[numeric.I32](numeric.F64(-3.9)), want: numeric.I32(-3)},
		{name: "F64 to I32 saturates", got: numeric.CastFrom[numeric.I32](numeric.F64(1e20)), want: numeric.I32(math.MaxInt32)},
		{name: "F64 to U8 saturates low", got: numeric.CastFrom[numeric.U8](numeric.F64(-1e20)), want: numeric.U8(0)},
		{name: "F64 NaN to I64", got: numeric.CastFrom[numeric.I64](numeric.F64(math.NaN())), want: numeric.I64(0)},
		{name: "F32 to I128", got: numeric.CastFrom[numeric.I128](numeric.F32(-7.5)), want: numeric.I128From64(-7)},
		{name: "F64 to F32 overflows", got: numeric.CastFrom[numeric.F32](numeric.F64(1e40)), want: numeric.F32(math.Inf(1))},
		{name: "F32 to F64", got: numeric.CastFrom[numeric.F64](numeric.F32(0.5)), want: numeric.F64(0.5)},
		{name: "I32 to F64", got: numeric.CastFrom[numeric.F64](numeric.I32(-12)), want: numeric.F64(-12)},
		{name: "U64 to F32 rounds", got: numeric.CastFrom[numeric.F32](numeric.U64(1<<24 + 1)), want: numeric.F32(1 << 24)},
		{name: "I128 to F64", got: numeric.CastFrom[numeric.F64](numeric.I128FromRaw(math.MaxUint64, 0)), want: numeric.F64(-0x1p64)},
		{name: "U128 to F32", got: numeric.CastFrom[numeric.F32](numeric.U128FromRaw(1, 0)), want: numeric.F32(0x1p64)},
		{name: "U128 to F64 rounds up past tie", got: numeric.CastFrom[numeric.F64](numeric.U128FromRaw(1, 1<<63+2049)), want: numeric.F64(0x1p64 + 0x1p63 + 0x1p12)},
		{name: "I128 to F64 rounds up past tie", got: numeric.CastFrom[numeric.F64](numeric.U128FromRaw(1, 1<<63+2049).IntoSigned().Neg()), want: numeric.F64(-(0x1p64 + 0x1p63 + 0x1p12))},
		{name: "U128 to F64 tie to even", got: numeric.CastFrom[numeric.F64](numeric.U128FromRaw(1, 1<<63+2048)), want: numeric.F64(0x1p64 + 0x1p63)},
		{name: "U128 max to F64", got: numeric.CastFrom[numeric.F64](numeric.U128{}.Max()), want: numeric.F64(0x1p128)},
		{name: "I128 min to F64", got: numeric.CastFrom[numeric.F64](numeric.I128{}.Min()), want: numeric.F64(-0x1p127)},
		{name: "U128 to F32 rounds once", got: numeric.CastFrom[numeric.F32](numeric.U128FromRaw(1<<36|1<<12, 1)), want: numeric.F32(0x1p100 + 0x1p77)},
		{name: "I128 to F32 rounds once", got: numeric.CastFrom[numeric.F32](numeric.U128FromRaw(1<<36|1<<12, 1).IntoSigned().Neg()), want: numeric.F32(-(0x1p100 + 0x1p77))},
		{name: "I128 to F32 small negative", got: numeric.CastFrom[numeric.F32](numeric.I128From64(-5)), want: numeric.F32(-5)},
		{name: "I128 min to F32", got: numeric.CastFrom[numeric.F32](numeric.I128{}.Min()), want: numeric.F32(-0x1p127)},
		{name: "U128 max to F32 overflows", got: numeric.CastFrom[numeric.F32](numeric.U128{}.Max()), want: numeric.F32(math.Inf(1))},
		{name: "identity", got: numeric.CastFrom[numeric.U16](numeric.U16(513)), want: numeric.U16(513)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %v (%T) want %v (%T)", tt.got, tt.got, tt.want, tt.want)
			}
		})
	}
}

func TestWideToFloatMatchesBigFloat(t *testing.T) {
	exact := func(s string) *big.Float {
		b, ok := new(big.Int).SetString(s, 10)
		if !ok {
			t.Fatalf("bad integer %q", s)
		}
		return new(big.Float).SetInt(b)
	}
	check := func(s string, f64 numeric.F64, f32 numeric.F32) {
		t.Helper()
		want64, _ := exact(s).Float64()
		if float64(f64) != want64 {
			t.Fatalf("%s to F64: got %b want %b", s, float64(f64), want64)
		}
		want32, _ := exact(s).Float32()
		if float32(f32) != want32 {
			t.Fatalf("%s to F32: got %b want %b", s, float32(f32), want32)
		}
	}

	src := wyrand.NewFromLabel(t.Name())
	for range 2000 {
		u := wyrand.Value[numeric.U128](src)
		check(u.String(), numeric.CastFrom[numeric.F64](u), numeric.CastFrom[numeric.F32](u))

		i := wyrand.Value[numeric.I128](src)
		check(i.String(), numeric.CastInto[numeric.F64](i), numeric.CastInto[numeric.F32](i))
		if got := i.Float64(); got != float64(numeric.CastFrom[numeric.F64](i)) {
			t.Fatalf("%v: Float64 %b disagrees with CastFrom", i, got)
		}

		// Narrow the value so the high word is small and more bits are
		// shifted out.
		n := u.Shr(uint(src.Uint64() % 64))
		check(n.String(), numeric.CastFrom[numeric.F64](n), numeric.CastFrom[numeric.F32](n))
	}
}

func TestCastIntoMirrorsCastFrom(t *testing.T) {
	for _, v := range []numeric.I16{math.MinInt16, -1, 0, 1, 300, math.MaxInt16} {
		if a, b := numeric.CastInto[numeric.U8](v), numeric.CastFrom[numeric.U8](v); a != b {
			t.Fatalf("CastInto(%d) = %d, CastFrom = %d", v, a, b)
		}
	}
}

func TestCastRoundTrips(t *testing.T) {
	t.Run("I32 through F64", func(t *testing.T) {
		for _, v := range []numeric.I32{math.MinInt32, -123456789, -1, 0, 1, 987654321, math.MaxInt32} {
			f := numeric.CastFrom[numeric.F64](v)
			if got := numeric.CastFrom[numeric.I32](f); got != v {
				t.Fatalf("round trip %d: got %d", v, got)
			}
		}
	})

	t.Run("signed through unsigned", func(t *testing.T) {
		for v := math.MinInt8; v <= math.MaxInt8; v++ {
			x := numeric.I8(v)
			if got := x.IntoUnsigned().IntoSigned(); got != x {
				t.Fatalf("round trip %d: got %d", x, got)
			}
		}
	})

	t.Run("I64 through I128", func(t *testing.T) {
		for _, v := range []numeric.I64{math.MinInt64, -1, 0, math.MaxInt64} {
			wide := numeric.CastFrom[numeric.I128](v)
			if got := numeric.CastFrom[numeric.I64](wide); got != v {
				t.Fatalf("round trip %d: got %d", v, got)
			}
		}
	})
}

func TestBitsOfFromBits(t *testing.T) {
	if hi, lo := numeric.BitsOf(numeric.I8(-1)); hi != 0 || lo != 0xff {
		t.Fatalf("I8(-1): got (%#x, %#x)", hi, lo)
	}
	if _, lo := numeric.BitsOf(numeric.F32(1)); lo != 0x3f800000 {
		t.Fatalf("F32(1): got %#x", lo)
	}
	if hi, lo := numeric.BitsOf(numeric.I128From64(-2)); hi != math.MaxUint64 || lo != math.MaxUint64-1 {
		t.Fatalf("I128(-2): got (%#x, %#x)", hi, lo)
	}

	if got := numeric.FromBits[numeric.I8](0, 0xff); got != -1 {
		t.Fatalf("FromBits I8: got %d", got)
	}
	if got := numeric.FromBits[numeric.U16](7, 0x12345); got != 0x2345 {
		t.Fatalf("FromBits U16 ignores high bits: got %#x", got)
	}
	if got := numeric.FromBits[numeric.F64](0, math.Float64bits(-0.75)); got != -0.75 {
		t.Fatalf("FromBits F64: got %v", got)
	}
}

func TestParseBits(t *testing.T) {
	t.Run("integer", func(t *testing.T) {
		got, err := numeric.ParseBits[numeric.I8]("1011 0011")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != -77 {
			t.Fatalf("got %d want -77", got)
		}
	})

	t.Run("float", func(t *testing.T) {
		for _, v := range []numeric.F32{1, -2.5, 1e-30, numeric.F32(math.Inf(-1))} {
			got, err := numeric.ParseBits[numeric.F32](v.BitString())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != v {
				t.Fatalf("round trip %v: got %v", v, got)
			}
		}
	})

	t.Run("wide", func(t *testing.T) {
		for _, v := range []numeric.I128{numeric.I128{}.Min(), numeric.I128From64(-77), numeric.I128FromRaw(5, 9)} {
			s, err := v.BitsString(16)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, err := numeric.ParseBits[numeric.I128](s)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != v {
				t.Fatalf("round trip %v: got %v", v, got)
			}
		}
	})

	t.Run("malformed", func(t *testing.T) {
		for _, s := range []string{"", "101", "1012 0011", "1011 00110", strings.Repeat("x", 8)} {
			if _, err := numeric.ParseBits[numeric.U8](s); !errors.Is(err, numeric.ErrMalformedBits) {
				t.Fatalf("%q: expected ErrMalformedBits, got %v", s, err)
			}
		}
	})
}
