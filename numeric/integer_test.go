package numeric_test

import (
	"math"
	"strings"
	"testing"

	"go.dw1.io/fhecore/numeric"
)

func TestIntoUnsignedReinterpretsBits(t *testing.T) {
	if got := numeric.I8(-1).IntoUnsigned(); got != math.MaxUint8 {
		t.Fatalf("I8(-1): got %d want 255", got)
	}
	if got := numeric.I64(math.MinInt64).IntoUnsigned(); got != 1<<63 {
		t.Fatalf("I64 min: got %d want %d", got, uint64(1)<<63)
	}
	if got := numeric.U16(math.MaxUint16).IntoSigned(); got != -1 {
		t.Fatalf("U16 max: got %d want -1", got)
	}
	if got := numeric.I128From64(-1).IntoUnsigned(); got != numeric.Max[numeric.U128]() {
		t.Fatalf("I128(-1): got %v want U128 max", got)
	}
	if got := numeric.Max[numeric.U128]().IntoSigned(); got != numeric.I128From64(-1) {
		t.Fatalf("U128 max: got %v want -1", got)
	}
}

func TestWrappingAbs(t *testing.T) {
	tests := []struct {
		name string
		in   numeric.I8
		want numeric.I8
	}{
		{name: "positive", in: 5, want: 5},
		{name: "negative", in: -5, want: 5},
		{name: "zero", in: 0, want: 0},
		{name: "max", in: math.MaxInt8, want: math.MaxInt8},
		{name: "min", in: math.MinInt8, want: math.MinInt8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.WrappingAbs(); got != tt.want {
				t.Fatalf("got %d want %d", got, tt.want)
			}
		})
	}

	t.Run("128", func(t *testing.T) {
		lo := numeric.I128{}.Min()
		if got := lo.WrappingAbs(); got != lo {
			t.Fatalf("I128 min: got %v want %v", got, lo)
		}
		if got := numeric.I128From64(-42).WrappingAbs(); got != numeric.I128From64(42) {
			t.Fatalf("I128(-42): got %v want 42", got)
		}
	})
}

func TestIntegerArithmeticWraps(t *testing.T) {
	if got := numeric.I8(math.MaxInt8).Add(1); got != math.MinInt8 {
		t.Fatalf("I8 max+1: got %d", got)
	}
	if got := numeric.U8(0).Sub(1); got != math.MaxUint8 {
		t.Fatalf("U8 0-1: got %d", got)
	}
	if got := numeric.I8(math.MinInt8).Neg(); got != math.MinInt8 {
		t.Fatalf("I8 -min: got %d", got)
	}
	if got := numeric.I32(-7).Div(2); got != -3 {
		t.Fatalf("I32 -7/2: got %d want -3", got)
	}
	if got := numeric.I32(-7).Rem(2); got != -1 {
		t.Fatalf("I32 -7%%2: got %d want -1", got)
	}

	hi, lo := numeric.I128{}.Max(), numeric.I128{}.Min()
	if got := hi.Add(numeric.I128{}.One()); got != lo {
		t.Fatalf("I128 max+1: got %v want %v", got, lo)
	}
	if got := lo.Neg(); got != lo {
		t.Fatalf("I128 -min: got %v want %v", got, lo)
	}
	if got := (numeric.U128{}).Zero().Sub(numeric.U128{}.One()); got != (numeric.U128{}).Max() {
		t.Fatalf("U128 0-1: got %v", got)
	}
	if got := numeric.I128From64(-7).Div(numeric.I128From64(2)); got != numeric.I128From64(-3) {
		t.Fatalf("I128 -7/2: got %v want -3", got)
	}
	if got := numeric.I128From64(-7).Rem(numeric.I128From64(2)); got != numeric.I128From64(-1) {
		t.Fatalf("I128 -7%%2: got %v want -1", got)
	}
	if got := numeric.I128From64(-6).Mul(numeric.I128From64(7)); got.String() != "-42" {
		t.Fatalf("I128 -6*7: got %v want -42", got)
	}

	wide := numeric.U128From64(math.MaxUint64)
	if h, l := wide.Add(numeric.U128From64(1)).Raw(); h != 1 || l != 0 {
		t.Fatalf("U128 carry: got (%d, %d) want (1, 0)", h, l)
	}
}

func TestShifts(t *testing.T) {
	tests := []struct {
		name string
		got  any
		want any
	}{
		{name: "I8 shl past width", got: numeric.I8(1).Shl(8), want: numeric.I8(0)},
		{name: "I8 shr sign fill", got: numeric.I8(-128).Shr(10), want: numeric.I8(-1)},
		{name: "U8 shr", got: numeric.U8(0x80).Shr(7), want: numeric.U8(1)},
		{name: "U64 shl past width", got: numeric.U64(1).Shl(64), want: numeric.U64(0)},
		{name: "I128 shr arithmetic", got: numeric.I128From64(-8).Shr(1), want: numeric.I128From64(-4)},
		{name: "I128 shr past width", got: numeric.I128From64(-8).Shr(200), want: numeric.I128From64(-1)},
		{name: "I128 shr across halves", got: numeric.I128FromRaw(1, 0).Shr(64), want: numeric.I128From64(1)},
		{name: "I128 shr high negative", got: numeric.I128FromRaw(1<<63, 0).Shr(64), want: numeric.I128FromRaw(math.MaxUint64, 1<<63)},
		{name: "I128 shl", got: numeric.I128From64(3).Shl(64), want: numeric.I128FromRaw(3, 0)},
		{name: "U128 shl top bit", got: numeric.U128From64(1).Shl(127), want: numeric.U128FromRaw(1<<63, 0)},
		{name: "U128 shl past width", got: numeric.U128From64(1).Shl(128), want: numeric.U128{}},
		{name: "U128 shr", got: numeric.U128FromRaw(1, 0).Shr(1), want: numeric.U128From64(1 << 63)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %v want %v", tt.got, tt.want)
			}
		})
	}
}

func TestBitwise(t *testing.T) {
	if got := numeric.U8(0b1100).And(0b1010); got != 0b1000 {
		t.Fatalf("and: got %b", got)
	}
	if got := numeric.U8(0b1100).Or(0b1010); got != 0b1110 {
		t.Fatalf("or: got %b", got)
	}
	if got := numeric.U8(0b1100).Xor(0b1010); got != 0b0110 {
		t.Fatalf("xor: got %b", got)
	}
	if got := numeric.I8(0).Not(); got != -1 {
		t.Fatalf("not: got %d", got)
	}
	if got := numeric.I128From64(0).Not(); got != numeric.I128From64(-1) {
		t.Fatalf("I128 not: got %v", got)
	}
	if got := numeric.I128From64(-1).Xor(numeric.I128From64(5)); got != numeric.I128From64(-6) {
		t.Fatalf("I128 xor: got %v want -6", got)
	}
}

func TestBitsString(t *testing.T) {
	tests := []struct {
		name       string
		got        func(int) (string, error)
		breakEvery int
		want       string
	}{
		{name: "I8 nibbles", got: numeric.I8(-77).BitsString, breakEvery: 4, want: "1011 0011"},
		{name: "I8 ungrouped", got: numeric.I8(-77).BitsString, breakEvery: 0, want: "10110011"},
		{name: "I8 negative break", got: numeric.I8(3).BitsString, breakEvery: -1, want: "00000011"},
		{name: "U8 uneven tail", got: numeric.U8(5).BitsString, breakEvery: 3, want: "000 00101"},
		{name: "U8 single group", got: numeric.U8(5).BitsString, breakEvery: 8, want: "00000101"},
		{name: "U8 wider than type", got: numeric.U8(5).BitsString, breakEvery: 9, want: "00000101"},
		{name: "I16 bytes", got: numeric.I16(-1).BitsString, breakEvery: 8, want: "11111111 11111111"},
		{name: "U32 bytes", got: numeric.U32(0x01020304).BitsString, breakEvery: 8, want: "00000001 00000010 00000011 00000100"},
		{name: "U64 halves", got: numeric.U64(1).BitsString, breakEvery: 32, want: "00000000000000000000000000000000 00000000000000000000000000000001"},
		{
			name:       "U128 quarters",
			got:        numeric.U128FromRaw(1<<63, 1).BitsString,
			breakEvery: 32,
			want: "10000000000000000000000000000000 00000000000000000000000000000000 " +
				"00000000000000000000000000000000 00000000000000000000000000000001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got(tt.breakEvery)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}

	t.Run("I128 min", func(t *testing.T) {
		got, err := numeric.I128{}.Min().BitsString(0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "1" + strings.Repeat("0", 127); got != want {
			t.Fatalf("got %q want %q", got, want)
		}
	})
}

func TestFromFloat64Saturates(t *testing.T) {
	tests := []struct {
		name string
		got  any
		want any
	}{
		{name: "I8 truncates", got: numeric.I8(0).FromFloat64(-3.9), want: numeric.I8(-3)},
		{name: "I8 high", got: numeric.I8(0).FromFloat64(1000), want: numeric.I8(math.MaxInt8)},
		{name: "I8 low", got: numeric.I8(0).FromFloat64(-1000), want: numeric.I8(math.MinInt8)},
		{name: "I8 NaN", got: numeric.I8(0).FromFloat64(math.NaN()), want: numeric.I8(0)},
		{name: "I64 inf", got: numeric.I64(0).FromFloat64(math.Inf(1)), want: numeric.I64(math.MaxInt64)},
		{name: "I64 2^63", got: numeric.I64(0).FromFloat64(0x1p63), want: numeric.I64(math.MaxInt64)},
		{name: "U8 negative", got: numeric.U8(0).FromFloat64(-0.5), want: numeric.U8(0)},
		{name: "U8 high", got: numeric.U8(0).FromFloat64(256), want: numeric.U8(math.MaxUint8)},
		{name: "U64 below 2^64", got: numeric.U64(0).FromFloat64(1.8e19), want: numeric.U64(18000000000000000000)},
		{name: "U64 2^64", got: numeric.U64(0).FromFloat64(0x1p64), want: numeric.U64(math.MaxUint64)},
		{name: "I128 negative", got: numeric.I128{}.FromFloat64(-5.5), want: numeric.I128From64(-5)},
		{name: "I128 high", got: numeric.I128{}.FromFloat64(1e39), want: numeric.I128{}.Max()},
		{name: "I128 low", got: numeric.I128{}.FromFloat64(-1e39), want: numeric.I128{}.Min()},
		{name: "I128 NaN", got: numeric.I128{}.FromFloat64(math.NaN()), want: numeric.I128{}},
		{name: "U128 2^64", got: numeric.U128{}.FromFloat64(0x1p64), want: numeric.U128FromRaw(1, 0)},
		{name: "U128 split", got: numeric.U128{}.FromFloat64(0x1p100 + 0x1p60), want: numeric.U128FromRaw(1<<36, 1<<60)},
		{name: "U128 high", got: numeric.U128{}.FromFloat64(math.Inf(1)), want: numeric.U128{}.Max()},
		{name: "U128 negative", got: numeric.U128{}.FromFloat64(-1), want: numeric.U128{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %v want %v", tt.got, tt.want)
			}
		})
	}
}

func TestIntegerFloat64(t *testing.T) {
	if got := numeric.I32(-12).Float64(); got != -12 {
		t.Fatalf("I32: got %v", got)
	}
	if got := numeric.U128FromRaw(1, 0).Float64(); got != 0x1p64 {
		t.Fatalf("U128 2^64: got %v", got)
	}
	if got := numeric.I128From64(-3).Float64(); got != -3 {
		t.Fatalf("I128 -3: got %v", got)
	}
	if got := numeric.I128FromRaw(math.MaxUint64, 0).Float64(); got != -0x1p64 {
		t.Fatalf("I128 -2^64: got %v", got)
	}
	if got := numeric.U128FromRaw(1, 1<<63+2049).Float64(); got != 0x1p64+0x1p63+0x1p12 {
		t.Fatalf("U128 above tie: got %b", got)
	}
	if got := (numeric.I128{}).Min().Float64(); got != -0x1p127 {
		t.Fatalf("I128 min: got %v", got)
	}
}
