package numeric_test

import (
	"fmt"

	"go.dw1.io/fhecore/numeric"
)

func ExampleI8_BitsString() {
	s, _ := numeric.I8(-77).BitsString(4)
	fmt.Println(s)
	// Output: 1011 0011
}

func ExampleF32_BitString() {
	fmt.Println(numeric.F32(1).BitString())
	// Output: 0 01111111 00000000000000000000000
}

func ExampleCastFrom() {
	fmt.Println(numeric.CastFrom[numeric.U8](numeric.I8(-1)))
	fmt.Println(numeric.CastFrom[numeric.I32](numeric.F64(-2.9)))
	fmt.Println(numeric.CastFrom[numeric.I8](numeric.F64(1e9)))
	// Output:
	// 255
	// -2
	// 127
}

func ExampleSignedInteger() {
	fmt.Println(numeric.I16(-1).IntoUnsigned())
	fmt.Println(numeric.I8(-128).WrappingAbs())
	// Output:
	// 65535
	// -128
}
