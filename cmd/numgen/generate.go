package main

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"
)

const header = `// Code generated by numgen. DO NOT EDIT.

package {{.Package}}

import (
	"math"
	"math/bits"
	"strconv"
)
`

const signedTmpl = `
// {{.Name}} is the {{.Prim}} leaf.
type {{.Name}} {{.Prim}}

func ({{.Name}}) Bits() int { return {{.Bits}} }
func ({{.Name}}) Zero() {{.Name}} { return 0 }
func ({{.Name}}) One() {{.Name}} { return 1 }
func ({{.Name}}) Two() {{.Name}} { return 2 }
func ({{.Name}}) Min() {{.Name}} { return {{.Min}} }
func ({{.Name}}) Max() {{.Name}} { return {{.Max}} }
func ({{.Name}}) UnsignedWitness() {{.Pair}} { return 0 }

func (x {{.Name}}) Less(y {{.Name}}) bool { return x < y }
func (x {{.Name}}) Add(y {{.Name}}) {{.Name}} { return x + y }
func (x {{.Name}}) Sub(y {{.Name}}) {{.Name}} { return x - y }
func (x {{.Name}}) Mul(y {{.Name}}) {{.Name}} { return x * y }
func (x {{.Name}}) Div(y {{.Name}}) {{.Name}} { return x / y }
func (x {{.Name}}) Rem(y {{.Name}}) {{.Name}} { return x % y }
func (x {{.Name}}) Neg() {{.Name}} { return -x }
func (x {{.Name}}) And(y {{.Name}}) {{.Name}} { return x & y }
func (x {{.Name}}) Or(y {{.Name}}) {{.Name}} { return x | y }
func (x {{.Name}}) Xor(y {{.Name}}) {{.Name}} { return x ^ y }
func (x {{.Name}}) Not() {{.Name}} { return ^x }
func (x {{.Name}}) Shl(n uint) {{.Name}} { return x << n }
func (x {{.Name}}) Shr(n uint) {{.Name}} { return x >> n }

func (x *{{.Name}}) AddAssign(y {{.Name}}) { *x += y }
func (x *{{.Name}}) SubAssign(y {{.Name}}) { *x -= y }
func (x *{{.Name}}) MulAssign(y {{.Name}}) { *x *= y }
func (x *{{.Name}}) DivAssign(y {{.Name}}) { *x /= y }
func (x *{{.Name}}) RemAssign(y {{.Name}}) { *x %= y }
func (x *{{.Name}}) AndAssign(y {{.Name}}) { *x &= y }
func (x *{{.Name}}) OrAssign(y {{.Name}}) { *x |= y }
func (x *{{.Name}}) XorAssign(y {{.Name}}) { *x ^= y }
func (x *{{.Name}}) ShlAssign(n uint) { *x <<= n }
func (x *{{.Name}}) ShrAssign(n uint) { *x >>= n }

func (x {{.Name}}) IntoUnsigned() {{.Pair}} { return CastFrom[{{.Pair}}](x) }
func (x {{.Name}}) WrappingAbs() {{.Name}} { return wrappingAbs(x) }
func (x {{.Name}}) Float64() float64 { return float64(x) }

func (x {{.Name}}) BitsString(breakEvery int) (string, error) {
	return groupedBits(0, uint64({{.PairPrim}}(x)), x.Bits(), breakEvery)
}

func ({{.Name}}) FromFloat64(f float64) {{.Name}} {
	return floatToSigned[{{.Name}}](f, {{.Min}}, {{.Max}})
}
`

const unsignedTmpl = `
// {{.Name}} is the {{.Prim}} leaf.
type {{.Name}} {{.Prim}}

func ({{.Name}}) Bits() int { return {{.Bits}} }
func ({{.Name}}) Zero() {{.Name}} { return 0 }
func ({{.Name}}) One() {{.Name}} { return 1 }
func ({{.Name}}) Two() {{.Name}} { return 2 }
func ({{.Name}}) Min() {{.Name}} { return {{.Min}} }
func ({{.Name}}) Max() {{.Name}} { return {{.Max}} }
func ({{.Name}}) SignedWitness() {{.Pair}} { return 0 }

func (x {{.Name}}) Less(y {{.Name}}) bool { return x < y }
func (x {{.Name}}) Add(y {{.Name}}) {{.Name}} { return x + y }
func (x {{.Name}}) Sub(y {{.Name}}) {{.Name}} { return x - y }
func (x {{.Name}}) Mul(y {{.Name}}) {{.Name}} { return x * y }
func (x {{.Name}}) Div(y {{.Name}}) {{.Name}} { return x / y }
func (x {{.Name}}) Rem(y {{.Name}}) {{.Name}} { return x % y }
func (x {{.Name}}) And(y {{.Name}}) {{.Name}} { return x & y }
func (x {{.Name}}) Or(y {{.Name}}) {{.Name}} { return x | y }
func (x {{.Name}}) Xor(y {{.Name}}) {{.Name}} { return x ^ y }
func (x {{.Name}}) Not() {{.Name}} { return ^x }
func (x {{.Name}}) Shl(n uint) {{.Name}} { return x << n }
func (x {{.Name}}) Shr(n uint) {{.Name}} { return x >> n }

func (x *{{.Name}}) AddAssign(y {{.Name}}) { *x += y }
func (x *{{.Name}}) SubAssign(y {{.Name}}) { *x -= y }
func (x *{{.Name}}) MulAssign(y {{.Name}}) { *x *= y }
func (x *{{.Name}}) DivAssign(y {{.Name}}) { *x /= y }
func (x *{{.Name}}) RemAssign(y {{.Name}}) { *x %= y }
func (x *{{.Name}}) AndAssign(y {{.Name}}) { *x &= y }
func (x *{{.Name}}) OrAssign(y {{.Name}}) { *x |= y }
func (x *{{.Name}}) XorAssign(y {{.Name}}) { *x ^= y }
func (x *{{.Name}}) ShlAssign(n uint) { *x <<= n }
func (x *{{.Name}}) ShrAssign(n uint) { *x >>= n }

func (x {{.Name}}) IntoSigned() {{.Pair}} { return CastFrom[{{.Pair}}](x) }
func (x {{.Name}}) Float64() float64 { return float64(x) }

func (x {{.Name}}) BitsString(breakEvery int) (string, error) {
	return groupedBits(0, uint64(x), x.Bits(), breakEvery)
}

func ({{.Name}}) FromFloat64(f float64) {{.Name}} {
	return floatToUnsigned[{{.Name}}](f, {{.Max}})
}
`

const floatTmpl = `
// {{.Name}} is the {{.Prim}} leaf.
type {{.Name}} {{.Prim}}

func ({{.Name}}) Bits() int { return {{.Bits}} }
func ({{.Name}}) Zero() {{.Name}} { return 0 }
func ({{.Name}}) One() {{.Name}} { return 1 }
func ({{.Name}}) Two() {{.Name}} { return 2 }
func ({{.Name}}) Max() {{.Name}} { return {{.Max}} }
func ({{.Name}}) MantissaDigits() int { return {{.Mantissa}} }

func (x {{.Name}}) Less(y {{.Name}}) bool { return x < y }
func (x {{.Name}}) Add(y {{.Name}}) {{.Name}} { return x + y }
func (x {{.Name}}) Sub(y {{.Name}}) {{.Name}} { return x - y }
func (x {{.Name}}) Mul(y {{.Name}}) {{.Name}} { return x * y }
func (x {{.Name}}) Div(y {{.Name}}) {{.Name}} { return x / y }
func (x {{.Name}}) Rem(y {{.Name}}) {{.Name}} { return {{.Name}}(math.Mod(float64(x), float64(y))) }
func (x {{.Name}}) Neg() {{.Name}} { return -x }

func (x *{{.Name}}) AddAssign(y {{.Name}}) { *x += y }
func (x *{{.Name}}) SubAssign(y {{.Name}}) { *x -= y }
func (x *{{.Name}}) MulAssign(y {{.Name}}) { *x *= y }
func (x *{{.Name}}) DivAssign(y {{.Name}}) { *x /= y }
func (x *{{.Name}}) RemAssign(y {{.Name}}) { *x = x.Rem(y) }

func (x {{.Name}}) Powi(n int32) {{.Name}} { return powi(x, n) }
func (x {{.Name}}) Round() {{.Name}} { return {{.Name}}(math.Round(float64(x))) }
func (x {{.Name}}) Fract() {{.Name}} { return fract(x) }
func (x {{.Name}}) RemEuclid(rhs {{.Name}}) {{.Name}} { return remEuclid(x, rhs) }
func (x {{.Name}}) Sqrt() {{.Name}} { return {{.Name}}(math.Sqrt(float64(x))) }
func (x {{.Name}}) Ln() {{.Name}} { return {{.Name}}(math.Log(float64(x))) }
func (x {{.Name}}) Abs() {{.Name}} { return {{.Name}}(math.Abs(float64(x))) }
func (x {{.Name}}) Floor() {{.Name}} { return {{.Name}}(math.Floor(float64(x))) }
func (x {{.Name}}) Float64() float64 { return float64(x) }
func ({{.Name}}) FromFloat64(f float64) {{.Name}} { return {{.Name}}(f) }

func (x {{.Name}}) BitString() string {
	return floatBitString(uint64({{.BitsFunc}}({{.Prim}}(x))), {{.Bits}}, {{.ExpBits}})
}
`

var (
	headerT   = template.Must(template.New("header").Parse(header))
	templates = map[string]*template.Template{
		"signed":   template.Must(template.New("signed").Parse(signedTmpl)),
		"unsigned": template.Must(template.New("unsigned").Parse(unsignedTmpl)),
		"float":    template.Must(template.New("float").Parse(floatTmpl)),
	}
)

// generate renders the leaf methods for pkg and returns gofmt-ed source.
func generate(pkg string, ls []leaf) ([]byte, error) {
	var buf bytes.Buffer
	if err := headerT.Execute(&buf, struct{ Package string }{pkg}); err != nil {
		return nil, err
	}

	for _, l := range ls {
		t, ok := templates[l.Kind]
		if !ok {
			return nil, fmt.Errorf("leaf %s: unknown kind %q", l.Name, l.Kind)
		}
		if err := t.Execute(&buf, l); err != nil {
			return nil, fmt.Errorf("leaf %s: %w", l.Name, err)
		}
	}

	src, err := imports.Process("zz_generated.go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return buf.Bytes(), fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}
