package main

// leaf describes one primitive-backed numeric leaf type.
type leaf struct {
	Name string // leaf type name, e.g. "I8"
	Prim string // underlying Go type, e.g. "int8"
	Kind string // "signed", "unsigned" or "float"
	Bits string // width expression

	// Integer leaves.
	Pair     string // counterpart leaf
	PairPrim string // counterpart's underlying type
	Min      string
	Max      string

	// Float leaves.
	Mantissa int
	ExpBits  int
	BitsFunc string
}

// leaves is the closed list of primitive-backed leaves, in output order. The
// 128-bit leaves are not generated.
var leaves = []leaf{
	{Name: "I8", Prim: "int8", Kind: "signed", Bits: "8", Pair: "U8", PairPrim: "uint8", Min: "math.MinInt8", Max: "math.MaxInt8"},
	{Name: "I16", Prim: "int16", Kind: "signed", Bits: "16", Pair: "U16", PairPrim: "uint16", Min: "math.MinInt16", Max: "math.MaxInt16"},
	{Name: "I32", Prim: "int32", Kind: "signed", Bits: "32", Pair: "U32", PairPrim: "uint32", Min: "math.MinInt32", Max: "math.MaxInt32"},
	{Name: "I64", Prim: "int64", Kind: "signed", Bits: "64", Pair: "U64", PairPrim: "uint64", Min: "math.MinInt64", Max: "math.MaxInt64"},
	{Name: "Int", Prim: "int", Kind: "signed", Bits: "strconv.IntSize", Pair: "Uint", PairPrim: "uint", Min: "math.MinInt", Max: "math.MaxInt"},

	{Name: "U8", Prim: "uint8", Kind: "unsigned", Bits: "8", Pair: "I8", PairPrim: "int8", Min: "0", Max: "math.MaxUint8"},
	{Name: "U16", Prim: "uint16", Kind: "unsigned", Bits: "16", Pair: "I16", PairPrim: "int16", Min: "0", Max: "math.MaxUint16"},
	{Name: "U32", Prim: "uint32", Kind: "unsigned", Bits: "32", Pair: "I32", PairPrim: "int32", Min: "0", Max: "math.MaxUint32"},
	{Name: "U64", Prim: "uint64", Kind: "unsigned", Bits: "64", Pair: "I64", PairPrim: "int64", Min: "0", Max: "math.MaxUint64"},
	{Name: "Uint", Prim: "uint", Kind: "unsigned", Bits: "bits.UintSize", Pair: "Int", PairPrim: "int", Min: "0", Max: "math.MaxUint"},

	{Name: "F32", Prim: "float32", Kind: "float", Bits: "32", Max: "math.MaxFloat32", Mantissa: 24, ExpBits: 8, BitsFunc: "math.Float32bits"},
	{Name: "F64", Prim: "float64", Kind: "float", Bits: "64", Max: "math.MaxFloat64", Mantissa: 53, ExpBits: 11, BitsFunc: "math.Float64bits"},
}
