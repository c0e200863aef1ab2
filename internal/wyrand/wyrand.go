package wyrand

import (
	"encoding/binary"
	"math/bits"
	"math/rand/v2"
)

// Compile-time interface assertion.
var _ rand.Source = (*Source)(nil)

// wyhash secrets. These are fixed so the sequences are deterministic.
const (
	k0 = uint64(0xa0761d6478bd642f)
	k1 = uint64(0xe7037ed1a0b428db)
	k2 = uint64(0x8ebc6af09c88c6e3)
	k3 = uint64(0x589965cc75374cc3)
	k4 = uint64(0x1d8e4e27c47d124f)
)

// Source is a wyrand generator. The zero value is a valid source seeded
// with 0. A Source is not safe for concurrent use.
type Source struct {
	state uint64
}

// New returns a source seeded with seed.
func New(seed uint64) *Source { return &Source{state: seed} }

// NewFromLabel returns a source seeded with the wyhash of label, typically
// a test name.
func NewFromLabel(label string) *Source { return New(Sum64([]byte(label))) }

// Uint64 advances the state and returns the next 64 random bits.
func (s *Source) Uint64() uint64 {
	s.state += k0
	return mix64(s.state, s.state^k1)
}

// Rand wraps s in a [rand.Rand].
func (s *Source) Rand() *rand.Rand { return rand.New(s) }

// Sum64 returns the wyhash-64 of data with seed 0.
func Sum64(data []byte) uint64 {
	var a, c uint64
	seed := k0
	n := len(data)

	switch {
	case n == 0:
		return seed
	case n < 4:
		a = uint64(data[0])
		a |= uint64(data[n>>1]) << 8
		a |= uint64(data[n-1]) << 16
	case n < 8:
		a = uint64(binary.LittleEndian.Uint32(data))
		c = uint64(binary.LittleEndian.Uint32(data[n-4:]))
	case n <= 16:
		a = binary.LittleEndian.Uint64(data)
		c = binary.LittleEndian.Uint64(data[n-8:])
	default:
		l, i := n, 0
		if l > 48 {
			seed1, seed2 := seed, seed
			for ; l > 48; l -= 48 {
				seed = mix64(binary.LittleEndian.Uint64(data[i:])^k1, binary.LittleEndian.Uint64(data[i+8:])^seed)
				seed1 = mix64(binary.LittleEndian.Uint64(data[i+16:])^k2, binary.LittleEndian.Uint64(data[i+24:])^seed1)
				seed2 = mix64(binary.LittleEndian.Uint64(data[i+32:])^k3, binary.LittleEndian.Uint64(data[i+40:])^seed2)
				i += 48
			}
			seed ^= seed1 ^ seed2
		}
		for ; l > 16; l -= 16 {
			seed = mix64(binary.LittleEndian.Uint64(data[i:])^k1, binary.LittleEndian.Uint64(data[i+8:])^seed)
			i += 16
		}
		a = binary.LittleEndian.Uint64(data[i+l-16:])
		c = binary.LittleEndian.Uint64(data[i+l-8:])
	}

	return mix64(k4^uint64(n), mix64(a^k1, c^seed))
}

func mix64(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}
