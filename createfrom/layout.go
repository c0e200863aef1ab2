package createfrom

import (
	"encoding/binary"
	"fmt"
)

// Endian selects the byte order of encoded values.
type Endian uint8

const (
	LittleEndian Endian = iota // zero value
	BigEndian
)

func (e Endian) String() string {
	switch e {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	}
	return fmt.Sprintf("Endian(%d)", uint8(e))
}

func (e Endian) order() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Layout describes how fixed-width values are laid out in a byte buffer.
type Layout struct {
	Endian Endian

	// Stride is the distance in bytes between the starts of two
	// consecutive values. Zero means the values are packed.
	Stride int

	// Count is the number of values. Zero means as many as fit.
	Count int
}

// resolve applies the defaults of l for values of width bytes in a buffer
// of n bytes and checks the result. It panics on a layout that does not
// fit.
func (l Layout) resolve(n, width int) (stride, count int) {
	stride, count = l.Stride, l.Count
	if stride == 0 {
		stride = width
	}
	if stride < width || count < 0 {
		panic(fmt.Sprintf("createfrom: invalid layout %+v for %d-byte values", l, width))
	}
	if count == 0 && n >= width {
		count = (n-width)/stride + 1
	}
	if count > 0 && (n < width || count-1 > (n-width)/stride) {
		panic(fmt.Sprintf("createfrom: layout %+v does not fit %d bytes of %d-byte values", l, n, width))
	}
	return stride, count
}

func (e Endian) get(b []byte) (hi, lo uint64) {
	o := e.order()
	switch len(b) {
	case 1:
		return 0, uint64(b[0])
	case 2:
		return 0, uint64(o.Uint16(b))
	case 4:
		return 0, uint64(o.Uint32(b))
	case 8:
		return 0, o.Uint64(b)
	}
	if e == BigEndian {
		return o.Uint64(b[:8]), o.Uint64(b[8:])
	}
	return o.Uint64(b[8:]), o.Uint64(b[:8])
}

func (e Endian) put(b []byte, hi, lo uint64) {
	o := e.order()
	switch len(b) {
	case 1:
		b[0] = byte(lo)
	case 2:
		o.PutUint16(b, uint16(lo))
	case 4:
		o.PutUint32(b, uint32(lo))
	case 8:
		o.PutUint64(b, lo)
	case 16:
		if e == BigEndian {
			o.PutUint64(b[:8], hi)
			o.PutUint64(b[8:], lo)
			return
		}
		o.PutUint64(b[:8], lo)
		o.PutUint64(b[8:], hi)
	}
}
