package createfrom

import (
	"errors"
	"fmt"

	spfcast "github.com/spf13/cast"

	"go.dw1.io/fhecore/cast"
	"go.dw1.io/fhecore/numeric"
)

// LooseMode selects how [Loose] converts loosely typed elements.
type LooseMode uint8

const (
	// Checked rejects elements that do not fit T, see [cast.To].
	Checked LooseMode = iota

	// Wrapping parses each element leniently and converts it with the total
	// [numeric.CastFrom] rule, so out-of-range values wrap or saturate.
	// Only unparseable elements are rejected.
	Wrapping
)

// Loose holds numeric leaves materialized from loosely typed storage such
// as decoded JSON arrays or configuration values.
type Loose[T numeric.Type] struct {
	vals []T
	err  error
}

var _ FromView[any, LooseMode, Loose[numeric.I64]] = Loose[numeric.I64]{}

// CreateFromView converts every element of in. Elements that cannot be
// converted are left as zero and reported by [Loose.Err].
//
// It panics on an unknown mode.
func (Loose[T]) CreateFromView(in View[any], mode LooseMode) Loose[T] {
	switch mode {
	case Checked:
		vals, err := cast.Slice[T](in.s)
		return Loose[T]{vals: vals, err: err}
	case Wrapping:
		vals := make([]T, in.Len())
		var errs []error
		for i, v := range in.s {
			to, err := wrapTo[T](v)
			if err != nil {
				errs = append(errs, fmt.Errorf("element %d: %w", i, err))
				continue
			}
			vals[i] = to
		}
		return Loose[T]{vals: vals, err: errors.Join(errs...)}
	}
	panic(fmt.Sprintf("createfrom: unknown loose mode %d", mode))
}

// Values returns the converted elements.
func (l Loose[T]) Values() []T { return l.vals }

// Err returns the joined conversion errors, or nil.
func (l Loose[T]) Err() error { return l.err }

// wrapTo converts v to T with the total cast rule.
func wrapTo[T numeric.Type](v any) (T, error) {
	switch x := v.(type) {
	case numeric.I8:
		return numeric.CastFrom[T](x), nil
	case numeric.I16:
		return numeric.CastFrom[T](x), nil
	case numeric.I32:
		return numeric.CastFrom[T](x), nil
	case numeric.I64:
		return numeric.CastFrom[T](x), nil
	case numeric.I128:
		return numeric.CastFrom[T](x), nil
	case numeric.Int:
		return numeric.CastFrom[T](x), nil
	case numeric.U8:
		return numeric.CastFrom[T](x), nil
	case numeric.U16:
		return numeric.CastFrom[T](x), nil
	case numeric.U32:
		return numeric.CastFrom[T](x), nil
	case numeric.U64:
		return numeric.CastFrom[T](x), nil
	case numeric.U128:
		return numeric.CastFrom[T](x), nil
	case numeric.Uint:
		return numeric.CastFrom[T](x), nil
	case numeric.F32:
		return numeric.CastFrom[T](x), nil
	case numeric.F64:
		return numeric.CastFrom[T](x), nil
	case int, int8, int16, int32, int64:
		i, err := spfcast.ToE[int64](x)
		return numeric.CastFrom[T](numeric.I64(i)), err
	case uint, uint8, uint16, uint32, uint64, uintptr:
		u, err := spfcast.ToE[uint64](x)
		return numeric.CastFrom[T](numeric.U64(u)), err
	case float32:
		return numeric.CastFrom[T](numeric.F32(x)), nil
	case float64:
		return numeric.CastFrom[T](numeric.F64(x)), nil
	}

	// Strings, json.Number, bool and the like: prefer an exact integer
	// parse so large values wrap instead of rounding through a float.
	if i, err := spfcast.ToE[int64](v); err == nil {
		return numeric.CastFrom[T](numeric.I64(i)), nil
	}
	if u, err := spfcast.ToE[uint64](v); err == nil {
		return numeric.CastFrom[T](numeric.U64(u)), nil
	}
	f, err := spfcast.ToE[float64](v)
	if err != nil {
		var zero T
		return zero, err
	}
	return numeric.CastFrom[T](numeric.F64(f)), nil
}
