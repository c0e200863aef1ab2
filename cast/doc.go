// Package cast converts loosely typed values into numeric leaves.
//
// Unlike [numeric.CastFrom], which is total and silently wraps or
// saturates, the conversions here are checked: a value that does not fit
// the target leaf is reported with [ErrTruncation] instead of being
// changed.
//
// Integer sources are range checked with [safemath]. Strings, booleans,
// [encoding/json.Number] and other basic values are parsed with [cast]
// first and then range checked the same way. 128-bit targets go through
// [math/big].
package cast
