package createfrom_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.dw1.io/fhecore/cast"
	"go.dw1.io/fhecore/createfrom"
	"go.dw1.io/fhecore/numeric"
)

func loose[T numeric.Type](mode createfrom.LooseMode, in ...any) createfrom.Loose[T] {
	return createfrom.NewFromView[createfrom.Loose[T]](createfrom.ViewOf(in), mode)
}

func TestLooseChecked(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		l := loose[numeric.U8](createfrom.Checked, 1, "2", 3.0, json.Number("4"), numeric.I64(5))
		require.NoError(t, l.Err())
		assert.Equal(t, []numeric.U8{1, 2, 3, 4, 5}, l.Values())
	})

	t.Run("outOfRange", func(t *testing.T) {
		l := loose[numeric.U8](createfrom.Checked, 1, 300, 2.5, 4)
		require.Error(t, l.Err())
		assert.True(t, errors.Is(l.Err(), cast.ErrTruncation))
		assert.Contains(t, l.Err().Error(), "element 1")
		assert.Contains(t, l.Err().Error(), "element 2")
		assert.Equal(t, []numeric.U8{1, 0, 0, 4}, l.Values())
	})
}

func TestLooseWrapping(t *testing.T) {
	l := loose[numeric.U8](createfrom.Wrapping, 300, "-1", 2.9, numeric.I16(-2), "x", uint64(511), "7.0")
	require.Error(t, l.Err())
	assert.Contains(t, l.Err().Error(), "element 4")
	assert.NotContains(t, l.Err().Error(), "element 0")
	assert.Equal(t, []numeric.U8{44, 255, 2, 254, 0, 255, 7}, l.Values())
}

func TestLooseWrappingSaturatesFloats(t *testing.T) {
	l := loose[numeric.I8](createfrom.Wrapping, 1e9, -1e9, "12.75")
	require.NoError(t, l.Err())
	assert.Equal(t, []numeric.I8{127, -128, 12}, l.Values())
}

func TestLooseUnknownMode(t *testing.T) {
	assert.Panics(t, func() { loose[numeric.U8](createfrom.LooseMode(9), 1) })
}

func TestLooseEmpty(t *testing.T) {
	l := loose[numeric.F64](createfrom.Checked)
	require.NoError(t, l.Err())
	assert.Empty(t, l.Values())
}
