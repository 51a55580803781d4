package chain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsAccessors(t *testing.T) {
	params := Params{
		"dst":    "0xabc",
		"wad":    big.NewInt(100),
		"small":  42,
		"flag":   true,
		"digest": []byte{0x01},
		"text":   "metadata",
		"xs":     []string{"a", "b"},
	}

	assert.Equal(t, "0xabc", params.Str("dst"))
	assert.Equal(t, "", params.Str("missing"))
	assert.Equal(t, "", params.Str("flag"), "mistyped values read as zero")

	assert.Equal(t, big.NewInt(100), params.Big("wad"))
	assert.Equal(t, big.NewInt(42), params.Big("small"), "native ints promote")
	assert.Nil(t, params.Big("missing"))

	assert.True(t, params.Bool("flag"))
	assert.False(t, params.Bool("missing"))

	assert.Equal(t, []byte{0x01}, params.Bytes("digest"))
	assert.Equal(t, []byte("metadata"), params.Bytes("text"), "strings coerce to bytes")

	assert.Equal(t, []string{"a", "b"}, As[[]string](params, "xs"))
	assert.Nil(t, As[[]string](params, "missing"))

	assert.True(t, params.Has("dst"))
	assert.False(t, params.Has("missing"))
	assert.Equal(t, any(true), params.Any("flag"))
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	rec.ViewResults["balanceOf"] = big.NewInt(7)
	rec.Fail["withdraw"] = true

	val, err := rec.CallView(t.Context(), "balanceOf", "0xabc")
	assert.NoError(t, err)
	assert.Equal(t, big.NewInt(7), val)

	ok, err := rec.SendTransaction(t.Context(), "0xsender", nil, "transfer", "0xdst", big.NewInt(1))
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = rec.SendTransaction(t.Context(), "0xsender", nil, "withdraw")
	assert.NoError(t, err)
	assert.False(t, ok)

	calls := rec.Calls()
	assert.Len(t, calls, 3)
	assert.True(t, calls[0].View)
	assert.Equal(t, "transfer", calls[1].Method)
	assert.Equal(t, "0xsender", calls[1].Sender)
}
