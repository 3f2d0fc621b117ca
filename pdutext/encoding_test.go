package pdutext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodingTag(t *testing.T) {
	cases := []struct {
		kind   Kind
		offset uint8
		tag    byte
	}{
		{SevenBitPacked, 0, 0x00},
		{EightBitHex, 0, 0x01},
		{Ucs2Hex, 0, 0x02},
		{SevenBitRaw, 0, 0x03},
		{SevenBitPacked, 1, 0x10},
		{SevenBitPacked, 7, 0x70},
	}

	for _, tc := range cases {
		enc, err := NewEncoding(tc.kind, tc.offset)
		require.NoError(t, err)
		assert.Equal(t, tc.tag, enc.Tag())
		assert.Equal(t, enc, ParseTag(tc.tag))
	}
}

func TestNewEncodingValidation(t *testing.T) {
	_, err := NewEncoding(SevenBitPacked, 8)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewEncoding(Ucs2Hex, 2)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseNames(t *testing.T) {
	for _, k := range []Kind{SevenBitPacked, EightBitHex, Ucs2Hex, SevenBitRaw, Unknown} {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	k, err := ParseKind(" UCS2 ")
	require.NoError(t, err)
	assert.Equal(t, Ucs2Hex, k)

	_, err = ParseKind("utf32")
	assert.ErrorIs(t, err, ErrInvalidInput)

	d, err := ParseDirection("Encode")
	require.NoError(t, err)
	assert.Equal(t, Encode, d)

	_, err = ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrInvalidInput)

	enc := Encoding{Kind: SevenBitPacked, Offset: 3}
	assert.Equal(t, "7bit+3", enc.String())
}
