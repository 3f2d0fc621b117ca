package pdutext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecode(t *testing.T) {
	cases := []struct {
		desc     string
		dir      Direction
		enc      Encoding
		in       string
		capacity int
		out      string
		err      error
	}{
		{"7bit decode", Decode, Encoding{Kind: SevenBitPacked}, "E8329BFD06", 16, "hello", nil},
		{"7bit encode", Encode, Encoding{Kind: SevenBitPacked}, "hello", 16, "E8329BFD06", nil},
		{"8bit decode", Decode, Encoding{Kind: EightBitHex}, "414243", 16, "ABC", nil},
		{"8bit encode", Encode, Encoding{Kind: EightBitHex}, "ABC", 16, "414243", nil},
		{"ucs2 decode", Decode, Encoding{Kind: Ucs2Hex}, "004100E9", 16, "Aé", nil},
		{"ucs2 encode", Encode, Encoding{Kind: Ucs2Hex}, "Aé", 16, "004100E9", nil},
		{"raw decode", Decode, Encoding{Kind: SevenBitRaw}, "plain text", 16, "plain text", nil},
		{"raw encode", Encode, Encoding{Kind: SevenBitRaw}, "plain text", 16, "plain text", nil},
		{"raw too small", Encode, Encoding{Kind: SevenBitRaw}, "plain text", 10, "", ErrBufferTooSmall},
		{"bad direction", Direction(2), Encoding{Kind: SevenBitRaw}, "x", 16, "", ErrInvalidInput},
		{"unknown kind", Decode, Encoding{Kind: Unknown}, "x", 16, "", ErrInvalidInput},
		{"kind out of range", Decode, Encoding{Kind: Kind(9)}, "x", 16, "", ErrInvalidInput},
		{"codec error surfaces", Decode, Encoding{Kind: EightBitHex}, "ABC", 16, "", ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			out, err := Recode(tc.dir, tc.enc, []byte(tc.in), tc.capacity)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Nil(t, out)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.out, out.String())
			assert.LessOrEqual(t, out.Len(), tc.capacity-1)
		})
	}
}

func TestRecodeTag(t *testing.T) {
	enc, err := NewEncoding(SevenBitPacked, 3)
	require.NoError(t, err)

	packed, err := RecodeTag(Encode, enc.Tag(), []byte{0x08, 0x65}, 16)
	require.NoError(t, err)

	text, err := RecodeTag(Decode, enc.Tag(), packed.Bytes(), 16)
	require.NoError(t, err)
	assert.Equal(t, Render([]byte{0x08, 0x65}), text.String())

	_, err = RecodeTag(Decode, 0x0F, []byte("00"), 16)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
