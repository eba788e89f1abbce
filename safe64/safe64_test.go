package safe64

import (
	"bytes"
	"io"
	"testing"

	"github.com/kstenerud/go-safeenc/internal/enc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	input := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}
	encoded := EncodeToString(input)
	decoded, err := DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, input, decoded)
}

func TestLengthPrefixedEndToEnd(t *testing.T) {
	payload := []byte{
		0x21, 0x7b, 0x01, 0x99, 0x3e, 0xd1, 0x7d, 0x3f, 0x21, 0x8b, 0x39, 0x4c, 0x63, 0xc1, 0x88,
		0x21, 0xc1, 0x88, 0x99, 0x71, 0xa6, 0x9f, 0xf8, 0x45, 0x96, 0xe1, 0x81, 0x39, 0xad, 0xcc,
		0x96, 0x79, 0xd8,
	}
	s := EncodeLToString(payload)
	assert.Equal(t, "W07Mg0aIvGUIwWXn_BNw577R57aM5abzW4_i50DPrB_bbN", s)

	length, consumed, err := ReadLengthField([]byte(s))
	require.NoError(t, err)
	assert.EqualValues(t, len(payload), length)

	decoded, err := DecodeLString(s)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
	assert.Less(t, consumed, len(s))
}

func TestCaseIsSignificant(t *testing.T) {
	lower, err := DecodeString("abc_")
	require.NoError(t, err)
	upper, err := DecodeString("ABC_")
	require.NoError(t, err)
	assert.NotEqual(t, lower, upper)
}

func TestDecodeInvalidCharacter(t *testing.T) {
	_, err := DecodeString("W0!7M")
	var invalid *enc.InvalidSourceDataError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 2, invalid.Offset)
}

func TestStreamingEncoderDecoder(t *testing.T) {
	input := bytes.Repeat([]byte{0xde, 0xad, 0xbe, 0xef, 0x01}, 50)

	var buf bytes.Buffer
	encoder := NewEncoder(&buf)
	for i := 0; i < len(input); i += 13 {
		end := i + 13
		if end > len(input) {
			end = len(input)
		}
		_, err := encoder.Write(input[i:end])
		require.NoError(t, err)
	}
	require.NoError(t, encoder.Close())

	decoder := NewDecoder(&buf)
	got, err := io.ReadAll(decoder)
	require.NoError(t, err)
	assert.Equal(t, input, got)
}

func TestNotEnoughRoom(t *testing.T) {
	input := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	encoded := EncodeToString(input)
	dst := make([]byte, 2)
	_, err := Decode(dst, []byte(encoded))
	assert.ErrorIs(t, err, enc.ErrNotEnoughRoom)
}
