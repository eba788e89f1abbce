package safe80

import (
	"bytes"
	"io"
	"testing"

	"github.com/kstenerud/go-safeenc/internal/enc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeFullGroup(t *testing.T) {
	input := make([]byte, 15)
	for i := range input {
		input[i] = byte(i + 1)
	}
	encoded := EncodeToString(input)
	assert.Equal(t, "!D@6c8)Yq5iv[j90o98", encoded)

	decoded, err := DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, input, decoded)
}

func TestEncodeDecodePartialGroup(t *testing.T) {
	input := []byte{0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70}
	encoded := EncodeToString(input)
	assert.Equal(t, "(fOt8iZQ^", encoded)

	decoded, err := DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, input, decoded)
}

func TestEncodeDecodeSingleByte(t *testing.T) {
	input := []byte{0xff}
	encoded := EncodeToString(input)
	assert.Equal(t, ")8", encoded)

	decoded, err := DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, input, decoded)
}

func TestAlphabetHasNoConfusablePunctuation(t *testing.T) {
	assert.Len(t, descriptor.EncodeTable, 80)
	for _, c := range []byte("*.:|'") {
		assert.NotContains(t, string(descriptor.EncodeTable), string(c))
	}
}

func TestRoundTripAcrossMultipleGroups(t *testing.T) {
	input := make([]byte, 15*3+9)
	for i := range input {
		input[i] = byte((i * 37) % 256)
	}
	encoded := EncodeToString(input)
	decoded, err := DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, input, decoded)
}

func TestLengthPrefixedRoundTrip(t *testing.T) {
	input := []byte("a safe80 payload that spans several 15-byte groups plus a short tail")
	s := EncodeLToString(input)
	decoded, err := DecodeLString(s)
	require.NoError(t, err)
	assert.Equal(t, input, decoded)
}

func TestWhitespaceNeutrality(t *testing.T) {
	plain := EncodeToString([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
	withWhitespace := "\t" + plain[:3] + "  " + plain[3:] + "\n"
	a, err := DecodeString(plain)
	require.NoError(t, err)
	b, err := DecodeString(withWhitespace)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDecodeInvalidCharacter(t *testing.T) {
	_, err := DecodeString("!D@\x01c8")
	var invalid *enc.InvalidSourceDataError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 3, invalid.Offset)
}

func TestNotEnoughRoom(t *testing.T) {
	encoded := EncodeToString([]byte{1, 2, 3, 4, 5})
	dst := make([]byte, 2)
	_, err := Decode(dst, []byte(encoded))
	assert.ErrorIs(t, err, enc.ErrNotEnoughRoom)
}

func TestStreamingEncoderDecoder(t *testing.T) {
	input := bytes.Repeat([]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77}, 20)

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
