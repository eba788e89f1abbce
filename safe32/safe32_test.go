package safe32

import (
	"bytes"
	"io"
	"testing"

	"github.com/kstenerud/go-safeenc/internal/enc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	input := []byte{0x00, 0x04, 0x9a, 0x33}
	encoded := EncodeToString(input)
	decoded, err := DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, input, decoded)
}

func TestDecodeVisuallyAmbiguousInput(t *testing.T) {
	decoded, err := DecodeString("0oOa7jm")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x04, 0x9a, 0x33}, decoded)
}

func TestSubstitutionIdempotence(t *testing.T) {
	a, err := DecodeString("iIlLoOuUv")
	require.NoError(t, err)
	b, err := DecodeString("111100vvv")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCanonicalOutputExcludesU(t *testing.T) {
	for i := 0; i < 256; i++ {
		s := EncodeToString([]byte{byte(i), byte(i + 1)})
		assert.NotContains(t, s, "u")
		assert.NotContains(t, s, "U")
	}
}

func TestHyphenWhitespace(t *testing.T) {
	plain := EncodeToString([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
	hyphenated := plain[:4] + "-" + plain[4:]
	decoded, err := DecodeString(hyphenated)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05}, decoded)
}

func TestLengthPrefixedRoundTrip(t *testing.T) {
	input := []byte("a payload long enough to span more than one group")
	s := EncodeLToString(input)
	decoded, err := DecodeLString(s)
	require.NoError(t, err)
	assert.Equal(t, input, decoded)
}

func TestUint64CompactRoundTrip(t *testing.T) {
	ids := []uint64{0, 1, 1234567, (1 << 34) - 1, 1 << 34, ^uint64(0)}
	for _, id := range ids {
		s := PutCompact(id)
		got, err := Uint64(s)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestUint64FullEncodingOrdering(t *testing.T) {
	a := PutUint64(1000)
	b := PutUint64(1001)
	assert.Less(t, string(a[:]), string(b[:]))
}

func TestUint64CorruptInput(t *testing.T) {
	_, err := Uint64([]byte("short"))
	require.Error(t, err)
	var invalid *enc.InvalidSourceDataError
	require.ErrorAs(t, err, &invalid)
}

func TestStreamingEncoderDecoder(t *testing.T) {
	input := bytes.Repeat([]byte("streaming payload "), 20)

	var buf bytes.Buffer
	encoder := NewEncoder(&buf)
	for i := 0; i < len(input); i += 11 {
		end := i + 11
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
