package safe16

import (
	"bytes"
	"io"
	"testing"

	"github.com/kstenerud/go-safeenc/internal/enc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	input := []byte{0xff, 0x71, 0xdd, 0x3a, 0x92}
	encoded := EncodeToString(input)
	assert.Equal(t, "ff71dd3a92", encoded)

	decoded, err := DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, input, decoded)
}

func TestDecodeUppercaseAndHyphenWhitespace(t *testing.T) {
	decoded, err := DecodeString("85a9-6ed2-88dd-09bc")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x85, 0xa9, 0x6e, 0xd2, 0x88, 0xdd, 0x09, 0xbc}, decoded)

	decoded, err = DecodeString("FF71DD3A92")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0x71, 0xdd, 0x3a, 0x92}, decoded)
}

func TestCanonicalOutputNeverUppercase(t *testing.T) {
	for i := 0; i < 256; i++ {
		s := EncodeToString([]byte{byte(i)})
		for _, c := range s {
			assert.False(t, c >= 'A' && c <= 'F', "unexpected uppercase character in %q", s)
		}
	}
}

func TestWhitespaceNeutrality(t *testing.T) {
	plain := EncodeToString([]byte{0x01, 0x02, 0x03, 0x04})
	withWhitespace := "  " + plain[:2] + "\t\n" + plain[2:] + "  "
	a, err := DecodeString(plain)
	require.NoError(t, err)
	b, err := DecodeString(withWhitespace)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDecodeInvalidCharacter(t *testing.T) {
	_, err := DecodeString("ff7!dd")
	require.Error(t, err)
	var invalid *enc.InvalidSourceDataError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 3, invalid.Offset)
}

func TestLengthPrefixedRoundTrip(t *testing.T) {
	input := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	s := EncodeLToString(input)
	decoded, err := DecodeLString(s)
	require.NoError(t, err)
	assert.Equal(t, input, decoded)
}

func TestLengthPrefixedTruncatedData(t *testing.T) {
	input := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	s := EncodeLToString(input)
	_, err := DecodeLString(s[:len(s)-4])
	assert.ErrorIs(t, err, enc.ErrTruncatedData)
}

func TestFeedResumeAcrossBufferBoundaries(t *testing.T) {
	input := []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77}
	full := EncodeToString(input)

	var out []byte
	src := []byte(full)
	for len(src) > 0 {
		n := 3
		if n > len(src) {
			n = len(src)
		}
		dst := make([]byte, 64)
		consumed, written, _, err := DecodeFeed(src[:n], dst, enc.Flags{SrcAtEnd: n == len(src), DstAtEnd: true})
		require.NoError(t, err)
		out = append(out, dst[:written]...)
		src = src[consumed:]
	}
	assert.Equal(t, input, out)
}

// TestDecodeFeedResumeWithConstrainedDestination is spec.md §8.2 scenario 6: decode
// "ff71dd3a92" into a 1-byte destination, looping until complete. Unlike
// TestFeedResumeAcrossBufferBoundaries (which only ever constrains the source side), this
// exercises DecodeFeed's destination back-pressure branch (§4.4.3's "if dst + ... > dst_end:
// break"), so the destination must NOT be declared the terminator (DstAtEnd: false) while
// the loop still intends to supply more capacity on the next call.
func TestDecodeFeedResumeWithConstrainedDestination(t *testing.T) {
	want := []byte{0xff, 0x71, 0xdd, 0x3a, 0x92}
	src := []byte("ff71dd3a92")

	var out []byte
	sawPartiallyComplete := false
	for len(src) > 0 {
		dst := make([]byte, 1)
		consumed, written, status, err := DecodeFeed(src, dst, enc.Flags{SrcAtEnd: true, DstAtEnd: false})
		require.NoError(t, err)
		if status == enc.StatusPartiallyComplete {
			sawPartiallyComplete = true
		}
		out = append(out, dst[:written]...)
		src = src[consumed:]
	}
	assert.True(t, sawPartiallyComplete, "expected at least one PartiallyComplete status from a 1-byte destination")
	assert.Equal(t, want, out)
}

// TestEncodeFeedResumeWithConstrainedDestination exercises EncodeFeed's own back-pressure
// branch (§4.4.2's "if dst_remaining < chunks_per_group: return PartiallyComplete"): a
// destination sized for exactly two groups forces the engine to stop mid-stream and hand
// back a cursor the caller resumes from, across a five-group source.
func TestEncodeFeedResumeWithConstrainedDestination(t *testing.T) {
	input := []byte{0x11, 0x22, 0x33, 0x44, 0x55}
	want := EncodeToString(input)

	var out []byte
	src := input
	sawPartiallyComplete := false
	for len(src) > 0 {
		dst := make([]byte, 4) // room for exactly two groups (2 chunks each)
		consumed, written, status := EncodeFeed(src, dst, true)
		if status == enc.StatusPartiallyComplete {
			sawPartiallyComplete = true
		}
		out = append(out, dst[:written]...)
		src = src[consumed:]
	}
	assert.True(t, sawPartiallyComplete, "expected at least one PartiallyComplete status from a constrained destination")
	assert.Equal(t, want, string(out))
}

func TestStreamingEncoderDecoder(t *testing.T) {
	input := []byte("the quick brown fox jumps over the lazy dog 0123456789")

	var buf bytes.Buffer
	encoder := NewEncoder(&buf)
	for i := 0; i < len(input); i += 7 {
		end := i + 7
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

func TestDecodedLenEncodedLenInvalidLength(t *testing.T) {
	_, err := DecodedLen(-1)
	assert.ErrorIs(t, err, enc.ErrInvalidLength)
	_, err = EncodedLen(-1, false)
	assert.ErrorIs(t, err, enc.ErrInvalidLength)
}
