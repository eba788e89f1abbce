package safe64

import (
	"io"
	"slices"

	"github.com/kstenerud/go-safeenc/internal/enc"
)

const version = "1.0.0"

var descriptor = &enc.Descriptor{
	Radix:              64,
	BytesPerGroup:      3,
	ChunksPerGroup:     4,
	BitsPerChunk:       6,
	BitsPerLengthChunk: 5,
	Algebra:            enc.BitPacked,
	EncodeTable:        []byte("-0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz"),
	ChunkToByteCount:   []int{0, 0, 1, 2, 3},
	ByteToChunkCount:   []int{0, 2, 3, 4},
	Version:            version,
}

func init() {
	// Case is significant for radix 64 (both cases are distinct canonical characters), so
	// there is no uppercase alias and no confusable-character substitution table.
	enc.InitDecodeTable(descriptor, []byte("\t\n\r "), false, nil)
}

// Version returns this codec's semantic version.
func Version() string { return version }

// DecodedLen returns the maximum number of decoded bytes for an encoded buffer of length
// encodedLen (an upper bound: embedded whitespace may shrink the actual output).
func DecodedLen(encodedLen int) (int, error) {
	if encodedLen < 0 {
		return 0, enc.ErrInvalidLength
	}
	full := encodedLen / descriptor.ChunksPerGroup
	rem := encodedLen % descriptor.ChunksPerGroup
	return full*descriptor.BytesPerGroup + descriptor.ChunkToByteCount[rem], nil
}

// EncodedLen returns the exact number of encoded characters produced from decodedLen bytes,
// optionally including a length-field prefix.
func EncodedLen(decodedLen int, includeLength bool) (int, error) {
	if decodedLen < 0 {
		return 0, enc.ErrInvalidLength
	}
	full := decodedLen / descriptor.BytesPerGroup
	rem := decodedLen % descriptor.BytesPerGroup
	n := full*descriptor.ChunksPerGroup + descriptor.ByteToChunkCount[rem]
	if includeLength {
		n += enc.LengthFieldSize(descriptor, uint64(decodedLen))
	}
	return n, nil
}

// Encode writes EncodedLen(len(src), false) bytes to dst, returning the number of bytes
// written. dst must be sized accordingly; if it is too small, Encode returns a short count
// alongside ErrNotEnoughRoom (spec §4.5).
func Encode(dst, src []byte) (int, error) {
	_, written, status := enc.EncodeFeed(descriptor, src, dst, true)
	if status == enc.StatusPartiallyComplete {
		return written, enc.ErrNotEnoughRoom
	}
	return written, nil
}

// EncodeToString returns the safe64 encoding of src.
func EncodeToString(src []byte) string {
	n, _ := EncodedLen(len(src), false)
	buf := make([]byte, n)
	_, _ = Encode(buf, src)
	return string(buf)
}

// AppendEncode appends the safe64 encoding of src to dst and returns the extended buffer.
func AppendEncode(dst, src []byte) []byte {
	n, _ := EncodedLen(len(src), false)
	dst = slices.Grow(dst, n)
	_, _ = Encode(dst[len(dst):][:n], src)
	return dst[:len(dst)+n]
}

// Decode decodes src into dst, returning the number of bytes written. dst must be sized at
// least DecodedLen(len(src)).
func Decode(dst, src []byte) (int, error) {
	_, written, _, err := enc.DecodeFeed(descriptor, src, dst, enc.Flags{SrcAtEnd: true, DstAtEnd: true})
	return written, err
}

// DecodeString returns the bytes represented by the safe64-encoded string s.
func DecodeString(s string) ([]byte, error) {
	n, _ := DecodedLen(len(s))
	buf := make([]byte, n)
	written, err := Decode(buf, []byte(s))
	return buf[:written], err
}

// AppendDecode appends the decoding of src to dst and returns the extended buffer.
func AppendDecode(dst, src []byte) ([]byte, error) {
	n, _ := DecodedLen(len(src))
	dst = slices.Grow(dst, n)
	written, err := Decode(dst[len(dst):][:n], src)
	return dst[:len(dst)+written], err
}

// WriteLengthField writes length as a chunk-encoded length prefix to dst.
func WriteLengthField(length uint64, dst []byte) (int, error) {
	return enc.WriteLengthField(descriptor, length, dst)
}

// ReadLengthField reads a chunk-encoded length prefix from buf.
func ReadLengthField(buf []byte) (length uint64, consumed int, err error) {
	return enc.ReadLengthField(descriptor, buf)
}

// EncodeL writes a length-prefixed encoding of src to dst.
func EncodeL(dst, src []byte) (int, error) {
	n, err := WriteLengthField(uint64(len(src)), dst)
	if err != nil {
		return 0, err
	}
	w, err := Encode(dst[n:], src)
	if err != nil {
		return n + w, err
	}
	return n + w, nil
}

// EncodeLToString returns the length-prefixed safe64 encoding of src.
func EncodeLToString(src []byte) string {
	n, _ := EncodedLen(len(src), true)
	buf := make([]byte, n)
	w, _ := EncodeL(buf, src)
	return string(buf[:w])
}

// AppendEncodeL appends the length-prefixed safe64 encoding of src to dst.
func AppendEncodeL(dst, src []byte) []byte {
	n, _ := EncodedLen(len(src), true)
	dst = slices.Grow(dst, n)
	w, _ := EncodeL(dst[len(dst):][:n], src)
	return dst[:len(dst)+w]
}

// DecodeL reads a length-prefixed payload from src into dst, enforcing the declared length as
// the authoritative end of the payload.
func DecodeL(dst, src []byte) (int, error) {
	length, consumed, err := ReadLengthField(src)
	if err != nil {
		return 0, err
	}
	if length > uint64(len(dst)) {
		return 0, enc.ErrNotEnoughRoom
	}
	_, written, _, err := enc.DecodeFeed(descriptor, src[consumed:], dst[:length], enc.Flags{
		SrcAtEnd: true, DstAtEnd: true, ExpectDstToEnd: true,
	})
	return written, err
}

// DecodeLString decodes a length-prefixed safe64 string.
func DecodeLString(s string) ([]byte, error) {
	src := []byte(s)
	length, consumed, err := ReadLengthField(src)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, length)
	_, written, _, err := enc.DecodeFeed(descriptor, src[consumed:], buf, enc.Flags{
		SrcAtEnd: true, DstAtEnd: true, ExpectDstToEnd: true,
	})
	return buf[:written], err
}

// EncodeFeed exposes the raw resumable encode protocol.
func EncodeFeed(src, dst []byte, atEnd bool) (srcConsumed, dstWritten int, status enc.Status) {
	return enc.EncodeFeed(descriptor, src, dst, atEnd)
}

// DecodeFeed exposes the raw resumable decode protocol.
func DecodeFeed(src, dst []byte, flags enc.Flags) (srcConsumed, dstWritten int, status enc.Status, err error) {
	return enc.DecodeFeed(descriptor, src, dst, flags)
}

// NewEncoder returns a streaming encoder writing safe64-encoded output to w.
func NewEncoder(w io.Writer) io.WriteCloser {
	return enc.NewEncoder(descriptor, w)
}

// NewDecoder returns a streaming decoder reading safe64-encoded input from r.
func NewDecoder(r io.Reader) io.Reader {
	return enc.NewDecoder(descriptor, r)
}
