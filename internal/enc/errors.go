package enc

import (
	"errors"
	"strconv"
)

// Sentinel errors corresponding to the C original's status codes that carry no extra
// positional information (spec §3.4, §7).
var (
	// ErrNotEnoughRoom means the destination buffer could not hold the operation's output.
	// Per spec §7, the caller may retry from the cursor values returned alongside this
	// error: they point at the start of the last fully-consumed group, so no already
	// written output needs to be replayed.
	ErrNotEnoughRoom = errors.New("safeenc: not enough room in destination buffer")

	// ErrUnterminatedLengthField means a length field read ran out of input with the
	// continuation bit still set in the last chunk consumed.
	ErrUnterminatedLengthField = errors.New("safeenc: unterminated length field")

	// ErrTruncatedData means a length-prefixed payload was shorter than its prefix
	// claimed (spec §4.4.4, §4.5).
	ErrTruncatedData = errors.New("safeenc: truncated data")

	// ErrInvalidLength is returned immediately for any negative length argument, with no
	// side effects (spec §7).
	ErrInvalidLength = errors.New("safeenc: invalid length")
)

// InvalidSourceDataError reports a decode failure at a specific offset into the source
// buffer, mirroring the C original's contract that src_ptr point at the offending
// character on SAFE*_ERROR_INVALID_SOURCE_DATA (spec §7).
type InvalidSourceDataError struct {
	// Offset is the index, relative to the start of the call's source slice, of the character
	// at which decoding failed: usually one that is neither a valid alphabet character nor
	// whitespace, but for a length field that would overflow it is the valid chunk that
	// triggered the overflow, and for a safe32 ID of the wrong length or leading character
	// it is 0.
	Offset int
}

func (e *InvalidSourceDataError) Error() string {
	return "safeenc: invalid source data at offset " + strconv.Itoa(e.Offset)
}
