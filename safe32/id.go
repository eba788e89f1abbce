package safe32

import "github.com/kstenerud/go-safeenc/internal/enc"

// encTableUpper is the uppercase form of descriptor.EncodeTable, used by PutUint64 for callers
// who want uppercase IDs; PutUint64Lower uses descriptor.EncodeTable directly.
const encTableUpper = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const idMask = 31

// Uint64 parses a safe32-encoded byte slice into a uint64, case-insensitively.
//
//   - If the first character is in ['0','f'], the value is assumed compact-encoded and must
//     be 7 characters long.
//   - If the first character is in ['g','z'] (case-insensitive), the value is assumed
//     full-encoded and must be 13 characters long.
func Uint64(b []byte) (uint64, error) {
	table := descriptor.DecodeTable()
	switch {
	default:
		return 0, &enc.InvalidSourceDataError{Offset: 0}
	case len(b) == 7 && b[0] >= '0' && b[0] <= 'f':
		var decVals [7]byte
		for i, c := range b {
			decVals[i] = table[c]
		}
		for idx, v := range decVals {
			if v >= 32 {
				return 0, &enc.InvalidSourceDataError{Offset: idx}
			}
		}
		return 0 |
			uint64(decVals[0])<<30 |
			uint64(decVals[1])<<25 |
			uint64(decVals[2])<<20 |
			uint64(decVals[3])<<15 |
			uint64(decVals[4])<<10 |
			uint64(decVals[5])<<5 |
			uint64(decVals[6]), nil
	case len(b) == 13 && (b[0] >= 'g' && b[0] <= 'z' || b[0] >= 'G' && b[0] <= 'Z'):
		var decVals [13]byte
		for i, c := range b {
			decVals[i] = table[c]
		}
		decVals[0] &= 0x0f // disregard the high bit, which only marks the full encoding
		for idx, v := range decVals {
			if v >= 32 {
				return 0, &enc.InvalidSourceDataError{Offset: idx}
			}
		}
		return 0 |
			uint64(decVals[0])<<60 |
			uint64(decVals[1])<<55 |
			uint64(decVals[2])<<50 |
			uint64(decVals[3])<<45 |
			uint64(decVals[4])<<40 |
			uint64(decVals[5])<<35 |
			uint64(decVals[6])<<30 |
			uint64(decVals[7])<<25 |
			uint64(decVals[8])<<20 |
			uint64(decVals[9])<<15 |
			uint64(decVals[10])<<10 |
			uint64(decVals[11])<<5 |
			uint64(decVals[12]), nil
	}
}

// PutUint64 returns the uppercase safe32 encoding of id, always in the 13-character full form.
func PutUint64(id uint64) [13]byte {
	return [13]byte{
		encTableUpper[id>>60&idMask|0x10], // set the high bit to mark the full encoding
		encTableUpper[id>>55&idMask],
		encTableUpper[id>>50&idMask],
		encTableUpper[id>>45&idMask],
		encTableUpper[id>>40&idMask],
		encTableUpper[id>>35&idMask],
		encTableUpper[id>>30&idMask],
		encTableUpper[id>>25&idMask],
		encTableUpper[id>>20&idMask],
		encTableUpper[id>>15&idMask],
		encTableUpper[id>>10&idMask],
		encTableUpper[id>>5&idMask],
		encTableUpper[id&idMask],
	}
}

// PutUint64Lower returns the lowercase safe32 encoding of id, in the 13-character full form.
func PutUint64Lower(id uint64) [13]byte {
	t := descriptor.EncodeTable
	return [13]byte{
		t[id>>60&idMask|0x10],
		t[id>>55&idMask],
		t[id>>50&idMask],
		t[id>>45&idMask],
		t[id>>40&idMask],
		t[id>>35&idMask],
		t[id>>30&idMask],
		t[id>>25&idMask],
		t[id>>20&idMask],
		t[id>>15&idMask],
		t[id>>10&idMask],
		t[id>>5&idMask],
		t[id&idMask],
	}
}

// PutCompact returns the lowercase safe32 encoding of id, using the 7-character compact form
// for values below 2^34 and falling back to the 13-character full form otherwise.
func PutCompact(id uint64) []byte {
	return AppendCompact(id, nil)
}

// AppendCompact works like [PutCompact] but appends to the given byte slice instead of
// allocating a new one.
func AppendCompact(id uint64, b []byte) []byte {
	const maxCompact = 1 << 34
	if id < maxCompact {
		t := descriptor.EncodeTable
		return append(b,
			t[id>>30&idMask],
			t[id>>25&idMask],
			t[id>>20&idMask],
			t[id>>15&idMask],
			t[id>>10&idMask],
			t[id>>5&idMask],
			t[id&idMask],
		)
	}
	full := PutUint64Lower(id)
	return append(b, full[:]...)
}
