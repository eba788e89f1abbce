package enc

// WriteLengthField writes length as a variable-width chunk stream drawn from d's alphabet,
// using d.BitsPerLengthChunk payload bits per chunk plus a continuation bit (spec §4.3).
// Chunks are written most-significant-first; the final chunk has its continuation bit
// cleared. It writes the minimum number of chunks, at least one (for length == 0).
func WriteLengthField(d *Descriptor, length uint64, dst []byte) (int, error) {
	bits := uint(d.BitsPerLengthChunk)
	contBit := uint64(1) << bits
	mask := contBit - 1

	n := 1
	for v := length >> bits; v > 0; v >>= bits {
		n++
	}
	if len(dst) < n {
		return 0, ErrNotEnoughRoom
	}

	for i := 0; i < n; i++ {
		shift := bits * uint(n-1-i)
		payload := (length >> shift) & mask
		if i < n-1 {
			payload |= contBit
		}
		dst[i] = d.EncodeTable[payload]
	}
	return n, nil
}

// ReadLengthField reads a variable-width chunk stream written by WriteLengthField, skipping
// whitespace between chunks exactly as the payload decoder does (spec §4.3).
func ReadLengthField(d *Descriptor, src []byte) (length uint64, consumed int, err error) {
	table := d.DecodeTable()
	bits := uint(d.BitsPerLengthChunk)
	contBit := uint64(1) << bits
	payloadMask := contBit - 1
	maxValue := contBit << 1 // payload-with-continuation-bit range is [0, 2*contBit)
	const maxLength = uint64(1) << 63

	var acc uint64
	i := 0
	for i < len(src) {
		v := table[src[i]]
		if v == Whitespace {
			i++
			continue
		}
		if v == Invalid || uint64(v) >= maxValue {
			return 0, i, &InvalidSourceDataError{Offset: i}
		}
		if acc > (maxLength-1)>>bits {
			return 0, i, &InvalidSourceDataError{Offset: i}
		}
		acc = (acc << bits) | (uint64(v) & payloadMask)
		i++
		if uint64(v)&contBit == 0 {
			return acc, i, nil
		}
	}
	return 0, i, ErrUnterminatedLengthField
}

// LengthFieldSize returns the number of chunks WriteLengthField would write for length,
// without actually writing them (used by each radix package's EncodedLen, spec §4.2.4).
func LengthFieldSize(d *Descriptor, length uint64) int {
	bits := uint(d.BitsPerLengthChunk)
	n := 1
	for v := length >> bits; v > 0; v >>= bits {
		n++
	}
	return n
}
