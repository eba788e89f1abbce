package enc

// Flags controls end-of-stream negotiation for a DecodeFeed call (spec §3.2, §4.4.4).
type Flags struct {
	// SrcAtEnd promises no more source characters will arrive after this call.
	SrcAtEnd bool
	// DstAtEnd promises no more destination capacity will be provided after this call.
	DstAtEnd bool
	// ExpectDstToEnd pre-declares the destination as the authoritative terminator, used by
	// the length-prefixed façade to enforce the declared length (spec §4.4.4, §4.5).
	ExpectDstToEnd bool
}

// EncodeFeed implements the resumable encode engine (spec §4.4.2). It consumes as much of
// src as it can, writing encoded chunks to dst, and returns the number of source bytes
// consumed and destination bytes written. src[srcConsumed:] is always the start of a fresh
// or partially accumulated group; on a resumed call the caller relocates it to the head of a
// new buffer.
//
// atEnd marks src as the final segment of the logical source stream: only then is a
// trailing partial group flushed.
func EncodeFeed(d *Descriptor, src, dst []byte, atEnd bool) (srcConsumed, dstWritten int, status Status) {
	var acc uint128
	count := 0
	si, di := 0, 0
	lastCommittedSrc := 0

	emit := func(byteCount int) bool {
		m := d.ByteToChunkCount[byteCount]
		if len(dst)-di < m {
			return false
		}
		if d.Algebra == BitPacked {
			bitpackedEncodeChunks(d, acc, byteCount, dst[di:di+m])
		} else {
			intmulEncodeChunks(d, acc, byteCount, dst[di:di+m])
		}
		di += m
		return true
	}

	for si < len(src) {
		acc = acc.shiftLeft8Or(src[si])
		si++
		count++
		if count == d.BytesPerGroup {
			if !emit(count) {
				return lastCommittedSrc, di, StatusPartiallyComplete
			}
			acc = uint128{}
			count = 0
			lastCommittedSrc = si
		}
	}

	if count > 0 {
		if !atEnd {
			return lastCommittedSrc, di, StatusOK
		}
		if !emit(count) {
			return lastCommittedSrc, di, StatusPartiallyComplete
		}
		lastCommittedSrc = si
	}

	return lastCommittedSrc, di, StatusOK
}

// DecodeFeed implements the resumable decode engine (spec §4.4.3, §4.4.4). It classifies
// each source character via the descriptor's decode table, skipping whitespace, accumulating
// valid characters into the current group, and emitting decoded octets as groups complete.
//
// On InvalidSourceDataError, srcConsumed points at the offending character (spec §7).
func DecodeFeed(d *Descriptor, src, dst []byte, flags Flags) (srcConsumed, dstWritten int, status Status, err error) {
	table := d.DecodeTable()
	var acc uint128
	count := 0
	si, di := 0, 0
	lastCommittedSrc := 0

	for si < len(src) {
		v := table[src[si]]
		if v == Whitespace {
			si++
			continue
		}
		if v == Invalid {
			return si, di, StatusOK, &InvalidSourceDataError{Offset: si}
		}

		if d.Algebra == BitPacked {
			acc = acc.shiftLeftOr(uint(d.BitsPerChunk), uint64(v))
		} else {
			acc = acc.mulAddSmall(uint64(d.Radix), uint64(v))
		}
		si++
		count++

		if di+d.ChunkToByteCount[count] > len(dst) {
			break
		}

		if count == d.ChunksPerGroup {
			b := d.ChunkToByteCount[count]
			decodeGroup(d, acc, count, dst[di:di+b])
			di += b
			acc = uint128{}
			count = 0
			lastCommittedSrc = si
		}
	}

	for si < len(src) && table[src[si]] == Whitespace {
		si++
	}
	if count == 0 {
		// No pending partial group: the trailing whitespace just scanned can never be
		// replayed incorrectly, so it is safe to mark it consumed now.
		lastCommittedSrc = si
	}

	srcAtEnd := flags.SrcAtEnd && si >= len(src)
	dstAtEnd := flags.DstAtEnd && di+d.ChunkToByteCount[count] >= len(dst)

	if count > 0 && (srcAtEnd || dstAtEnd) {
		b := d.ChunkToByteCount[count]
		if len(dst)-di >= b {
			decodeGroup(d, acc, count, dst[di:di+b])
			di += b
			lastCommittedSrc = si
			count = 0
		}
		// If there isn't room, leave the tail group unflushed: lastCommittedSrc stays at its
		// earlier value, and the switch below resolves the outcome (NotEnoughRoom when the
		// destination was the limiting factor, per the negotiation table).
	}

	switch {
	case flags.ExpectDstToEnd && dstAtEnd:
		return lastCommittedSrc, di, StatusOK, nil
	case flags.ExpectDstToEnd && srcAtEnd:
		return lastCommittedSrc, di, StatusOK, ErrTruncatedData
	case !flags.ExpectDstToEnd && srcAtEnd:
		return lastCommittedSrc, di, StatusOK, nil
	case !flags.ExpectDstToEnd && dstAtEnd:
		return lastCommittedSrc, di, StatusOK, ErrNotEnoughRoom
	default:
		return lastCommittedSrc, di, StatusPartiallyComplete, nil
	}
}

func decodeGroup(d *Descriptor, acc uint128, chunkCount int, dst []byte) {
	if d.Algebra == BitPacked {
		bitpackedDecodeBytes(d, acc, chunkCount, dst)
	} else {
		intmulDecodeBytes(d, acc, chunkCount, dst)
	}
}
