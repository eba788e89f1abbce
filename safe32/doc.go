// Package safe32 implements the radix-32 member of the safe-encoding family, using Douglas
// Crockford's base32 alphabet: human-friendly, case-insensitive on decode, with 'I'/'l'
// aliasing '1', 'O' aliasing '0', and 'U'/'V' aliasing 'v' to reduce transcription errors.
//
// Beyond the general encode/decode/streaming API shared with the rest of the family, this
// package also exposes [Uint64], [PutUint64], [PutUint64Lower], [PutCompact] and
// [AppendCompact]: a fixed-width, lexically-ordered encoding for 64-bit IDs, switching between
// a 7-character compact form (values below 2^34) and a 13-character full form.
package safe32
