// Package safe16 implements the radix-16 member of the safe-encoding family: a hex-like,
// whitespace-tolerant, text-safe binary encoding. Groups are a single byte mapped to two
// lowercase hex chunks; uppercase A-F and the hyphen (as a UUID-style visual separator) are
// accepted on decode but never emitted on encode.
package safe16
