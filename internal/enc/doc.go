// Package enc implements the shared engine behind the safe16/safe32/safe64/safe80/safe85
// codecs: descriptor-driven alphabet tables, the bit-packed and integer-multiply group
// transforms, the length-field codec, and the resumable feed state machine.
//
// The feed engine (EncodeFeed, DecodeFeed) and the length-field codec allocate nothing beyond
// the caller's own buffers and perform no I/O; they are a pure, synchronous,
// single-threaded-per-call transform, safe to drive concurrently from independent goroutines
// as long as each owns its own buffers. The streaming adapters returned by NewEncoder and
// NewDecoder are the exception: they allocate working buffers and read from or write to the
// io.Reader or io.Writer they wrap.
package enc
