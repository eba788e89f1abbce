package enc

import (
	"errors"
	"io"
)

// readBufSize is the chunk size used to read encoded input from the underlying reader. It is
// sized generously above any radix's group width so a typical Read call drains in one pass.
const readBufSize = 4096

// streamEncoder adapts the resumable EncodeFeed engine to io.WriteCloser, the way the retrieved
// kitty/base85 reference implementation wraps its fixed 4-byte chunker: unconsumed source bytes
// (a partial group) are carried forward across Write calls instead of being flushed early.
type streamEncoder struct {
	d       *Descriptor
	w       io.Writer
	pending []byte
	err     error
}

// NewEncoder returns a streaming encoder over d: everything written to it is encoded and
// forwarded to w. The caller must call Close to flush any buffered partial trailing group.
func NewEncoder(d *Descriptor, w io.Writer) io.WriteCloser {
	return &streamEncoder{d: d, w: w}
}

func (e *streamEncoder) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n := len(p)
	e.pending = append(e.pending, p...)
	if err := e.flush(false); err != nil {
		e.err = err
		return n, err
	}
	return n, nil
}

func (e *streamEncoder) Close() error {
	if e.err != nil {
		return e.err
	}
	if err := e.flush(true); err != nil {
		e.err = err
		return err
	}
	e.err = errors.New("safeenc: encoder already closed")
	return nil
}

func (e *streamEncoder) flush(atEnd bool) error {
	dst := make([]byte, encodedLenUpperBound(e.d, len(e.pending)))
	consumed, written, _ := EncodeFeed(e.d, e.pending, dst, atEnd)
	if written > 0 {
		if _, err := e.w.Write(dst[:written]); err != nil {
			return err
		}
	}
	e.pending = append(e.pending[:0], e.pending[consumed:]...)
	return nil
}

func encodedLenUpperBound(d *Descriptor, n int) int {
	full := n / d.BytesPerGroup
	rem := n % d.BytesPerGroup
	return full*d.ChunksPerGroup + d.ByteToChunkCount[rem]
}

// streamDecoder adapts the resumable DecodeFeed engine to io.Reader: raw encoded bytes read
// from r are carried in encBuf until a full group (or end of stream) is available, and decoded
// output that does not fit the caller's buffer is carried in outBuf for the next Read call.
type streamDecoder struct {
	d      *Descriptor
	r      io.Reader
	encBuf []byte
	outBuf []byte
	eof    bool
	err    error
}

// NewDecoder returns a streaming decoder over d: reads from the returned Reader yield the
// bytes decoded from r.
func NewDecoder(d *Descriptor, r io.Reader) io.Reader {
	return &streamDecoder{d: d, r: r}
}

func (dec *streamDecoder) Read(p []byte) (int, error) {
	for len(dec.outBuf) == 0 {
		if dec.err != nil {
			return 0, dec.err
		}
		if !dec.eof {
			buf := make([]byte, readBufSize)
			n, err := dec.r.Read(buf)
			dec.encBuf = append(dec.encBuf, buf[:n]...)
			if err != nil {
				if err == io.EOF {
					dec.eof = true
				} else {
					dec.err = err
					return 0, err
				}
			}
		}
		dst := make([]byte, decodedLenUpperBound(dec.d, len(dec.encBuf)))
		consumed, written, _, err := DecodeFeed(dec.d, dec.encBuf, dst, Flags{SrcAtEnd: dec.eof, DstAtEnd: false})
		dec.encBuf = append(dec.encBuf[:0], dec.encBuf[consumed:]...)
		dec.outBuf = append(dec.outBuf, dst[:written]...)
		if err != nil {
			dec.err = err
			if len(dec.outBuf) == 0 {
				return 0, err
			}
			break
		}
		if dec.eof && len(dec.encBuf) == 0 {
			dec.err = io.EOF
			break
		}
		if !dec.eof && written == 0 && consumed == 0 {
			// Not enough buffered input yet to complete even one group; go read more.
			continue
		}
	}
	n := copy(p, dec.outBuf)
	dec.outBuf = dec.outBuf[n:]
	if n == 0 && dec.err != nil {
		return 0, dec.err
	}
	return n, nil
}

func decodedLenUpperBound(d *Descriptor, n int) int {
	full := n / d.ChunksPerGroup
	rem := n % d.ChunksPerGroup
	return full*d.BytesPerGroup + d.ChunkToByteCount[rem]
}
