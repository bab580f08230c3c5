package subprocess

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/parruda/claude-code-sdk-go/internal/errors"
)

// maxBufferSize is the maximum number of bytes the reassembly buffer may
// hold while waiting for a JSON value to complete. Exceeding it is a fatal
// decode error for the stream-reading pass, never a silent truncation.
const maxBufferSize = 1024 * 1024 // 1 MiB

// reassembler turns a stream of arbitrarily-sized text chunks into a
// sequence of complete JSON values.
//
// The CLI writes one JSON value per line, but the reader sees raw chunks:
// a value may arrive split across many reads, several values may arrive in
// one read, and a chunk boundary may land anywhere, including inside a
// string literal. The buffer therefore always holds exactly the unparsed
// prefix of the next value; it is empty immediately after each emission.
type reassembler struct {
	buf bytes.Buffer
	max int
}

func newReassembler() *reassembler {
	return &reassembler{max: maxBufferSize}
}

// Feed consumes one raw chunk and invokes emit for every JSON value that
// completes. Segments are buffered byte-for-byte: a read boundary may land
// anywhere, including next to whitespace inside a string literal, so
// fragments are never trimmed. A split inside a value simply yields a parse
// failure that is retried once more data arrives, which is why accumulation
// rather than per-line parsing is required. Whitespace-only content is
// discarded only at a true newline boundary, where it is a separator line
// rather than a value prefix.
//
// Returns a CLIJSONDecodeError when the accumulated buffer exceeds the
// maximum size before a value completes, or the error returned by emit.
func (r *reassembler) Feed(chunk []byte, emit func(map[string]any) error) error {
	for len(chunk) > 0 {
		seg := chunk
		terminated := false

		if idx := bytes.IndexByte(chunk, '\n'); idx >= 0 {
			seg, chunk = chunk[:idx], chunk[idx+1:]
			terminated = true
		} else {
			chunk = nil
		}

		r.buf.Write(seg)

		if r.buf.Len() > r.max {
			raw := r.buf.String()
			r.buf.Reset()

			return &errors.CLIJSONDecodeError{
				RawData: raw,
				Err: fmt.Errorf("%w: accumulated %d bytes, limit %d",
					errors.ErrBufferOverflow, len(raw), r.max),
			}
		}

		if r.buf.Len() == 0 {
			continue
		}

		if terminated && len(bytes.TrimSpace(r.buf.Bytes())) == 0 {
			// Blank separator line
			r.buf.Reset()

			continue
		}

		var msg map[string]any

		if err := json.Unmarshal(r.buf.Bytes(), &msg); err != nil {
			// Incomplete prefix of a larger value; keep accumulating
			continue
		}

		r.buf.Reset()

		if err := emit(msg); err != nil {
			return err
		}
	}

	return nil
}

// Pending reports how many unparsed bytes are buffered.
func (r *reassembler) Pending() int {
	return r.buf.Len()
}
