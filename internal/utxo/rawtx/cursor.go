// Package rawtx decodes legacy serialized transactions.
package rawtx

import (
	"fmt"
	"io"
)

// Cursor is a forward-only reader over an immutable byte buffer.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a cursor positioned at the start of buf. The buffer must not
// be modified while the cursor is in use.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// ReadExact consumes and returns the next n bytes. The returned slice aliases the
// underlying buffer and must be treated as read-only.
func (c *Cursor) ReadExact(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, %d remaining", ErrUnexpectedEOF, n, c.pos, c.Remaining())
	}
	out := c.buf[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return out, nil
}

// Read implements io.Reader over the remaining bytes.
func (c *Cursor) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if c.Remaining() == 0 {
		return 0, io.EOF
	}
	n := copy(p, c.buf[c.pos:])
	c.pos += n
	return n, nil
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.pos
}
