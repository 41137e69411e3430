package rawtx

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/wire"
)

const (
	compactSizeUint16 = 0xfd
	compactSizeUint32 = 0xfe
	compactSizeUint64 = 0xff
)

// compactSizeReader decodes one compact size from the cursor.
type compactSizeReader func(c *Cursor) (uint64, error)

// ReadCompactSize decodes a variable-length integer: prefixes below 0xfd are the
// value itself, 0xfd/0xfe/0xff are followed by a 2/4/8 byte little-endian value.
// Non-minimal encodings are accepted.
func ReadCompactSize(c *Cursor) (uint64, error) {
	prefix, err := c.ReadExact(1)
	if err != nil {
		return 0, err
	}

	switch prefix[0] {
	case compactSizeUint16:
		b, err := c.ReadExact(2)
		if err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint16(b)), nil
	case compactSizeUint32:
		b, err := c.ReadExact(4)
		if err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint32(b)), nil
	case compactSizeUint64:
		b, err := c.ReadExact(8)
		if err != nil {
			return 0, err
		}
		return binary.LittleEndian.Uint64(b), nil
	default:
		return uint64(prefix[0]), nil
	}
}

// readCanonicalCompactSize is the strict variant of ReadCompactSize: a value
// encoded with a longer prefix than it needs is rejected.
func readCanonicalCompactSize(c *Cursor) (uint64, error) {
	offset := c.Offset()
	v, err := wire.ReadVarInt(c, 0)
	if err == nil {
		return v, nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, fmt.Errorf("%w: compact size at offset %d", ErrUnexpectedEOF, offset)
	}
	return 0, fmt.Errorf("%w at offset %d: %v", ErrNonCanonicalCompactSize, offset, err)
}
