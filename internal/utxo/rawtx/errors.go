package rawtx

import "errors"

var (
	// ErrHexDecode reports input that is not valid hexadecimal.
	ErrHexDecode = errors.New("hex decode error")
	// ErrUnexpectedEOF reports a buffer exhausted before a field was complete.
	ErrUnexpectedEOF = errors.New("unexpected end of transaction data")
	// ErrNonCanonicalCompactSize reports a compact size not in its shortest form (strict mode only).
	ErrNonCanonicalCompactSize = errors.New("non-canonical compact size")
	// ErrTrailingBytes reports bytes left over after the lock time.
	ErrTrailingBytes = errors.New("trailing bytes after lock time")
)

// ErrorKind maps a decode error to a stable label for metrics and logs.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrHexDecode):
		return "hex_decode"
	case errors.Is(err, ErrUnexpectedEOF):
		return "unexpected_eof"
	case errors.Is(err, ErrNonCanonicalCompactSize):
		return "non_canonical_compact_size"
	case errors.Is(err, ErrTrailingBytes):
		return "trailing_bytes"
	default:
		return "unknown"
	}
}
