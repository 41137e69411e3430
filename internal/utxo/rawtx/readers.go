package rawtx

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/pkg/safe"
)

// ReadUint32 reads a 4-byte little-endian value.
func ReadUint32(c *Cursor) (uint32, error) {
	b, err := c.ReadExact(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadAmount reads an 8-byte little-endian satoshi count.
func ReadAmount(c *Cursor) (model.Amount, error) {
	b, err := c.ReadExact(8)
	if err != nil {
		return 0, err
	}
	return model.Amount(binary.LittleEndian.Uint64(b)), nil
}

// ReadTxID reads a 32-byte hash in wire order and returns it in display order.
func ReadTxID(c *Cursor) (model.TxID, error) {
	b, err := c.ReadExact(len(model.TxID{}))
	if err != nil {
		return model.TxID{}, err
	}
	return reversed(b), nil
}

// ReadScript reads a compact-size length followed by that many bytes and
// returns them hex encoded.
func ReadScript(c *Cursor) (string, error) {
	return readScript(c, ReadCompactSize)
}

func readScript(c *Cursor, readSize compactSizeReader) (string, error) {
	size, err := readSize(c)
	if err != nil {
		return "", fmt.Errorf("length: %w", err)
	}
	if size > uint64(c.Remaining()) {
		return "", fmt.Errorf("%w: script of %d bytes at offset %d, %d remaining", ErrUnexpectedEOF, size, c.Offset(), c.Remaining())
	}
	n, err := safe.Int(size)
	if err != nil {
		return "", err
	}
	b, err := c.ReadExact(n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func reversed(b []byte) model.TxID {
	var id model.TxID
	for i := range id {
		id[i] = b[len(b)-1-i]
	}
	return id
}
