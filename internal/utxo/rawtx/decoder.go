package rawtx

import (
	"encoding/hex"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/utxo/model"
)

const (
	// txid + output index + empty script length + sequence
	minInputSize = 32 + 4 + 1 + 4
	// amount + empty script length
	minOutputSize = 8 + 1
)

type options struct {
	compactSize compactSizeReader
}

// Option tunes Decode.
type Option func(*options)

// WithCanonicalCompactSize rejects compact sizes that are not minimally encoded.
func WithCanonicalCompactSize() Option {
	return func(o *options) {
		o.compactSize = readCanonicalCompactSize
	}
}

func newOptions(opts []Option) options {
	o := options{compactSize: ReadCompactSize}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// DecodeHex decodes a hex string (no 0x prefix, any case) into a transaction.
func DecodeHex(s string, opts ...Option) (model.Transaction, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %v", ErrHexDecode, err)
	}
	return Decode(raw, opts...)
}

// Decode parses a serialized legacy transaction. The first failure aborts the
// whole decode; the id is computed over raw as given.
func Decode(raw []byte, opts ...Option) (model.Transaction, error) {
	o := newOptions(opts)
	c := NewCursor(raw)

	version, err := ReadUint32(c)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("read version: %w", err)
	}
	inputs, err := readInputs(c, o)
	if err != nil {
		return model.Transaction{}, err
	}
	outputs, err := readOutputs(c, o)
	if err != nil {
		return model.Transaction{}, err
	}
	lockTime, err := ReadUint32(c)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("read lock time: %w", err)
	}
	if rem := c.Remaining(); rem != 0 {
		return model.Transaction{}, fmt.Errorf("%w: %d bytes at offset %d", ErrTrailingBytes, rem, c.Offset())
	}

	return model.Transaction{
		Version:       version,
		Inputs:        inputs,
		Outputs:       outputs,
		LockTime:      lockTime,
		TransactionID: HashRawTransaction(raw),
	}, nil
}

func readInputs(c *Cursor, o options) ([]model.Input, error) {
	count, err := o.compactSize(c)
	if err != nil {
		return nil, fmt.Errorf("read input count: %w", err)
	}
	inputs := make([]model.Input, 0, capacityFor(count, c.Remaining(), minInputSize))
	for i := uint64(0); i < count; i++ {
		in, err := readInput(c, o)
		if err != nil {
			return nil, fmt.Errorf("read input %d: %w", i, err)
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func readInput(c *Cursor, o options) (model.Input, error) {
	txid, err := ReadTxID(c)
	if err != nil {
		return model.Input{}, fmt.Errorf("txid: %w", err)
	}
	index, err := ReadUint32(c)
	if err != nil {
		return model.Input{}, fmt.Errorf("output index: %w", err)
	}
	script, err := readScript(c, o.compactSize)
	if err != nil {
		return model.Input{}, fmt.Errorf("script_sig: %w", err)
	}
	sequence, err := ReadUint32(c)
	if err != nil {
		return model.Input{}, fmt.Errorf("sequence: %w", err)
	}
	return model.Input{
		TxID:        txid,
		OutputIndex: index,
		ScriptSig:   script,
		Sequence:    sequence,
	}, nil
}

func readOutputs(c *Cursor, o options) ([]model.Output, error) {
	count, err := o.compactSize(c)
	if err != nil {
		return nil, fmt.Errorf("read output count: %w", err)
	}
	outputs := make([]model.Output, 0, capacityFor(count, c.Remaining(), minOutputSize))
	for i := uint64(0); i < count; i++ {
		amount, err := ReadAmount(c)
		if err != nil {
			return nil, fmt.Errorf("read output %d: amount: %w", i, err)
		}
		script, err := readScript(c, o.compactSize)
		if err != nil {
			return nil, fmt.Errorf("read output %d: script_pubkey: %w", i, err)
		}
		outputs = append(outputs, model.Output{Amount: amount, ScriptPubKey: script})
	}
	return outputs, nil
}

// capacityFor bounds a preallocation by the number of elements the remaining
// bytes could hold.
func capacityFor(count uint64, remaining, minSize int) int {
	limit := uint64(remaining / minSize)
	if count < limit {
		return int(count)
	}
	return int(limit)
}
