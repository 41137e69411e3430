// Package model holds the records produced by decoding a raw transaction.
package model

import "encoding/hex"

// TxID is a 32-byte transaction hash kept in display order, i.e. reversed
// relative to the order it is hashed and serialized on the wire.
type TxID [32]byte

// String returns the lowercase hex form of the id.
func (id TxID) String() string {
	return hex.EncodeToString(id[:])
}

// MarshalText renders the id as hex so it serializes as a JSON string.
func (id TxID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// IsZero reports whether every byte of the id is zero.
func (id TxID) IsZero() bool {
	return id == TxID{}
}

// Amount is a count of satoshis.
type Amount uint64

// Input references a previous transaction output being spent.
type Input struct {
	TxID        TxID   `json:"txid"`
	OutputIndex uint32 `json:"output_index"`
	ScriptSig   string `json:"script_sig"`
	Sequence    uint32 `json:"sequence"`
}

// Output assigns an amount to a locking script.
type Output struct {
	Amount       Amount `json:"amount"`
	ScriptPubKey string `json:"script_pubkey"`
}

// Transaction is a decoded legacy transaction. TransactionID is always derived
// from the raw bytes, never read from them.
type Transaction struct {
	Version       uint32   `json:"version"`
	Inputs        []Input  `json:"inputs"`
	Outputs       []Output `json:"outputs"`
	LockTime      uint32   `json:"lock_time"`
	TransactionID TxID     `json:"transaction_id"`
}
