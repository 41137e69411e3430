package rawtx

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/utxo/model"
)

// HashRawTransaction computes the transaction id: the double SHA-256 of the raw
// bytes, reversed into display order.
func HashRawTransaction(raw []byte) model.TxID {
	hash := chainhash.DoubleHashH(raw)
	return reversed(hash[:])
}
