// Package bitcoin annotates decoded transactions with Bitcoin-specific display data.
package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/pkg/safe"
)

// SatoshisToBtc converts a satoshi amount to BTC with overflow checks.
func SatoshisToBtc(amount model.Amount) (float64, error) {
	sats, err := safe.Int64(uint64(amount))
	if err != nil {
		return 0, err
	}
	return btcutil.Amount(sats).ToBTC(), nil
}

// IsCoinbase reports whether tx has the single null-outpoint input of a coinbase.
func IsCoinbase(tx model.Transaction) bool {
	if len(tx.Inputs) != 1 {
		return false
	}
	in := tx.Inputs[0]
	return in.TxID.IsZero() && in.OutputIndex == wire.MaxPrevOutIndex
}

// TotalOutput sums the output amounts, failing on overflow.
func TotalOutput(outputs []model.Output) (model.Amount, error) {
	var total model.Amount
	for idx, out := range outputs {
		next := total + out.Amount
		if next < total {
			return 0, fmt.Errorf("output %d: total output overflow", idx)
		}
		total = next
	}
	return total, nil
}
