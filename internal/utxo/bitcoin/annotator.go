package bitcoin

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/pkg/safe"
)

// TransactionAnnotator turns decoded transactions into their annotated view using a decoder.
type TransactionAnnotator struct {
	decoder ScriptDecoder
}

// NewTransactionAnnotator constructs an annotator backed by the given script decoder.
func NewTransactionAnnotator(decoder ScriptDecoder) *TransactionAnnotator {
	return &TransactionAnnotator{decoder: decoder}
}

// Annotate builds the annotated view of tx; rawSize is the serialized length in bytes.
func (a *TransactionAnnotator) Annotate(tx model.Transaction, rawSize int) (model.AnnotatedTransaction, error) {
	coinbase := IsCoinbase(tx)

	inputs := make([]model.AnnotatedInput, 0, len(tx.Inputs))
	for idx, in := range tx.Inputs {
		asm, err := a.decoder.decodeUnlockingScript(in.ScriptSig)
		if err != nil {
			return model.AnnotatedTransaction{}, fmt.Errorf("decode script_sig for tx %s input %d: %w", tx.TransactionID, idx, err)
		}
		inputs = append(inputs, model.AnnotatedInput{
			Input:        in,
			ScriptSigAsm: asm,
			IsCoinbase:   coinbase,
		})
	}

	outputs := make([]model.AnnotatedOutput, 0, len(tx.Outputs))
	for idx, out := range tx.Outputs {
		index, err := safe.Uint32(idx)
		if err != nil {
			return model.AnnotatedTransaction{}, fmt.Errorf("tx %s output index overflow: %w", tx.TransactionID, err)
		}
		btc, err := SatoshisToBtc(out.Amount)
		if err != nil {
			return model.AnnotatedTransaction{}, fmt.Errorf("tx %s output %d btc value: %w", tx.TransactionID, idx, err)
		}
		script, err := a.decoder.decodeLockingScript(out.ScriptPubKey)
		if err != nil {
			return model.AnnotatedTransaction{}, fmt.Errorf("decode script_pubkey for tx %s output %d: %w", tx.TransactionID, idx, err)
		}

		outputs = append(outputs, model.AnnotatedOutput{
			Output:     out,
			Index:      index,
			AmountBTC:  btc,
			ScriptType: script.class,
			ScriptAsm:  script.asm,
			Addresses:  script.addresses,
		})
	}

	total, err := TotalOutput(tx.Outputs)
	if err != nil {
		return model.AnnotatedTransaction{}, fmt.Errorf("tx %s: %w", tx.TransactionID, err)
	}

	return model.AnnotatedTransaction{
		Version:       tx.Version,
		Size:          rawSize,
		Inputs:        inputs,
		Outputs:       outputs,
		TotalOutput:   total,
		LockTime:      tx.LockTime,
		TransactionID: tx.TransactionID,
	}, nil
}
