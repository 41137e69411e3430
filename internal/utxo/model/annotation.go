package model

// AnnotatedInput extends Input with a disassembly of its unlocking script.
type AnnotatedInput struct {
	Input
	ScriptSigAsm string `json:"script_sig_asm"`
	IsCoinbase   bool   `json:"coinbase"`
}

// AnnotatedOutput extends Output with its position, BTC value and script details.
type AnnotatedOutput struct {
	Output
	Index      uint32   `json:"index"`
	AmountBTC  float64  `json:"amount_btc"`
	ScriptType string   `json:"script_type"`
	ScriptAsm  string   `json:"script_asm"`
	Addresses  []string `json:"addresses,omitempty"`
}

// AnnotatedTransaction is the human-oriented view of a Transaction.
type AnnotatedTransaction struct {
	Version       uint32            `json:"version"`
	Size          int               `json:"size"`
	Inputs        []AnnotatedInput  `json:"inputs"`
	Outputs       []AnnotatedOutput `json:"outputs"`
	TotalOutput   Amount            `json:"total_output"`
	LockTime      uint32            `json:"lock_time"`
	TransactionID TxID              `json:"transaction_id"`
}
