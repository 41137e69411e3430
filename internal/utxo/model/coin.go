package model

// Network names the chain whose address encoding is used when annotating scripts.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
	Signet  Network = "signet"
)
