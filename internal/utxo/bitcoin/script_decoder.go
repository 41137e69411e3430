package bitcoin

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/utxo/model"
)

// scriptDecoder extracts script classes, disassembly and addresses from raw scripts.
type scriptDecoder struct {
	params *chaincfg.Params
}

// NewScriptDecoder initializes a decoder that encodes addresses using params of the provided network.
func NewScriptDecoder(network model.Network) (ScriptDecoder, error) {
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &scriptDecoder{params: params}, nil
}

func (d *scriptDecoder) decodeLockingScript(scriptHex string) (lockingScript, error) {
	script, err := hex.DecodeString(scriptHex)
	if err != nil {
		return lockingScript{}, err
	}
	class, addrs, _, err := txscript.ExtractPkScriptAddrs(script, d.params)
	if err != nil {
		return lockingScript{}, err
	}

	addresses := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		addresses = append(addresses, addr.EncodeAddress())
	}
	return lockingScript{
		class:     class.String(),
		asm:       disassemble(script),
		addresses: addresses,
	}, nil
}

func (d *scriptDecoder) decodeUnlockingScript(scriptHex string) (string, error) {
	script, err := hex.DecodeString(scriptHex)
	if err != nil {
		return "", err
	}
	return disassemble(script), nil
}

// disassemble returns the script's opcodes; a script that fails to parse yields
// the opcodes up to the failure followed by "[error]".
func disassemble(script []byte) string {
	asm, _ := txscript.DisasmString(script)
	return asm
}

func chainParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
