package common

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"golang.org/x/crypto/sha3"
)

// CheckAddressClass decode a bitcoin address on net and report its script class
func CheckAddressClass(net *chaincfg.Params, address string) (txscript.ScriptClass, error) {
	addr, err := btcutil.DecodeAddress(address, net)
	if err != nil {
		return txscript.NonStandardTy, err
	}
	pkScriptByte, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return txscript.NonStandardTy, err
	}
	scriptClass, _, _, err := txscript.ExtractPkScriptAddrs(pkScriptByte, net)
	if err != nil {
		return txscript.NonStandardTy, err
	}
	return scriptClass, nil
}

// NetParams chain parameters for the configured net name
func NetParams(net string) *chaincfg.Params {
	switch net {
	case "testnet":
		return &chaincfg.TestNet3Params
	case "regtest":
		return &chaincfg.RegressionNetParams
	default:
		return &chaincfg.MainNetParams
	}
}

// ToChecksumAddress EIP-55 mixed-case form of a 0x-prefixed 40-hex address.
// Anything else is returned unchanged.
func ToChecksumAddress(address string) string {
	if len(address) != 42 || !strings.HasPrefix(strings.ToLower(address), "0x") {
		return address
	}
	body := strings.ToLower(address[2:])
	if _, err := hex.DecodeString(body); err != nil {
		return address
	}

	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte(body))
	hash := hex.EncodeToString(hasher.Sum(nil))

	out := make([]byte, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c >= 'a' && c <= 'f' && hash[i] >= '8' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return "0x" + string(out)
}

// ShortAddress first 5 and last 4 characters, e.g. 0x5aA...eAed
func ShortAddress(address string) string {
	runes := []rune(address)
	if len(runes) <= 9 {
		return address
	}
	return string(runes[:5]) + "..." + string(runes[len(runes)-4:])
}
