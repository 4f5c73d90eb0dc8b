package common

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

func TestToChecksumAddress(t *testing.T) {
	tests := []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	}

	for _, expected := range tests {
		lower := "0x" + strings.ToLower(expected[2:])
		if got := ToChecksumAddress(lower); got != expected {
			t.Errorf("Expected %s, got %s", expected, got)
		}
	}
}

func TestToChecksumAddress_PassThrough(t *testing.T) {
	for _, input := range []string{"", "0x123", "not-an-address", "0xzz00000000000000000000000000000000000000"} {
		if got := ToChecksumAddress(input); got != input {
			t.Errorf("Expected %q unchanged, got %q", input, got)
		}
	}
}

func TestShortAddress(t *testing.T) {
	if got := ShortAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"); got != "0x5aA...eAed" {
		t.Errorf("Expected 0x5aA...eAed, got %s", got)
	}
	if got := ShortAddress("short"); got != "short" {
		t.Errorf("Expected short input unchanged, got %s", got)
	}
	if got := ShortAddress("ééééééééé"); got != "ééééééééé" {
		t.Errorf("Expected nine runes unchanged, got %s", got)
	}
	if got := ShortAddress("äöüäöüäöüäöü"); got != "äöüäö...üäöü" || !utf8.ValidString(got) {
		t.Errorf("Expected rune-aligned short form, got %s", got)
	}
}

func TestCheckAddressClass(t *testing.T) {
	class, err := CheckAddressClass(&chaincfg.MainNetParams, "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa")
	if err != nil {
		t.Fatalf("CheckAddressClass failed: %v", err)
	}
	if class != txscript.PubKeyHashTy {
		t.Errorf("Expected %s, got %s", txscript.PubKeyHashTy, class)
	}

	class, err = CheckAddressClass(&chaincfg.MainNetParams, "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4")
	if err != nil {
		t.Fatalf("CheckAddressClass failed: %v", err)
	}
	if class != txscript.WitnessV0PubKeyHashTy {
		t.Errorf("Expected %s, got %s", txscript.WitnessV0PubKeyHashTy, class)
	}

	if _, err := CheckAddressClass(&chaincfg.MainNetParams, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"); err == nil {
		t.Error("Expected error for EVM address")
	}
}

func TestNetParams(t *testing.T) {
	if NetParams("testnet") != &chaincfg.TestNet3Params {
		t.Error("Expected testnet params")
	}
	if NetParams("livenet") != &chaincfg.MainNetParams {
		t.Error("Expected mainnet params for livenet")
	}
}
