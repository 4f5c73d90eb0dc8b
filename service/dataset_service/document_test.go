package dataset_service

import (
	"errors"
	"testing"
)

func TestParseAirdropDataset(t *testing.T) {
	data := []byte(`{
		"0xABCDEF0123456789abcdef0123456789ABCDEF01": {
			"total": 500,
			"campaigns": [{"name": "Alpha", "tokens": 300}, {"name": "Beta", "tokens": 200}]
		},
		"acct2": {"total": 0, "campaigns": []},
		"acct3": {"total": 10}
	}`)

	dataset, err := ParseAirdropDataset(data)
	if err != nil {
		t.Fatalf("ParseAirdropDataset failed: %v", err)
	}

	if len(dataset) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(dataset))
	}

	record, ok := dataset["0xabcdef0123456789abcdef0123456789abcdef01"]
	if !ok {
		t.Fatal("Expected key to be lower-cased")
	}
	if record.Total != 500 {
		t.Errorf("Expected total 500, got %d", record.Total)
	}
	if len(record.Campaigns) != 2 || record.Campaigns[0].Name != "Alpha" || record.Campaigns[1].Tokens != 200 {
		t.Errorf("Unexpected campaigns: %+v", record.Campaigns)
	}

	if dataset["acct3"].Campaigns == nil {
		t.Error("Expected missing campaigns to decode as an empty list")
	}
}

func TestParseAirdropDataset_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", `{"a": `},
		{"array root", `[1, 2]`},
		{"record not object", `{"a": 5}`},
		{"total missing", `{"a": {"campaigns": []}}`},
		{"total string", `{"a": {"total": "5"}}`},
		{"campaigns object", `{"a": {"total": 5, "campaigns": {}}}`},
		{"tokens string", `{"a": {"total": 5, "campaigns": [{"name": "x", "tokens": "5"}]}}`},
		{"total fractional", `{"a": {"total": 0.5}}`},
		{"tokens fractional", `{"a": {"total": 5, "campaigns": [{"name": "x", "tokens": 1.5}]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAirdropDataset([]byte(tt.data))
			if !errors.Is(err, ErrInvalidDocument) {
				t.Errorf("Expected ErrInvalidDocument, got %v", err)
			}
		})
	}
}

func TestParseAddressAliasMap(t *testing.T) {
	aliases, err := ParseAddressAliasMap([]byte(`{"0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA": "Acct1"}`))
	if err != nil {
		t.Fatalf("ParseAddressAliasMap failed: %v", err)
	}

	if got := aliases["0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"]; got != "Acct1" {
		t.Errorf("Expected Acct1 under lower-cased key, got %q", got)
	}

	if _, err := ParseAddressAliasMap([]byte(`{"0xaa": 1}`)); !errors.Is(err, ErrInvalidDocument) {
		t.Errorf("Expected ErrInvalidDocument for numeric account id, got %v", err)
	}
}
