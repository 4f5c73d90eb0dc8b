package database

import (
	"errors"
	"testing"

	"github.com/BubsLB/airdropbreakdown/model"
)

func TestPebbleDatabase_AllocationsAndAliases(t *testing.T) {
	db, err := NewPebbleDatabase(&PebbleConfig{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("NewPebbleDatabase failed: %v", err)
	}
	defer db.Close()

	record := &model.AllocationRecord{
		Total: 150,
		Campaigns: []model.CampaignEntry{
			{Name: "Alpha", Tokens: 100},
			{Name: "Beta", Tokens: 50},
		},
	}
	if err := db.SaveAllocation("ACCT1", record); err != nil {
		t.Fatalf("SaveAllocation failed: %v", err)
	}
	if err := db.SaveAlias("0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", "acct1"); err != nil {
		t.Fatalf("SaveAlias failed: %v", err)
	}

	dataset, err := db.ListAllocations()
	if err != nil {
		t.Fatalf("ListAllocations failed: %v", err)
	}
	got, ok := dataset["acct1"]
	if !ok {
		t.Fatalf("Expected lower-cased key acct1, got %v", dataset)
	}
	if got.Total != 150 || len(got.Campaigns) != 2 || got.Campaigns[1].Name != "Beta" {
		t.Errorf("Unexpected record: %+v", got)
	}

	aliases, err := db.ListAliases()
	if err != nil {
		t.Fatalf("ListAliases failed: %v", err)
	}
	if aliases["0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"] != "acct1" {
		t.Errorf("Unexpected aliases: %v", aliases)
	}
}

func TestPebbleDatabase_RejectsEmpty(t *testing.T) {
	db, err := NewPebbleDatabase(&PebbleConfig{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("NewPebbleDatabase failed: %v", err)
	}
	defer db.Close()

	if err := db.SaveAllocation("", &model.AllocationRecord{}); err == nil {
		t.Error("Expected error for empty account id")
	}
	if err := db.SaveAlias("0xabc", ""); err == nil {
		t.Error("Expected error for empty account id")
	}
}

func TestNewDatabase_Unsupported(t *testing.T) {
	if _, err := NewDatabase(DBType("sqlite"), nil); !errors.Is(err, ErrUnsupportedDBType) {
		t.Errorf("Expected ErrUnsupportedDBType, got %v", err)
	}
	if _, err := NewDatabase(DBTypePebble, "not a config"); err == nil {
		t.Error("Expected error for wrong config type")
	}
}

func TestPebbleDatabase_Reset(t *testing.T) {
	db, err := NewPebbleDatabase(&PebbleConfig{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("NewPebbleDatabase failed: %v", err)
	}
	defer db.Close()

	for _, id := range []string{"acct1", "acct2", "acct3"} {
		if err := db.SaveAllocation(id, &model.AllocationRecord{Total: 1}); err != nil {
			t.Fatalf("SaveAllocation failed: %v", err)
		}
	}
	if err := db.SaveAlias("0xaa", "acct1"); err != nil {
		t.Fatalf("SaveAlias failed: %v", err)
	}

	if err := db.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	dataset, _ := db.ListAllocations()
	aliases, _ := db.ListAliases()
	if len(dataset) != 0 || len(aliases) != 0 {
		t.Errorf("Expected empty database after reset, got %d records and %d aliases", len(dataset), len(aliases))
	}

	// still writable afterwards
	if err := db.SaveAllocation("acct4", &model.AllocationRecord{Total: 2}); err != nil {
		t.Fatalf("SaveAllocation after reset failed: %v", err)
	}
	dataset, _ = db.ListAllocations()
	if len(dataset) != 1 {
		t.Errorf("Expected 1 record, got %d", len(dataset))
	}
}
