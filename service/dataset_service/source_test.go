package dataset_service

import (
	"context"
	"errors"
	"testing"

	"github.com/BubsLB/airdropbreakdown/database"
	"github.com/BubsLB/airdropbreakdown/model"
	"github.com/BubsLB/airdropbreakdown/storage"
)

var testKeys = DocumentKeys{
	Data:        "data.json",
	AddressMap:  "address_map.json",
	AirdropData: "airdrop_data.json",
}

func newTestStorage(t *testing.T, files map[string]string) storage.Storage {
	t.Helper()
	stor, err := storage.NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}
	for key, body := range files {
		if err := stor.Save(key, []byte(body)); err != nil {
			t.Fatalf("Save %s failed: %v", key, err)
		}
	}
	return stor
}

func TestStorageSource_Single(t *testing.T) {
	stor := newTestStorage(t, map[string]string{
		"data.json": `{"0xabc": {"total": 5, "campaigns": [{"name": "Alpha", "tokens": 5}]}}`,
	})

	snapshot, err := NewStorageSource(stor, model.LayoutSingle, testKeys).Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snapshot.Layout != model.LayoutSingle || len(snapshot.Airdrop) != 1 || snapshot.Aliases != nil {
		t.Errorf("Unexpected snapshot: %+v", snapshot)
	}
	if snapshot.LoadedAt.IsZero() {
		t.Error("Expected LoadedAt to be set")
	}
}

func TestStorageSource_Alias(t *testing.T) {
	stor := newTestStorage(t, map[string]string{
		"address_map.json":  `{"0xaaa": "acct1"}`,
		"airdrop_data.json": `{"acct1": {"total": 100, "campaigns": []}}`,
	})

	snapshot, err := NewStorageSource(stor, model.LayoutAlias, testKeys).Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snapshot.Aliases["0xaaa"] != "acct1" || snapshot.Airdrop["acct1"].Total != 100 {
		t.Errorf("Unexpected snapshot: %+v", snapshot)
	}
}

func TestStorageSource_AliasPartialFailure(t *testing.T) {
	// address map present, airdrop data missing: nothing is published
	stor := newTestStorage(t, map[string]string{
		"address_map.json": `{"0xaaa": "acct1"}`,
	})

	snapshot, err := NewStorageSource(stor, model.LayoutAlias, testKeys).Load(context.Background())
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if snapshot != nil {
		t.Error("Expected no snapshot on partial failure")
	}
}

func TestStorageSource_MalformedDocument(t *testing.T) {
	stor := newTestStorage(t, map[string]string{
		"data.json": `not json`,
	})

	loader := NewLoader(NewStorageSource(stor, model.LayoutSingle, testKeys))
	err := loader.Load(context.Background())
	if !errors.Is(err, ErrLoadFailed) {
		t.Errorf("Expected ErrLoadFailed, got %v", err)
	}
}

func TestDatabaseSource_Alias(t *testing.T) {
	db, err := database.NewPebbleDatabase(&database.PebbleConfig{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("NewPebbleDatabase failed: %v", err)
	}
	defer db.Close()

	if err := db.SaveAllocation("acct1", &model.AllocationRecord{Total: 100}); err != nil {
		t.Fatalf("SaveAllocation failed: %v", err)
	}
	if err := db.SaveAlias("0xaaa", "acct1"); err != nil {
		t.Fatalf("SaveAlias failed: %v", err)
	}

	snapshot, err := NewDatabaseSource(db, model.LayoutAlias).Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snapshot.Airdrop["acct1"].Total != 100 || snapshot.Aliases["0xaaa"] != "acct1" {
		t.Errorf("Unexpected snapshot: %+v", snapshot)
	}
}
