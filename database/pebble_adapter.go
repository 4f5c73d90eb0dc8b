package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BubsLB/airdropbreakdown/model"

	"github.com/cockroachdb/pebble"
)

// PebbleDatabase PebbleDB database implementation with one instance per collection
type PebbleDatabase struct {
	collections map[string]*pebble.DB
}

// PebbleConfig PebbleDB configuration
type PebbleConfig struct {
	DataDir string
}

// Collection names and their key-value formats
const (
	collectionAllocation   = "allocation"    // key: {account_id}, value: JSON(AllocationRecord)
	collectionAddressAlias = "address_alias" // key: {evm_address}, value: {account_id}
)

// NewPebbleDatabase create PebbleDB database instance
func NewPebbleDatabase(config interface{}) (Database, error) {
	cfg, ok := config.(*PebbleConfig)
	if !ok {
		return nil, fmt.Errorf("invalid PebbleDB config type")
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", cfg.DataDir, err)
	}

	collectionNames := []string{
		collectionAllocation,
		collectionAddressAlias,
	}

	collections := make(map[string]*pebble.DB)
	for _, name := range collectionNames {
		collectionPath := filepath.Join(cfg.DataDir, "airdrop_db", name)

		db, err := pebble.Open(collectionPath, &pebble.Options{})
		if err != nil {
			// Close previously opened databases
			for _, openedDB := range collections {
				openedDB.Close()
			}
			return nil, fmt.Errorf("failed to open collection %s at %s: %w", name, collectionPath, err)
		}
		collections[name] = db
		logger.Debugf("Collection %s opened at %s", name, collectionPath)
	}

	logger.Infof("PebbleDB opened at %s with %d collections", cfg.DataDir, len(collections))
	return &PebbleDatabase{collections: collections}, nil
}

// SaveAllocation store a record under its lower-case account id
func (p *PebbleDatabase) SaveAllocation(accountID string, record *model.AllocationRecord) error {
	if accountID == "" || record == nil {
		return fmt.Errorf("accountID and record cannot be empty")
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return p.collections[collectionAllocation].Set([]byte(strings.ToLower(accountID)), data, pebble.NoSync)
}

// ListAllocations read every allocation record
func (p *PebbleDatabase) ListAllocations() (model.AirdropDataset, error) {
	iter, err := p.collections[collectionAllocation].NewIter(nil)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	dataset := make(model.AirdropDataset)
	for iter.First(); iter.Valid(); iter.Next() {
		var record model.AllocationRecord
		if err := json.Unmarshal(iter.Value(), &record); err != nil {
			return nil, fmt.Errorf("failed to decode allocation %s: %w", iter.Key(), err)
		}
		dataset[string(iter.Key())] = &record
	}

	return dataset, iter.Error()
}

// SaveAlias store an EVM address -> account id mapping
func (p *PebbleDatabase) SaveAlias(address, accountID string) error {
	if address == "" || accountID == "" {
		return fmt.Errorf("address and accountID cannot be empty")
	}

	return p.collections[collectionAddressAlias].Set([]byte(strings.ToLower(address)), []byte(accountID), pebble.NoSync)
}

// ListAliases read every address alias
func (p *PebbleDatabase) ListAliases() (model.AddressAliasMap, error) {
	iter, err := p.collections[collectionAddressAlias].NewIter(nil)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	aliases := make(model.AddressAliasMap)
	for iter.First(); iter.Valid(); iter.Next() {
		aliases[string(iter.Key())] = string(iter.Value())
	}

	return aliases, iter.Error()
}

// Reset delete every key of both collections
func (p *PebbleDatabase) Reset() error {
	for _, name := range []string{collectionAllocation, collectionAddressAlias} {
		if err := p.clearCollection(name); err != nil {
			return fmt.Errorf("failed to clear collection %s: %w", name, err)
		}
	}
	return nil
}

func (p *PebbleDatabase) clearCollection(name string) error {
	db := p.collections[name]
	iter, err := db.NewIter(nil)
	if err != nil {
		return err
	}

	batch := db.NewBatch()
	defer batch.Close()
	for iter.First(); iter.Valid(); iter.Next() {
		if err := batch.Delete(iter.Key(), nil); err != nil {
			iter.Close()
			return err
		}
	}
	if err := iter.Close(); err != nil {
		return err
	}
	return batch.Commit(pebble.Sync)
}

// Close flush and close all collections
func (p *PebbleDatabase) Close() error {
	var lastErr error
	for name, db := range p.collections {
		if err := db.Flush(); err != nil {
			logger.Warnf("Failed to flush collection %s: %v", name, err)
		}
		if err := db.Close(); err != nil {
			logger.Errorf("Failed to close collection %s: %v", name, err)
			lastErr = err
		}
	}
	return lastErr
}
