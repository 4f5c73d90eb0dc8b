package dataset_service

import (
	"encoding/json"
	"fmt"

	"github.com/BubsLB/airdropbreakdown/database"
	"github.com/BubsLB/airdropbreakdown/model"
	"github.com/BubsLB/airdropbreakdown/storage"
)

// ImportStats what an import wrote
type ImportStats struct {
	Records int
	Aliases int
}

// Items total number of entries an import of snapshot writes
func Items(snapshot *model.Snapshot) int {
	return len(snapshot.Airdrop) + len(snapshot.Aliases)
}

// Import replace the contents of db with a loaded snapshot. progress, if set, is called once per entry.
func Import(snapshot *model.Snapshot, db database.Database, progress func()) (ImportStats, error) {
	var stats ImportStats
	if snapshot == nil {
		return stats, ErrDataNotReady
	}

	// Entries dropped from the documents must not survive a re-import
	if err := db.Reset(); err != nil {
		return stats, fmt.Errorf("failed to clear database: %w", err)
	}

	for accountID, record := range snapshot.Airdrop {
		if err := db.SaveAllocation(accountID, record); err != nil {
			return stats, fmt.Errorf("failed to save allocation %s: %w", accountID, err)
		}
		stats.Records++
		if progress != nil {
			progress()
		}
	}

	for address, accountID := range snapshot.Aliases {
		if err := db.SaveAlias(address, accountID); err != nil {
			return stats, fmt.Errorf("failed to save alias %s: %w", address, err)
		}
		stats.Aliases++
		if progress != nil {
			progress()
		}
	}

	logger.Infof("Imported %d records and %d aliases", stats.Records, stats.Aliases)
	return stats, nil
}

// Export publish the datasets held in db as JSON documents in stor
func Export(db database.Database, layout model.Layout, stor storage.Storage, keys DocumentKeys) (ImportStats, error) {
	var stats ImportStats

	airdrop, err := db.ListAllocations()
	if err != nil {
		return stats, fmt.Errorf("failed to list allocations: %w", err)
	}

	airdropKey := keys.Data
	if layout == model.LayoutAlias {
		airdropKey = keys.AirdropData

		aliases, err := db.ListAliases()
		if err != nil {
			return stats, fmt.Errorf("failed to list aliases: %w", err)
		}
		if err := saveDocument(stor, keys.AddressMap, aliases); err != nil {
			return stats, err
		}
		stats.Aliases = len(aliases)
	}

	if err := saveDocument(stor, airdropKey, airdrop); err != nil {
		return stats, err
	}
	stats.Records = len(airdrop)

	logger.Infof("Exported %d records and %d aliases", stats.Records, stats.Aliases)
	return stats, nil
}

func saveDocument(stor storage.Storage, key string, document interface{}) error {
	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := stor.Save(key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
