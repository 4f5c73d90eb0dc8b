package dataset_service

import (
	"context"
	"fmt"
	"time"

	"github.com/BubsLB/airdropbreakdown/database"
	"github.com/BubsLB/airdropbreakdown/model"
	"github.com/BubsLB/airdropbreakdown/storage"
)

// Source produces a complete snapshot or an error, never a partial snapshot
type Source interface {
	Name() string
	Load(ctx context.Context) (*model.Snapshot, error)
}

// DocumentKeys storage keys of the published documents
type DocumentKeys struct {
	Data        string // single layout
	AddressMap  string // alias layout
	AirdropData string // alias layout
}

// StorageSource reads the JSON documents from a storage backend
type StorageSource struct {
	stor   storage.Storage
	layout model.Layout
	keys   DocumentKeys
}

// NewStorageSource create storage source
func NewStorageSource(stor storage.Storage, layout model.Layout, keys DocumentKeys) *StorageSource {
	return &StorageSource{
		stor:   stor,
		layout: layout,
		keys:   keys,
	}
}

// Name source description for logs and status
func (s *StorageSource) Name() string {
	return fmt.Sprintf("storage:%s", s.layout)
}

// Load fetch and parse the documents of the configured layout
func (s *StorageSource) Load(ctx context.Context) (*model.Snapshot, error) {
	snapshot := &model.Snapshot{
		Layout: s.layout,
		Source: s.Name(),
	}

	switch s.layout {
	case model.LayoutSingle:
		data, err := s.fetch(ctx, s.keys.Data)
		if err != nil {
			return nil, err
		}
		dataset, err := ParseAirdropDataset(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.keys.Data, err)
		}
		snapshot.Airdrop = dataset

	case model.LayoutAlias:
		// Both documents are required, nothing is published if either fails
		mapData, err := s.fetch(ctx, s.keys.AddressMap)
		if err != nil {
			return nil, err
		}
		airdropData, err := s.fetch(ctx, s.keys.AirdropData)
		if err != nil {
			return nil, err
		}
		aliases, err := ParseAddressAliasMap(mapData)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.keys.AddressMap, err)
		}
		dataset, err := ParseAirdropDataset(airdropData)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.keys.AirdropData, err)
		}
		snapshot.Aliases = aliases
		snapshot.Airdrop = dataset

	default:
		return nil, fmt.Errorf("unknown dataset layout %q", s.layout)
	}

	snapshot.LoadedAt = time.Now()
	return snapshot, nil
}

func (s *StorageSource) fetch(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.stor.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", key, err)
	}
	return data, nil
}

// DatabaseSource reads the datasets imported into a database
type DatabaseSource struct {
	db     database.Database
	layout model.Layout
}

// NewDatabaseSource create database source
func NewDatabaseSource(db database.Database, layout model.Layout) *DatabaseSource {
	return &DatabaseSource{
		db:     db,
		layout: layout,
	}
}

// Name source description for logs and status
func (s *DatabaseSource) Name() string {
	return fmt.Sprintf("database:%s", s.layout)
}

// Load read the whole datasets into memory
func (s *DatabaseSource) Load(ctx context.Context) (*model.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dataset, err := s.db.ListAllocations()
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}

	snapshot := &model.Snapshot{
		Layout:  s.layout,
		Airdrop: dataset,
		Source:  s.Name(),
	}

	if s.layout == model.LayoutAlias {
		aliases, err := s.db.ListAliases()
		if err != nil {
			return nil, fmt.Errorf("failed to list aliases: %w", err)
		}
		snapshot.Aliases = aliases
	}

	snapshot.LoadedAt = time.Now()
	return snapshot, nil
}
