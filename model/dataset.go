package model

import (
	"strings"
	"time"
)

// Layout shape of the published dataset documents
type Layout string

const (
	LayoutSingle Layout = "single" // {address: record}
	LayoutAlias  Layout = "alias"  // {evm address: account id} + {account id: record}
)

// AirdropDataset canonical account identifier (lower-case) -> allocation record
type AirdropDataset map[string]*AllocationRecord

// AddressAliasMap lower-case EVM address -> canonical account identifier
type AddressAliasMap map[string]string

// Lookup case-insensitive record lookup
func (d AirdropDataset) Lookup(key string) (*AllocationRecord, bool) {
	record, ok := d[strings.ToLower(key)]
	return record, ok
}

// Lookup case-insensitive alias lookup
func (m AddressAliasMap) Lookup(address string) (string, bool) {
	accountID, ok := m[strings.ToLower(address)]
	return accountID, ok
}

// Snapshot datasets held in memory after a successful load. Never mutated once published.
type Snapshot struct {
	Layout   Layout
	Airdrop  AirdropDataset
	Aliases  AddressAliasMap // nil for the single layout
	Source   string
	LoadedAt time.Time
}
