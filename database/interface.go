package database

import (
	"github.com/BubsLB/airdropbreakdown/model"

	"github.com/sirupsen/logrus"
)

var logger = logrus.StandardLogger().WithField("module", "database")

// Database imported copy of the eligibility datasets
type Database interface {
	// Allocation operations
	SaveAllocation(accountID string, record *model.AllocationRecord) error
	ListAllocations() (model.AirdropDataset, error)

	// Address alias operations
	SaveAlias(address, accountID string) error
	ListAliases() (model.AddressAliasMap, error)

	// General operations
	Reset() error // remove every allocation and alias
	Close() error
}

// DBType database type
type DBType string

const (
	DBTypeMySQL  DBType = "mysql"
	DBTypePebble DBType = "pebble"
	DBTypeRedis  DBType = "redis"
)

// Global database instance
var DB Database

// currentDBType stores the current database type
var currentDBType DBType

// NewDatabase create a database without touching the global instance
func NewDatabase(dbType DBType, config interface{}) (Database, error) {
	switch dbType {
	case DBTypeMySQL:
		return NewMySQLDatabase(config)
	case DBTypePebble:
		return NewPebbleDatabase(config)
	case DBTypeRedis:
		return NewRedisDatabase(config)
	default:
		return nil, ErrUnsupportedDBType
	}
}

// GetDBType get current database type
func GetDBType() DBType {
	return currentDBType
}

// CloseDatabase close the global database if opened
func CloseDatabase() error {
	if DB == nil {
		return nil
	}
	err := DB.Close()
	DB = nil
	return err
}
