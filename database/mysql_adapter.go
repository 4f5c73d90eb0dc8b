package database

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/BubsLB/airdropbreakdown/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// MySQLDatabase MySQL database implementation
type MySQLDatabase struct {
	db *gorm.DB
}

// MySQLConfig MySQL configuration
type MySQLConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

// NewMySQLDatabase create MySQL database instance
func NewMySQLDatabase(config interface{}) (Database, error) {
	cfg, ok := config.(*MySQLConfig)
	if !ok {
		return nil, fmt.Errorf("invalid MySQL config type")
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect MySQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Set connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&model.AllocationRow{}, &model.AddressAliasRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	logger.Info("MySQL database connected successfully")
	return &MySQLDatabase{db: db}, nil
}

// SaveAllocation insert or replace an allocation row
func (m *MySQLDatabase) SaveAllocation(accountID string, record *model.AllocationRecord) error {
	if accountID == "" || record == nil {
		return fmt.Errorf("accountID and record cannot be empty")
	}

	campaigns, err := json.Marshal(record.Campaigns)
	if err != nil {
		return err
	}

	row := &model.AllocationRow{
		AccountId: strings.ToLower(accountID),
		Total:     record.Total,
		Campaigns: string(campaigns),
	}

	return m.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"total", "campaigns", "updated_at"}),
	}).Create(row).Error
}

// ListAllocations read every allocation row
func (m *MySQLDatabase) ListAllocations() (model.AirdropDataset, error) {
	var rows []*model.AllocationRow
	if err := m.db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	dataset := make(model.AirdropDataset, len(rows))
	for _, row := range rows {
		record := &model.AllocationRecord{Total: row.Total}
		if row.Campaigns != "" {
			if err := json.Unmarshal([]byte(row.Campaigns), &record.Campaigns); err != nil {
				return nil, fmt.Errorf("failed to decode campaigns of %s: %w", row.AccountId, err)
			}
		}
		dataset[row.AccountId] = record
	}

	return dataset, nil
}

// SaveAlias insert or replace an address alias row
func (m *MySQLDatabase) SaveAlias(address, accountID string) error {
	if address == "" || accountID == "" {
		return fmt.Errorf("address and accountID cannot be empty")
	}

	row := &model.AddressAliasRow{
		Address:   strings.ToLower(address),
		AccountId: accountID,
	}

	return m.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{"account_id", "updated_at"}),
	}).Create(row).Error
}

// ListAliases read every address alias row
func (m *MySQLDatabase) ListAliases() (model.AddressAliasMap, error) {
	var rows []*model.AddressAliasRow
	if err := m.db.Find(&rows).Error; err != nil {
		return nil, err
	}

	aliases := make(model.AddressAliasMap, len(rows))
	for _, row := range rows {
		aliases[row.Address] = row.AccountId
	}

	return aliases, nil
}

// Reset delete every allocation and alias row
func (m *MySQLDatabase) Reset() error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.AllocationRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear allocations: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&model.AddressAliasRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear aliases: %w", err)
		}
		return nil
	})
}

// Close close the underlying connection pool
func (m *MySQLDatabase) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
