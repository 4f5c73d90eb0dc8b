package database

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BubsLB/airdropbreakdown/model"

	"github.com/redis/go-redis/v9"
)

// RedisDatabase datasets stored as two Redis hashes
type RedisDatabase struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig redis configuration
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

const (
	hashAllocation   = "allocation"    // field: {account_id}, value: JSON(AllocationRecord)
	hashAddressAlias = "address_alias" // field: {evm_address}, value: {account_id}
)

var ctx = context.Background()

// NewRedisDatabase create Redis database instance
func NewRedisDatabase(config interface{}) (Database, error) {
	cfg, ok := config.(*RedisConfig)
	if !ok {
		return nil, fmt.Errorf("invalid Redis config type")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis %s: %w", cfg.Addr, err)
	}

	logger.Infof("Redis connected successfully: %s (DB: %d)", cfg.Addr, cfg.DB)
	return &RedisDatabase{client: client, keyPrefix: cfg.KeyPrefix}, nil
}

func (r *RedisDatabase) hashKey(name string) string {
	return r.keyPrefix + name
}

// SaveAllocation set allocation hash field
func (r *RedisDatabase) SaveAllocation(accountID string, record *model.AllocationRecord) error {
	if accountID == "" || record == nil {
		return fmt.Errorf("accountID and record cannot be empty")
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal hash data: %w", err)
	}

	return r.client.HSet(ctx, r.hashKey(hashAllocation), strings.ToLower(accountID), data).Err()
}

// ListAllocations get all fields of the allocation hash
func (r *RedisDatabase) ListAllocations() (model.AirdropDataset, error) {
	fields, err := r.client.HGetAll(ctx, r.hashKey(hashAllocation)).Result()
	if err != nil {
		return nil, err
	}

	dataset := make(model.AirdropDataset, len(fields))
	for accountID, value := range fields {
		var record model.AllocationRecord
		if err := json.Unmarshal([]byte(value), &record); err != nil {
			return nil, fmt.Errorf("failed to decode allocation %s: %w", accountID, err)
		}
		dataset[accountID] = &record
	}

	return dataset, nil
}

// SaveAlias set address alias hash field
func (r *RedisDatabase) SaveAlias(address, accountID string) error {
	if address == "" || accountID == "" {
		return fmt.Errorf("address and accountID cannot be empty")
	}

	return r.client.HSet(ctx, r.hashKey(hashAddressAlias), strings.ToLower(address), accountID).Err()
}

// ListAliases get all fields of the address alias hash
func (r *RedisDatabase) ListAliases() (model.AddressAliasMap, error) {
	fields, err := r.client.HGetAll(ctx, r.hashKey(hashAddressAlias)).Result()
	if err != nil {
		return nil, err
	}

	return model.AddressAliasMap(fields), nil
}

// Reset delete both hashes
func (r *RedisDatabase) Reset() error {
	return r.client.Del(ctx, r.hashKey(hashAllocation), r.hashKey(hashAddressAlias)).Err()
}

// Close close Redis connection
func (r *RedisDatabase) Close() error {
	return r.client.Close()
}
