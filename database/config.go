package database

import (
	"fmt"

	"github.com/BubsLB/airdropbreakdown/conf"
)

// NewDatabaseFromConfig build the configured database type
func NewDatabaseFromConfig(dbCfg conf.DatabaseConfig, redisCfg conf.RedisConfig) (Database, error) {
	switch DBType(dbCfg.Type) {
	case DBTypeMySQL:
		return NewDatabase(DBTypeMySQL, &MySQLConfig{
			DSN:          dbCfg.Dsn,
			MaxOpenConns: dbCfg.MaxOpenConns,
			MaxIdleConns: dbCfg.MaxIdleConns,
		})
	case DBTypePebble:
		return NewDatabase(DBTypePebble, &PebbleConfig{
			DataDir: dbCfg.DataDir,
		})
	case DBTypeRedis:
		return NewDatabase(DBTypeRedis, &RedisConfig{
			Addr:      fmt.Sprintf("%s:%d", redisCfg.Host, redisCfg.Port),
			Password:  redisCfg.Password,
			DB:        redisCfg.DB,
			KeyPrefix: redisCfg.KeyPrefix,
		})
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDBType, dbCfg.Type)
	}
}

// InitDatabaseFromConfig initialize the global database from conf.Cfg
func InitDatabaseFromConfig() error {
	db, err := NewDatabaseFromConfig(conf.Cfg.Database, conf.Cfg.Redis)
	if err != nil {
		return err
	}

	DB = db
	currentDBType = DBType(conf.Cfg.Database.Type)
	return nil
}
