package conf

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config application configuration structure
type Config struct {
	// Network configuration
	Net  string // livenet / testnet, used by the bitcoin address scheme
	Port string // HTTP API port

	Log      LogConfig
	Dataset  DatasetConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Checker  CheckerConfig
}

// LogConfig logging configuration
type LogConfig struct {
	Level  string // logrus level: debug, info, warn, error
	Format string // text or json
}

// DatasetConfig eligibility dataset configuration
type DatasetConfig struct {
	Layout         string // single: one address->record document; alias: address map + airdrop data
	Source         string // storage: read JSON documents; database: read the imported copy
	DataKey        string // single layout document key
	AddressMapKey  string // alias layout: EVM address -> account id
	AirdropDataKey string // alias layout: account id -> record
}

// StorageConfig document storage configuration
type StorageConfig struct {
	Type  string
	Local LocalStorageConfig
	HTTP  HTTPStorageConfig
	OSS   OSSStorageConfig
	S3    S3StorageConfig
	MinIO MinIOStorageConfig
}

// LocalStorageConfig local storage configuration
type LocalStorageConfig struct {
	BasePath string
}

// HTTPStorageConfig static file origin configuration
type HTTPStorageConfig struct {
	BaseUrl string
}

// OSSStorageConfig OSS storage configuration
type OSSStorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
}

// S3StorageConfig AWS S3 storage configuration
type S3StorageConfig struct {
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	Endpoint  string // Optional custom endpoint
}

// MinIOStorageConfig MinIO storage configuration
type MinIOStorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
}

// DatabaseConfig imported dataset database configuration
type DatabaseConfig struct {
	Type         string // pebble, mysql, redis
	Dsn          string // MySQL DSN
	MaxOpenConns int    // MySQL max open connections
	MaxIdleConns int    // MySQL max idle connections
	DataDir      string // PebbleDB data directory
}

// RedisConfig redis configuration
type RedisConfig struct {
	Host      string
	Port      int
	Password  string
	DB        int
	KeyPrefix string // prefix of the dataset hashes
}

// CheckerConfig eligibility check configuration
type CheckerConfig struct {
	CheckDelayMs int      // cosmetic delay before a lookup result is returned
	ExtraSchemes []string // schemes enabled on top of the layout preset, e.g. bitcoin
	RateLimit    float64  // checks per second per client, 0 disables
	RateBurst    int
	ProxyCount   int // trusted reverse proxies in front of the API

	SwaggerBaseUrl string // host shown in the swagger document
}

// Cfg global configuration instance
var Cfg *Config

// InitConfig initialize configuration from the current environment file
func InitConfig() error {
	return InitConfigFile(GetYaml())
}

// InitConfigFile initialize configuration from an explicit file
func InitConfigFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("airdrop")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("Fatal error config file: %s", err)
	}

	cfg := &Config{
		Net:  v.GetString("net"),
		Port: v.GetString("port"),

		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},

		Dataset: DatasetConfig{
			Layout:         v.GetString("dataset.layout"),
			Source:         v.GetString("dataset.source"),
			DataKey:        v.GetString("dataset.data_key"),
			AddressMapKey:  v.GetString("dataset.address_map_key"),
			AirdropDataKey: v.GetString("dataset.airdrop_data_key"),
		},

		Storage: StorageConfig{
			Type: v.GetString("storage.type"),
			Local: LocalStorageConfig{
				BasePath: v.GetString("storage.local.base_path"),
			},
			HTTP: HTTPStorageConfig{
				BaseUrl: v.GetString("storage.http.base_url"),
			},
			OSS: OSSStorageConfig{
				Endpoint:  v.GetString("storage.oss.endpoint"),
				AccessKey: v.GetString("storage.oss.access_key"),
				SecretKey: v.GetString("storage.oss.secret_key"),
				Bucket:    v.GetString("storage.oss.bucket"),
			},
			S3: S3StorageConfig{
				Region:    v.GetString("storage.s3.region"),
				AccessKey: v.GetString("storage.s3.access_key"),
				SecretKey: v.GetString("storage.s3.secret_key"),
				Bucket:    v.GetString("storage.s3.bucket"),
				Endpoint:  v.GetString("storage.s3.endpoint"),
			},
			MinIO: MinIOStorageConfig{
				Endpoint:  v.GetString("storage.minio.endpoint"),
				AccessKey: v.GetString("storage.minio.access_key"),
				SecretKey: v.GetString("storage.minio.secret_key"),
				Bucket:    v.GetString("storage.minio.bucket"),
			},
		},

		Database: DatabaseConfig{
			Type:         v.GetString("database.type"),
			Dsn:          v.GetString("database.dsn"),
			MaxOpenConns: v.GetInt("database.max_open_conns"),
			MaxIdleConns: v.GetInt("database.max_idle_conns"),
			DataDir:      v.GetString("database.data_dir"),
		},

		Redis: RedisConfig{
			Host:      v.GetString("redis.host"),
			Port:      v.GetInt("redis.port"),
			Password:  v.GetString("redis.password"),
			DB:        v.GetInt("redis.db"),
			KeyPrefix: v.GetString("redis.key_prefix"),
		},

		Checker: CheckerConfig{
			RateLimit:    v.GetFloat64("checker.rate_limit"),
			RateBurst:    v.GetInt("checker.rate_burst"),
			ProxyCount:   v.GetInt("checker.proxy_count"),
			ExtraSchemes: v.GetStringSlice("checker.extra_schemes"),

			SwaggerBaseUrl: v.GetString("checker.swagger_base_url"),
		},
	}

	// A zero delay is meaningful, so only fall back when the key is absent
	if v.IsSet("checker.check_delay_ms") {
		cfg.Checker.CheckDelayMs = v.GetInt("checker.check_delay_ms")
	} else {
		cfg.Checker.CheckDelayMs = 1200
	}

	applyDefaults(cfg)
	if err := validate(cfg); err != nil {
		return err
	}

	Cfg = cfg
	return nil
}

// applyDefaults set default values
func applyDefaults(cfg *Config) {
	if cfg.Net == "" {
		cfg.Net = "livenet"
	}
	if cfg.Port == "" {
		cfg.Port = "7291"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.Dataset.Layout == "" {
		cfg.Dataset.Layout = "single"
	}
	if cfg.Dataset.Source == "" {
		cfg.Dataset.Source = "storage"
	}
	if cfg.Dataset.DataKey == "" {
		cfg.Dataset.DataKey = "data.json"
	}
	if cfg.Dataset.AddressMapKey == "" {
		cfg.Dataset.AddressMapKey = "address_map.json"
	}
	if cfg.Dataset.AirdropDataKey == "" {
		cfg.Dataset.AirdropDataKey = "airdrop_data.json"
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "local"
	}
	if cfg.Storage.Local.BasePath == "" {
		cfg.Storage.Local.BasePath = "./data"
	}
	if cfg.Database.Type == "" {
		cfg.Database.Type = "pebble"
	}
	if cfg.Database.DataDir == "" {
		cfg.Database.DataDir = "./data/db"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 20
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "127.0.0.1"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "airdrop:"
	}
	if cfg.Checker.CheckDelayMs < 0 {
		cfg.Checker.CheckDelayMs = 0
	}
	if cfg.Checker.RateLimit > 0 && cfg.Checker.RateBurst <= 0 {
		cfg.Checker.RateBurst = int(cfg.Checker.RateLimit) + 1
	}
}

func validate(cfg *Config) error {
	switch cfg.Dataset.Layout {
	case "single", "alias":
	default:
		return fmt.Errorf("invalid dataset.layout %q (expected single or alias)", cfg.Dataset.Layout)
	}
	switch cfg.Dataset.Source {
	case "storage", "database":
	default:
		return fmt.Errorf("invalid dataset.source %q (expected storage or database)", cfg.Dataset.Source)
	}
	return nil
}
