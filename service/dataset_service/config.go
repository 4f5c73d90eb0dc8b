package dataset_service

import (
	"fmt"

	"github.com/BubsLB/airdropbreakdown/conf"
	"github.com/BubsLB/airdropbreakdown/database"
	"github.com/BubsLB/airdropbreakdown/model"
	"github.com/BubsLB/airdropbreakdown/storage"
)

// KeysFromConfig document keys from conf.Cfg
func KeysFromConfig() DocumentKeys {
	return DocumentKeys{
		Data:        conf.Cfg.Dataset.DataKey,
		AddressMap:  conf.Cfg.Dataset.AddressMapKey,
		AirdropData: conf.Cfg.Dataset.AirdropDataKey,
	}
}

// NewSourceFromConfig build the configured dataset source. The database source
// initializes database.DB, which the caller closes with database.CloseDatabase.
func NewSourceFromConfig() (Source, error) {
	layout := model.Layout(conf.Cfg.Dataset.Layout)

	switch conf.Cfg.Dataset.Source {
	case "database":
		if err := database.InitDatabaseFromConfig(); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return NewDatabaseSource(database.DB, layout), nil
	case "storage", "":
		stor, err := storage.NewStorage()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		return NewStorageSource(stor, layout, KeysFromConfig()), nil
	default:
		return nil, fmt.Errorf("unknown dataset source: %s", conf.Cfg.Dataset.Source)
	}
}
