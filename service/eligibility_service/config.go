package eligibility_service

import (
	"time"

	"github.com/BubsLB/airdropbreakdown/common"
	"github.com/BubsLB/airdropbreakdown/conf"
	"github.com/BubsLB/airdropbreakdown/model"
)

// NewCheckServiceFromConfig check service over provider using conf.Cfg
func NewCheckServiceFromConfig(provider SnapshotProvider) (*CheckService, error) {
	policy, err := PolicyForLayout(
		model.Layout(conf.Cfg.Dataset.Layout),
		conf.Cfg.Checker.ExtraSchemes,
		common.NetParams(conf.Cfg.Net),
	)
	if err != nil {
		return nil, err
	}

	delay := time.Duration(conf.Cfg.Checker.CheckDelayMs) * time.Millisecond
	return NewCheckService(NewResolver(policy, provider), delay), nil
}
