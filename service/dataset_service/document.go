package dataset_service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/BubsLB/airdropbreakdown/model"

	"github.com/tidwall/gjson"
)

// ParseAirdropDataset parse {"<key>": {"total": n, "campaigns": [...]}}. Keys are lower-cased.
func ParseAirdropDataset(data []byte) (model.AirdropDataset, error) {
	root, err := parseObject(data)
	if err != nil {
		return nil, err
	}

	dataset := make(model.AirdropDataset)
	var parseErr error
	root.ForEach(func(key, value gjson.Result) bool {
		record, err := parseRecord(value)
		if err != nil {
			parseErr = fmt.Errorf("%w: record %q: %v", ErrInvalidDocument, key.String(), err)
			return false
		}
		dataset[strings.ToLower(key.String())] = record
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return dataset, nil
}

// ParseAddressAliasMap parse {"<evm address>": "<account id>"}. Keys are lower-cased.
func ParseAddressAliasMap(data []byte) (model.AddressAliasMap, error) {
	root, err := parseObject(data)
	if err != nil {
		return nil, err
	}

	aliases := make(model.AddressAliasMap)
	var parseErr error
	root.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String {
			parseErr = fmt.Errorf("%w: alias %q: account id must be a string", ErrInvalidDocument, key.String())
			return false
		}
		aliases[strings.ToLower(key.String())] = value.String()
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return aliases, nil
}

func parseObject(data []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, fmt.Errorf("%w: malformed JSON", ErrInvalidDocument)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return gjson.Result{}, fmt.Errorf("%w: expected a JSON object", ErrInvalidDocument)
	}
	return root, nil
}

func parseRecord(value gjson.Result) (*model.AllocationRecord, error) {
	if !value.IsObject() {
		return nil, errors.New("expected an object")
	}

	total := value.Get("total")
	if !isInteger(total) {
		return nil, errors.New("total must be an integer")
	}

	record := &model.AllocationRecord{
		Total:     total.Int(),
		Campaigns: []model.CampaignEntry{},
	}

	campaigns := value.Get("campaigns")
	if !campaigns.Exists() || campaigns.Type == gjson.Null {
		return record, nil
	}
	if !campaigns.IsArray() {
		return nil, errors.New("campaigns must be an array")
	}

	for i, campaign := range campaigns.Array() {
		if !campaign.IsObject() {
			return nil, fmt.Errorf("campaign %d: expected an object", i)
		}
		tokens := campaign.Get("tokens")
		if !isInteger(tokens) {
			return nil, fmt.Errorf("campaign %d: tokens must be an integer", i)
		}
		record.Campaigns = append(record.Campaigns, model.CampaignEntry{
			Name:   campaign.Get("name").String(),
			Tokens: tokens.Int(),
		})
	}

	return record, nil
}

// isInteger token counts are whole numbers, 1.5 is rejected rather than truncated
func isInteger(value gjson.Result) bool {
	return value.Type == gjson.Number && value.Num == math.Trunc(value.Num)
}
