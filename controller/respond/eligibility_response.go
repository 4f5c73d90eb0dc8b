package respond

import (
	"github.com/BubsLB/airdropbreakdown/common"
	"github.com/BubsLB/airdropbreakdown/service/dataset_service"
	"github.com/BubsLB/airdropbreakdown/service/eligibility_service"
)

// CampaignResponse one line of the allocation breakdown
type CampaignResponse struct {
	Name   string `json:"name" example:"Alpha"`
	Tokens int64  `json:"tokens" example:"500"`
}

// EligibilityResponse eligibility check result
type EligibilityResponse struct {
	Status         string             `json:"status" example:"eligible"`
	Eligible       bool               `json:"eligible" example:"true"`
	Message        string             `json:"message" example:"This wallet is eligible for the airdrop."`
	Address        string             `json:"address" example:"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"`
	DisplayAddress string             `json:"display_address,omitempty" example:"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"`
	ShortAddress   string             `json:"short_address,omitempty" example:"0x5aA...eAed"`
	Scheme         string             `json:"scheme,omitempty" example:"evm"`
	Total          int64              `json:"total" example:"500"`
	Campaigns      []CampaignResponse `json:"campaigns"`
}

// SchemeResponse accepted address format
type SchemeResponse struct {
	Name        string `json:"name" example:"evm"`
	Description string `json:"description" example:"EVM address (0x followed by 40 hex characters)"`
	Resolution  string `json:"resolution" example:"direct"`
}

// DatasetStatusResponse dataset loader status
type DatasetStatusResponse struct {
	State    string `json:"state" example:"ready"`
	Source   string `json:"source" example:"storage:single"`
	Layout   string `json:"layout,omitempty" example:"single"`
	Records  int    `json:"records" example:"1024"`
	Aliases  int    `json:"aliases" example:"0"`
	LoadedAt int64  `json:"loaded_at,omitempty" example:"1699999999"`
}

// ToEligibilityResponse convert a check result
func ToEligibilityResponse(result eligibility_service.Result) EligibilityResponse {
	resp := EligibilityResponse{
		Status:    string(result.Kind),
		Eligible:  result.Kind == eligibility_service.KindEligible,
		Message:   result.Message,
		Address:   result.Address,
		Scheme:    result.Scheme,
		Campaigns: []CampaignResponse{},
	}

	// Only recognised addresses get a display form
	if result.Scheme != "" {
		display := result.Address
		if result.Scheme == eligibility_service.SchemeEvm {
			display = common.ToChecksumAddress(result.Address)
		}
		resp.DisplayAddress = display
		resp.ShortAddress = common.ShortAddress(display)
	}

	if result.Record != nil {
		resp.Total = result.Record.Total
		for _, campaign := range result.Record.Campaigns {
			resp.Campaigns = append(resp.Campaigns, CampaignResponse{
				Name:   campaign.Name,
				Tokens: campaign.Tokens,
			})
		}
	}
	return resp
}

// ToSchemeList convert enabled schemes
func ToSchemeList(schemes []eligibility_service.Scheme) []SchemeResponse {
	list := make([]SchemeResponse, 0, len(schemes))
	for _, scheme := range schemes {
		list = append(list, SchemeResponse{
			Name:        scheme.Name,
			Description: scheme.Description,
			Resolution:  string(scheme.Resolution),
		})
	}
	return list
}

// ToDatasetStatusResponse convert loader status
func ToDatasetStatusResponse(status dataset_service.LoaderStatus) DatasetStatusResponse {
	resp := DatasetStatusResponse{
		State:   string(status.State),
		Source:  status.Source,
		Layout:  string(status.Layout),
		Records: status.Records,
		Aliases: status.Aliases,
	}
	if !status.LoadedAt.IsZero() {
		resp.LoadedAt = status.LoadedAt.Unix()
	}
	return resp
}
