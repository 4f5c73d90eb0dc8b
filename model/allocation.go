package model

// CampaignEntry one campaign's contribution to an allocation
type CampaignEntry struct {
	Name   string `json:"name"`
	Tokens int64  `json:"tokens"`
}

// AllocationRecord eligibility result for one canonical account identifier.
// Total is expected to equal the sum of campaign tokens but this is trusted data and never checked.
type AllocationRecord struct {
	Total     int64           `json:"total"`
	Campaigns []CampaignEntry `json:"campaigns"`
}

// IsEligible a record counts only with a positive total
func (r *AllocationRecord) IsEligible() bool {
	return r != nil && r.Total > 0
}
