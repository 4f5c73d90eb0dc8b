package eligibility_service

import "github.com/BubsLB/airdropbreakdown/model"

// ResultKind outcome of one eligibility check
type ResultKind string

const (
	KindEligible     ResultKind = "eligible"
	KindNotEligible  ResultKind = "not_eligible"
	KindInvalidInput ResultKind = "invalid_input"
	KindDataNotReady ResultKind = "data_not_ready"
	KindLoadFailed   ResultKind = "load_failed"
)

const (
	MessageEmptyInput   = "Please enter a wallet address."
	MessageDataNotReady = "Data is still loading, please wait a moment and try again."
	MessageLoadFailed   = "Could not load eligibility data. Please try again later."
	MessageNotEligible  = "This wallet is not eligible for the airdrop."
	MessageEligible     = "This wallet is eligible for the airdrop."
)

// Result of resolving one address
type Result struct {
	Kind      ResultKind
	Message   string
	Address   string // trimmed input
	Scheme    string // empty when no scheme matched
	AccountID string // dataset key the address resolved to, empty when none
	Record    *model.AllocationRecord
}

// IsLookup the result came from a dataset lookup rather than a rejected request
func (r Result) IsLookup() bool {
	return r.Kind == KindEligible || r.Kind == KindNotEligible
}
