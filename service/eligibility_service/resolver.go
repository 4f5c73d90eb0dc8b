package eligibility_service

import (
	"errors"
	"strings"

	"github.com/BubsLB/airdropbreakdown/model"
	"github.com/BubsLB/airdropbreakdown/service/dataset_service"
)

// SnapshotProvider read-only access to the loaded datasets
type SnapshotProvider interface {
	Snapshot() (*model.Snapshot, error)
}

// Resolver validates addresses and looks them up in the current snapshot.
// It performs no I/O and holds no state of its own.
type Resolver struct {
	policy   *Policy
	provider SnapshotProvider
}

// NewResolver create resolver
func NewResolver(policy *Policy, provider SnapshotProvider) *Resolver {
	return &Resolver{
		policy:   policy,
		provider: provider,
	}
}

// Policy enabled address schemes
func (r *Resolver) Policy() *Policy {
	return r.policy
}

// Resolve check order: empty, format, data readiness, lookup
func (r *Resolver) Resolve(raw string) Result {
	address := strings.TrimSpace(raw)
	if address == "" {
		return Result{Kind: KindInvalidInput, Message: MessageEmptyInput}
	}

	scheme, ok := r.policy.Match(address)
	if !ok {
		return Result{Kind: KindInvalidInput, Message: r.policy.InvalidMessage(), Address: address}
	}

	snapshot, err := r.provider.Snapshot()
	if err != nil || snapshot == nil {
		if errors.Is(err, dataset_service.ErrLoadFailed) {
			return Result{Kind: KindLoadFailed, Message: MessageLoadFailed, Address: address, Scheme: scheme.Name}
		}
		return Result{Kind: KindDataNotReady, Message: MessageDataNotReady, Address: address, Scheme: scheme.Name}
	}

	result := Result{
		Kind:    KindNotEligible,
		Message: MessageNotEligible,
		Address: address,
		Scheme:  scheme.Name,
	}

	accountID := strings.ToLower(address)
	if scheme.Resolution == ResolutionAlias {
		// An EVM address without an alias is not eligible rather than invalid
		alias, ok := snapshot.Aliases.Lookup(address)
		if !ok {
			return result
		}
		accountID = strings.ToLower(alias)
	}
	result.AccountID = accountID

	record, ok := snapshot.Airdrop.Lookup(accountID)
	if !ok || !record.IsEligible() {
		return result
	}

	result.Kind = KindEligible
	result.Message = MessageEligible
	result.Record = record
	return result
}
