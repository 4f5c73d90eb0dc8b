package eligibility_service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/BubsLB/airdropbreakdown/common"
	"github.com/BubsLB/airdropbreakdown/model"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// Resolution how a matched address reaches the airdrop dataset
type Resolution string

const (
	ResolutionDirect Resolution = "direct" // Airdrop[lower(address)]
	ResolutionAlias  Resolution = "alias"  // Airdrop[lower(Aliases[lower(address)])]
)

// Scheme names
const (
	SchemeEvm      = "evm"
	SchemeAlgorand = "algorand"
	SchemeBitcoin  = "bitcoin"
)

var (
	evmAddressPattern      = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	algorandAddressPattern = regexp.MustCompile(`^[A-Z2-7]{58}$`)
)

// Scheme one accepted address format and how it is resolved
type Scheme struct {
	Name        string
	Description string
	Resolution  Resolution
	Match       func(address string) bool
}

// IsEvmAddress 0x followed by 40 hex characters, any case
func IsEvmAddress(address string) bool {
	return evmAddressPattern.MatchString(address)
}

// IsAlgorandAddress 58 characters of A-Z and 2-7, any case
func IsAlgorandAddress(address string) bool {
	return algorandAddressPattern.MatchString(strings.ToUpper(address))
}

// EvmScheme EVM-style addresses with the given resolution
func EvmScheme(resolution Resolution) Scheme {
	return Scheme{
		Name:        SchemeEvm,
		Description: "EVM address (0x followed by 40 hex characters)",
		Resolution:  resolution,
		Match:       IsEvmAddress,
	}
}

// AlgorandScheme Algorand-style addresses, looked up directly
func AlgorandScheme() Scheme {
	return Scheme{
		Name:        SchemeAlgorand,
		Description: "Algorand address (58 characters, A-Z and 2-7)",
		Resolution:  ResolutionDirect,
		Match:       IsAlgorandAddress,
	}
}

// BitcoinScheme standard bitcoin addresses on net, looked up directly.
// Unlike the other schemes the address is fully decoded, so a bad checksum is rejected.
// Opt-in only through checker.extra_schemes.
func BitcoinScheme(net *chaincfg.Params) Scheme {
	return Scheme{
		Name:        SchemeBitcoin,
		Description: fmt.Sprintf("Bitcoin address (%s, checksum verified on decode)", net.Name),
		Resolution:  ResolutionDirect,
		Match: func(address string) bool {
			class, err := common.CheckAddressClass(net, address)
			return err == nil && class != txscript.NonStandardTy
		},
	}
}

// Policy ordered list of schemes, first match wins
type Policy struct {
	Schemes []Scheme
}

// PolicyForLayout preset for a dataset layout plus any extra schemes by name.
// single: evm/direct. alias: evm/alias, algorand/direct.
func PolicyForLayout(layout model.Layout, extra []string, net *chaincfg.Params) (*Policy, error) {
	var schemes []Scheme
	switch layout {
	case model.LayoutSingle:
		schemes = []Scheme{EvmScheme(ResolutionDirect)}
	case model.LayoutAlias:
		schemes = []Scheme{EvmScheme(ResolutionAlias), AlgorandScheme()}
	default:
		return nil, fmt.Errorf("unknown dataset layout: %s", layout)
	}

	policy := &Policy{Schemes: schemes}
	for _, name := range extra {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || policy.Has(name) {
			continue
		}
		switch name {
		case SchemeAlgorand:
			policy.Schemes = append(policy.Schemes, AlgorandScheme())
		case SchemeBitcoin:
			if net == nil {
				net = &chaincfg.MainNetParams
			}
			policy.Schemes = append(policy.Schemes, BitcoinScheme(net))
		default:
			return nil, fmt.Errorf("unknown address scheme: %s", name)
		}
	}
	return policy, nil
}

// Has whether a scheme with this name is enabled
func (p *Policy) Has(name string) bool {
	for _, scheme := range p.Schemes {
		if scheme.Name == name {
			return true
		}
	}
	return false
}

// Match first scheme accepting the address
func (p *Policy) Match(address string) (Scheme, bool) {
	for _, scheme := range p.Schemes {
		if scheme.Match(address) {
			return scheme, true
		}
	}
	return Scheme{}, false
}

// Accepting names of every scheme that accepts the address
func (p *Policy) Accepting(address string) []string {
	var names []string
	for _, scheme := range p.Schemes {
		if scheme.Match(address) {
			names = append(names, scheme.Name)
		}
	}
	return names
}

// InvalidMessage user-facing message naming every accepted format
func (p *Policy) InvalidMessage() string {
	formats := make([]string, 0, len(p.Schemes))
	for _, scheme := range p.Schemes {
		formats = append(formats, scheme.Description)
	}
	return fmt.Sprintf("Please enter a VALID wallet address. Accepted formats: %s.", strings.Join(formats, " or "))
}
