package tracker

import (
	"strconv"
	"strings"
)

// Parent chain names resolved from settlement chain ids.
const (
	ChainEthereum = "ethereum"
	ChainBase     = "base"
	ChainArbitrum = "arbitrum"
	ChainUnknown  = "unknown"
)

// Network is a monitored chain and its latest metrics.
type Network struct {
	// Name is the network identifier. It matches the SSE event type.
	Name string `json:"name" yaml:"name"`

	// Label is the human-readable name shown in the table.
	Label string `json:"label" yaml:"label"`

	// ParentChain is the settlement layer, resolved once from its chain id.
	ParentChain string `json:"parentChain" yaml:"parent_chain"`

	// DA is the data availability layer.
	DA string `json:"da" yaml:"da"`

	// Stack is the rollup stack the network runs on.
	Stack string `json:"stack" yaml:"stack"`

	// Metrics is nil until the first event for this network arrives.
	Metrics *Metrics `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// Metrics is one live measurement for a network.
// A Metrics value is never modified after it is attached to a Network;
// updates swap in a new value.
type Metrics struct {
	BlockNumber uint64  `json:"blockNumber" yaml:"block_number"`
	TPS         float64 `json:"tps" yaml:"tps"`
	GPS         float64 `json:"gps" yaml:"gps"`
	DPS         float64 `json:"dps" yaml:"dps"`
}

// ParentChainName returns the chain name for a settlement chain id.
func ParentChainName(chainID uint64) string {
	switch chainID {
	case 1:
		return ChainEthereum
	case 8453:
		return ChainBase
	case 42161:
		return ChainArbitrum
	default:
		return ChainUnknown
	}
}

// ParseChainID parses a decimal chain id. Anything unparsable is 0,
// which resolves to ChainUnknown.
func ParseChainID(raw string) uint64 {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
