package tracker

import "sort"

// Strategy selects the metric the networks are ordered by.
type Strategy int

const (
	ByGps Strategy = iota
	ByTps
	ByDps
)

// String returns the short name of the strategy.
func (s Strategy) String() string {
	switch s {
	case ByGps:
		return "gps"
	case ByTps:
		return "tps"
	case ByDps:
		return "dps"
	default:
		return "gps"
	}
}

// Label returns a human-readable label for the strategy.
func (s Strategy) Label() string {
	switch s {
	case ByTps:
		return "txs per second"
	case ByDps:
		return "kb per second"
	default:
		return "gas per second"
	}
}

// ParseStrategy maps a short name ("gps", "tps", "dps") to a Strategy.
func ParseStrategy(name string) (Strategy, bool) {
	switch name {
	case "gps":
		return ByGps, true
	case "tps":
		return ByTps, true
	case "dps":
		return ByDps, true
	default:
		return ByGps, false
	}
}

// Value returns the sort key of n. Networks without metrics are 0.
func (s Strategy) Value(n Network) float64 {
	if n.Metrics == nil {
		return 0
	}
	switch s {
	case ByTps:
		return n.Metrics.TPS
	case ByDps:
		return n.Metrics.DPS
	default:
		return n.Metrics.GPS
	}
}

// SortNetworks sorts networks in descending order of the strategy's metric.
// The sort is stable: networks with equal values keep their relative order.
func SortNetworks(networks []Network, s Strategy) {
	sort.SliceStable(networks, func(i, j int) bool {
		return s.Value(networks[i]) > s.Value(networks[j])
	})
}
