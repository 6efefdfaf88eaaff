package tracker

// Registry is the ordered collection of monitored networks.
// The set of names is fixed when the registry is created.
type Registry struct {
	networks []Network
	observer ParseObserver
}

// NewRegistry creates a registry holding a copy of networks, in the given
// order. observer may be nil.
func NewRegistry(networks []Network, observer ParseObserver) *Registry {
	owned := make([]Network, len(networks))
	copy(owned, networks)
	return &Registry{
		networks: owned,
		observer: observer,
	}
}

// Len returns the number of networks.
func (r *Registry) Len() int {
	return len(r.networks)
}

// ApplyUpdate parses raw and replaces the Metrics of the first network
// named id. Unknown names are dropped. Returns true if a network was updated.
//
// The lookup is a linear scan; the monitored set is small.
func (r *Registry) ApplyUpdate(id, raw string) bool {
	for i := range r.networks {
		if r.networks[i].Name != id {
			continue
		}
		m := ParseMetrics(id, raw, r.observer)
		r.networks[i].Metrics = &m
		return true
	}
	return false
}

// Sort reorders the networks for strategy s.
func (r *Registry) Sort(s Strategy) {
	SortNetworks(r.networks, s)
}

// Names returns the network names in current order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.networks))
	for i, n := range r.networks {
		names[i] = n.Name
	}
	return names
}

// Networks returns a copy of the networks in current order.
// Metrics pointers are shared; they are never written through.
func (r *Registry) Networks() []Network {
	out := make([]Network, len(r.networks))
	copy(out, r.networks)
	return out
}
