package pushql

// Capability identifies an expression dialect a factory can compile and a
// planner can request.
type Capability string

const (
	// CapabilitySQL tags factories that compile SQL string expressions.
	CapabilitySQL Capability = "SQL"
)

// CapabilitySet is a set of dialect tags.
type CapabilitySet map[Capability]struct{}

// NewCapabilitySet builds a set from the given tags.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	set := make(CapabilitySet, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}

// Has reports whether the set contains the given tag.
func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}
