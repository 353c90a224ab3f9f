package domain

// ExclusionSet maps a token contract to the addresses deliberately
// omitted when scanning that token (burn addresses, locked supply).
// It is loaded once from configuration and never mutated afterwards.
type ExclusionSet map[string][]string

// NewExclusionSet normalizes all contracts and addresses in raw.
func NewExclusionSet(raw map[string][]string) ExclusionSet {
	set := make(ExclusionSet, len(raw))
	for token, addrs := range raw {
		normalized := make([]string, 0, len(addrs))
		for _, a := range addrs {
			normalized = append(normalized, NormalizeAddress(a))
		}
		set[NormalizeAddress(token)] = normalized
	}
	return set
}

// Apply returns addrs with the excluded addresses for token removed.
// Each excluded address removes at most one occurrence; the order of
// the remaining addresses is preserved. Scans of other tokens are
// unaffected because exclusions are keyed by token contract.
func (s ExclusionSet) Apply(token string, addrs []string) []string {
	excluded := s[NormalizeAddress(token)]
	if len(excluded) == 0 {
		return addrs
	}

	pending := make(map[string]int, len(excluded))
	for _, a := range excluded {
		pending[a]++
	}

	kept := make([]string, 0, len(addrs))
	for _, a := range addrs {
		if n := pending[a]; n > 0 {
			pending[a] = n - 1
			continue
		}
		kept = append(kept, a)
	}
	return kept
}
