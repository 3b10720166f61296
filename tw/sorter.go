package tw

import "slices"

// modifierSorter canonicalizes modifier order. Ordinary modifiers commute and
// are sorted; order-sensitive ones ("before", "*", arbitrary "[&>p]") stay put
// and split the list into independently sorted runs.
type modifierSorter struct {
	sensitive map[string]struct{}
}

func newModifierSorter(orderSensitive []string) modifierSorter {
	s := modifierSorter{sensitive: make(map[string]struct{}, len(orderSensitive))}
	for _, m := range orderSensitive {
		s.sensitive[m] = struct{}{}
	}
	return s
}

func (s modifierSorter) isSensitive(modifier string) bool {
	if len(modifier) > 0 && modifier[0] == '[' {
		return true
	}
	_, ok := s.sensitive[modifier]
	return ok
}

func (s modifierSorter) sort(modifiers []string) []string {
	if len(modifiers) <= 1 {
		return modifiers
	}
	sorted := make([]string, 0, len(modifiers))
	runStart := 0
	for _, m := range modifiers {
		if s.isSensitive(m) {
			slices.Sort(sorted[runStart:])
			sorted = append(sorted, m)
			runStart = len(sorted)
			continue
		}
		sorted = append(sorted, m)
	}
	slices.Sort(sorted[runStart:])
	return sorted
}
