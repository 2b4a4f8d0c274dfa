package selection

// Keys is an ordered set of selectable keys.
type Keys[K comparable] []K

// Known reports whether key is part of the set.
func (k Keys[K]) Known(key K) bool {
	for _, candidate := range k {
		if candidate == key {
			return true
		}
	}

	return false
}

// First returns the first key of the set, the deterministic default of a
// sticky controller.
func (k Keys[K]) First() (K, bool) {
	if len(k) == 0 {
		var zero K
		return zero, false
	}

	return k[0], true
}
