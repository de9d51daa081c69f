package frame

import "slices"

// Names is a sorted set of member names. The zero value is an empty set.
// Keeping it sorted makes snapshots comparable with reflect.DeepEqual and
// serialization deterministic.
type Names []string

// NewNames builds a set from the given names, dropping duplicates.
func NewNames(names ...string) Names {
	var n Names
	for _, name := range names {
		n.Add(name)
	}
	return n
}

// Has reports whether name is in the set.
func (n Names) Has(name string) bool {
	_, ok := slices.BinarySearch(n, name)
	return ok
}

// Add inserts name and reports whether the set changed.
func (n *Names) Add(name string) bool {
	i, ok := slices.BinarySearch(*n, name)
	if ok {
		return false
	}
	*n = slices.Insert(*n, i, name)
	return true
}

// Remove deletes name and reports whether the set changed.
func (n *Names) Remove(name string) bool {
	i, ok := slices.BinarySearch(*n, name)
	if !ok {
		return false
	}
	*n = slices.Delete(*n, i, i+1)
	if len(*n) == 0 {
		*n = nil
	}
	return true
}

// Replace swaps name from for name to, keeping the set sorted.
func (n *Names) Replace(from, to string) bool {
	if !n.Remove(from) {
		return false
	}
	n.Add(to)
	return true
}

// Len returns the number of names.
func (n Names) Len() int { return len(n) }

// Clone returns an independent copy. A nil or empty set clones to nil.
func (n Names) Clone() Names {
	if len(n) == 0 {
		return nil
	}
	return slices.Clone(n)
}
