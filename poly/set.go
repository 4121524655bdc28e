package poly

// idSet is a set of vertex ids with O(1) membership, insert and erase.
type idSet map[int]struct{}

func (s idSet) Has(v int) bool {
	_, ok := s[v]
	return ok
}

func (s idSet) Add(v int) {
	s[v] = struct{}{}
}

func (s idSet) Remove(v int) {
	delete(s, v)
}

func (s idSet) Len() int {
	return len(s)
}

// Min returns the smallest id in the set. Map iteration order is random,
// but the minimum is not, which is what makes ear selection deterministic.
func (s idSet) Min() (int, bool) {
	min, found := 0, false
	for v := range s {
		if !found || v < min {
			min, found = v, true
		}
	}
	return min, found
}
