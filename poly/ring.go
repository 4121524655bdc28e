package poly

// ring is the cyclic sequence of vertex ids still part of the unclipped
// polygon. It is stored arena-style: prev and next are indexed by id, so
// neighbor lookup and removal are O(1) and ids are never renumbered. Only
// the two endpoints of a removal ever have their links rewritten.
type ring struct {
	prev, next []int
	present    []bool
	count      int
}

func newRing(n int) *ring {
	r := &ring{
		prev:    make([]int, n),
		next:    make([]int, n),
		present: make([]bool, n),
		count:   n,
	}
	for i := 0; i < n; i++ {
		r.prev[i] = (i - 1 + n) % n
		r.next[i] = (i + 1) % n
		r.present[i] = true
	}
	return r
}

func (r *ring) Has(v int) bool {
	return v >= 0 && v < len(r.present) && r.present[v]
}

// Neighbors returns the ids cyclically before and after v. The caller must
// ensure v is in the ring.
func (r *ring) Neighbors(v int) (prev, next int) {
	return r.prev[v], r.next[v]
}

func (r *ring) Remove(v int) {
	p, n := r.prev[v], r.next[v]
	r.next[p] = n
	r.prev[n] = p
	r.present[v] = false
	r.count--
}

func (r *ring) Len() int {
	return r.count
}

// Walk returns the surviving ids in ring order, starting from the smallest
// surviving id. Used for debugging and for verifying tracker state; the
// algorithm itself never needs a full traversal.
func (r *ring) Walk() []int {
	start := -1
	for i, ok := range r.present {
		if ok {
			start = i
			break
		}
	}
	if start == -1 {
		return nil
	}
	ids := make([]int, 0, r.count)
	for v := start; ; v = r.next[v] {
		ids = append(ids, v)
		if r.next[v] == start {
			break
		}
	}
	return ids
}
