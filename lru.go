package waypolicy

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// TrueLRU keeps a full recency order over its ways
// and always evicts the least recently used one.
//
// The order is stored as a triangular relation:
// for each pair i < j a single bit records whether
// i is more recent than j. Rows are packed into one slice,
// row i holding the nWays-i-1 comparisons against the ways after i.
// Constructed by [NewTrueLRU].
type TrueLRU struct {
	cache
	recency []bool
}

// NewTrueLRU creates a [TrueLRU] state with nWays empty ways.
// With no recorded accesses, higher indices count as more recent.
func NewTrueLRU(nWays int) (TrueLRU, error) {
	if err := checkWays(nWays); err != nil {
		return TrueLRU{}, err
	}
	return newTrueLRU(nWays), nil
}

func newTrueLRU(nWays int) TrueLRU {
	return TrueLRU{
		cache:   newCache(nWays),
		recency: make([]bool, nWays*(nWays-1)/2),
	}
}

// rowOffset returns the flat index of row i.
func rowOffset(i, nWays int) int {
	return i * (2*nWays - i - 1) / 2
}

// row returns the comparisons of way i against ways i+1 and up.
func (l TrueLRU) row(i int) []bool {
	var (
		nWays = len(l.ways)
		start = rowOffset(i, nWays)
	)
	return l.recency[start : start+nWays-i-1]
}

// WayToReplace returns the first way that is not
// more recent than any way after it.
func (l TrueLRU) WayToReplace() int {
	last := len(l.ways) - 1
	for i := range last {
		if !slices.Contains(l.row(i), true) {
			return i
		}
	}
	return last
}

// AccessWay returns the state with way made the most recently used.
// The way receives the next tag if it is empty or forceReplace is set.
func (l TrueLRU) AccessWay(way int, forceReplace bool) TrueLRU {
	nWays := len(l.ways)
	checkWay(way, nWays)
	next := TrueLRU{
		cache:   l.cache,
		recency: slices.Clone(l.recency),
	}
	for j := range way {
		next.recency[rowOffset(j, nWays)+way-j-1] = false
	}
	for k := range next.row(way) {
		next.recency[rowOffset(way, nWays)+k] = true
	}
	if forceReplace || !l.ways[way].Valid {
		next.cache = l.fill(way)
	}
	if debugging {
		assert(next.isTotalOrder(), "recency relation is not a strict total order")
	}
	return next
}

// MoreRecent reports whether way a is ordered
// more recently used than way b.
func (l TrueLRU) MoreRecent(a, b int) bool {
	nWays := len(l.ways)
	checkWay(a, nWays)
	checkWay(b, nWays)
	switch {
	case a < b:
		return l.recency[rowOffset(a, nWays)+b-a-1]
	case a > b:
		return !l.recency[rowOffset(b, nWays)+a-b-1]
	default:
		return false
	}
}

// Order returns the ways from most to least recently used.
func (l TrueLRU) Order() []int {
	var (
		ranks = l.ranks()
		order = make([]int, len(ranks))
	)
	for way := range order {
		order[way] = way
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(ranks[b], ranks[a])
	})
	return order
}

// ranks counts, for each way, how many ways it is more recent than.
func (l TrueLRU) ranks() []int {
	ranks := make([]int, len(l.ways))
	for i := range len(l.ways) - 1 {
		for k, newer := range l.row(i) {
			if newer {
				ranks[i]++
			} else {
				ranks[i+k+1]++
			}
		}
	}
	return ranks
}

// isTotalOrder holds when every way has a distinct rank;
// a complete antisymmetric relation is transitive only then.
func (l TrueLRU) isTotalOrder() bool {
	seen := make([]bool, len(l.ways))
	for _, rank := range l.ranks() {
		if seen[rank] {
			return false
		}
		seen[rank] = true
	}
	return true
}

// Reset returns an initial state with the same way count.
func (l TrueLRU) Reset() TrueLRU {
	return newTrueLRU(len(l.ways))
}

// Equal reports whether both states are identical.
func (l TrueLRU) Equal(other TrueLRU) bool {
	return slices.Equal(l.recency, other.recency) &&
		l.cache.equal(other.cache)
}

// String formats the recency order, most recent first,
// followed by the next victim.
func (l TrueLRU) String() string {
	var b strings.Builder
	b.WriteString("order=")
	for i, way := range l.Order() {
		if i > 0 {
			b.WriteByte('>')
		}
		fmt.Fprint(&b, way)
	}
	fmt.Fprintf(&b, " next=%d", l.WayToReplace())
	return b.String()
}
