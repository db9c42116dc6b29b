package waypolicy

import (
	"slices"
	"strings"

	"github.com/djdv/go-waypolicy/internal/tree"
)

// TreePLRU approximates LRU with one bit per node of a binary tree
// laid over the ways. A node's bit is set when its right half holds
// the most recent access, steering the next victim search left.
//
// When the way count is not a power of two the tree is truncated:
// subtrees with an empty right half have no node, and the victim
// search passes through them to the left.
// Constructed by [NewTreePLRU].
type TreePLRU struct {
	cache
	geometry tree.Geometry
	bits     []bool
}

// NewTreePLRU creates a [TreePLRU] state with nWays empty ways
// and every node marking its right half as stale.
func NewTreePLRU(nWays int) (TreePLRU, error) {
	if err := checkWays(nWays); err != nil {
		return TreePLRU{}, err
	}
	return newTreePLRU(nWays), nil
}

func newTreePLRU(nWays int) TreePLRU {
	geometry := tree.New(nWays)
	if debugging {
		assert(geometry.Size() == nWays-1, "tree node count does not match way count")
	}
	return TreePLRU{
		cache:    newCache(nWays),
		geometry: geometry,
		bits:     make([]bool, geometry.Size()),
	}
}

// WayToReplace descends from the root, following the
// stale half of each node it meets.
func (p TreePLRU) WayToReplace() int {
	var way int
	for level := p.geometry.Levels() - 1; level >= 0; level-- {
		next := way << 1
		if p.geometry.Exists(level, way) &&
			!p.bits[p.geometry.Index(level, way)] {
			next |= 1
		}
		way = next
	}
	if debugging {
		assert(way < len(p.ways), "tree descent left the set")
	}
	return way
}

// AccessWay returns the state with every node above way
// pointing at the half that contains it.
// The way receives the next tag if it is empty or forceReplace is set.
func (p TreePLRU) AccessWay(way int, forceReplace bool) TreePLRU {
	checkWay(way, len(p.ways))
	next := TreePLRU{
		cache:    p.cache,
		geometry: p.geometry,
		bits:     slices.Clone(p.bits),
	}
	for level := p.geometry.Levels() - 1; level >= 0; level-- {
		index := way >> (level + 1)
		if p.geometry.Exists(level, index) {
			next.bits[p.geometry.Index(level, index)] = (way>>level)&1 != 0
		}
	}
	if forceReplace || !p.ways[way].Valid {
		next.cache = p.fill(way)
	}
	return next
}

// Levels returns the number of node levels; level 0 is
// adjacent to the ways and the root is at Levels()-1.
func (p TreePLRU) Levels() int { return p.geometry.Levels() }

// LevelLen returns the number of nodes present at level.
func (p TreePLRU) LevelLen(level int) int { return p.geometry.Len(level) }

// Node returns the bit of the node at (level, index)
// and whether that node exists.
func (p TreePLRU) Node(level, index int) (bit, exists bool) {
	if !p.geometry.Exists(level, index) {
		return false, false
	}
	return p.bits[p.geometry.Index(level, index)], true
}

// Bits returns a copy of the node bits, lowest level first.
func (p TreePLRU) Bits() []bool { return slices.Clone(p.bits) }

// Reset returns an initial state with the same way count.
func (p TreePLRU) Reset() TreePLRU {
	return newTreePLRU(len(p.ways))
}

// Equal reports whether both states are identical.
func (p TreePLRU) Equal(other TreePLRU) bool {
	return p.geometry.Equal(other.geometry) &&
		slices.Equal(p.bits, other.bits) &&
		p.cache.equal(other.cache)
}

// String draws each level from the root down,
// one arrow per node pointing at its recently used half.
func (p TreePLRU) String() string {
	var b strings.Builder
	for level := p.geometry.Levels() - 1; level >= 0; level-- {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('L')
		b.WriteByte(byte('0' + level))
		b.WriteByte(':')
		for index := range p.geometry.Len(level) {
			b.WriteByte(' ')
			if p.bits[p.geometry.Index(level, index)] {
				b.WriteString("-->")
			} else {
				b.WriteString("<--")
			}
		}
	}
	return b.String()
}
