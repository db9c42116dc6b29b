// Package tree describes the shape of a (possibly truncated) binary tree
// laid over the ways of a cache set, as used by tree pseudo-LRU.
//
// Levels are counted from the leaves: level 0 nodes choose between
// two adjacent ways, level 1 nodes between two level 0 subtrees, and so on.
// When the way count is not a power of two, subtrees whose right half
// would be empty have no node; a descent through such a position
// always takes the left half.
//
// Nodes are stored level by level, lowest level first,
// in a flat array of way count - 1 bits.
package tree

import "math/bits"

// Geometry is the immutable node layout for a given way count.
// Constructed by [New].
type Geometry struct {
	lengths, offsets []int
	ways             int
}

// New derives the geometry of a tree over ways leaves.
// ways must be at least 2.
func New(ways int) Geometry {
	var (
		levels  = bits.Len(uint(ways - 1)) // ceil(log2(ways))
		lengths = make([]int, levels)
		offsets = make([]int, levels)
		offset  int
	)
	for level := range lengths {
		length := (ways + 1<<level - 1) >> (level + 1)
		lengths[level] = length
		offsets[level] = offset
		offset += length
	}
	return Geometry{
		lengths: lengths,
		offsets: offsets,
		ways:    ways,
	}
}

// Levels returns the number of node levels.
func (g Geometry) Levels() int { return len(g.lengths) }

// Len returns the number of nodes at level.
func (g Geometry) Len(level int) int { return g.lengths[level] }

// Offset returns the flat index of the first node at level.
func (g Geometry) Offset(level int) int { return g.offsets[level] }

// Size returns the total number of nodes.
func (g Geometry) Size() int {
	last := len(g.lengths) - 1
	if last < 0 {
		return 0
	}
	return g.offsets[last] + g.lengths[last]
}

// Exists reports whether a node is present at (level, index).
func (g Geometry) Exists(level, index int) bool {
	return index >= 0 && index < g.lengths[level]
}

// Index returns the flat bit index of the node at (level, index).
// The node must exist.
func (g Geometry) Index(level, index int) int {
	return g.offsets[level] + index
}

// Equal reports whether both geometries describe the same tree.
func (g Geometry) Equal(other Geometry) bool {
	return g.ways == other.ways
}
