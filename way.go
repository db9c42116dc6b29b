package waypolicy

import "slices"

type (
	// Way is one slot of a cache set.
	// The zero value is an empty way.
	Way struct {
		// Tag identifies the block held by the way.
		// Tags are handed out in insertion order,
		// starting at 0, and are only meaningful when Valid.
		Tag uint64
		// Valid is false until the way is first filled
		// and never becomes false again.
		Valid bool
	}
	// Policy is the contract shared by every replacement state.
	// Transitions return a new State and leave the receiver unchanged.
	Policy[State any] interface {
		// NumWays returns the fixed way count of the state.
		NumWays() int
		// Ways returns a copy of the ways.
		Ways() []Way
		// Way returns the way at index i.
		Way(i int) Way
		// WayToReplace predicts the victim of the next replacement
		// without changing state.
		WayToReplace() int
		// AccessWay records an access to way.
		// The way receives a new tag if forceReplace is set or if it is empty.
		AccessWay(way int, forceReplace bool) State
		// Reset returns an initial state with the same way count.
		Reset() State
	}
)

const (
	// MinWays is the lowest way count accepted by the constructors.
	MinWays = 2
	// MaxWays is the highest way count accepted by the constructors.
	MaxWays = 32
)

var (
	_ Policy[Random]   = Random{}
	_ Policy[TrueLRU]  = TrueLRU{}
	_ Policy[TreePLRU] = TreePLRU{}
)

// Replace inserts a new block into the way predicted
// by [Policy.WayToReplace].
func Replace[State Policy[State]](state State) State {
	return state.AccessWay(state.WayToReplace(), true)
}

func checkWays(nWays int) error {
	if nWays < MinWays || nWays > MaxWays {
		return wayCountError(nWays)
	}
	return nil
}

func checkWay(way, nWays int) {
	if way < 0 || way >= nWays {
		panic(wayIndexError(way, nWays))
	}
}

// cache holds the ways and tag counter common to every policy.
type cache struct {
	ways    []Way
	nextTag uint64
}

func newCache(nWays int) cache {
	return cache{ways: make([]Way, nWays)}
}

// fill returns a copy of c with way holding the next tag.
func (c cache) fill(way int) cache {
	ways := slices.Clone(c.ways)
	ways[way] = Way{Tag: c.nextTag, Valid: true}
	return cache{
		ways:    ways,
		nextTag: c.nextTag + 1,
	}
}

func (c cache) equal(other cache) bool {
	return c.nextTag == other.nextTag &&
		slices.Equal(c.ways, other.ways)
}

// NumWays returns the number of ways in the set.
func (c cache) NumWays() int { return len(c.ways) }

// Ways returns a copy of the ways in the set.
func (c cache) Ways() []Way { return slices.Clone(c.ways) }

// Way returns the way at index i.
func (c cache) Way(i int) Way {
	checkWay(i, len(c.ways))
	return c.ways[i]
}

// NextTag returns the tag the next filled way will receive.
func (c cache) NextTag() uint64 { return c.nextTag }
