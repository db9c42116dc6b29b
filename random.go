package waypolicy

import (
	"fmt"
	"strings"

	"github.com/djdv/go-waypolicy/internal/lfsr"
)

// Random selects victims pseudo-randomly from a 16-bit LFSR.
// Hits do not change its state; only replacements advance the register.
// Constructed by [NewRandom].
type Random struct {
	cache
	lfsr uint16
}

// NewRandom creates a [Random] state with nWays empty ways
// and the register at its seed value.
func NewRandom(nWays int) (Random, error) {
	if err := checkWays(nWays); err != nil {
		return Random{}, err
	}
	return Random{
		cache: newCache(nWays),
		lfsr:  lfsr.Seed,
	}, nil
}

// LFSR returns the current register value.
func (r Random) LFSR() uint16 { return r.lfsr }

// WayToReplace returns the way selected by the current register value.
func (r Random) WayToReplace() int {
	return lfsr.Extract(len(r.ways), r.lfsr)
}

// AccessWay returns the state after an access to way.
// Unless way is empty or forceReplace is set, the state is returned as is.
// Otherwise the register advances and way receives the next tag.
func (r Random) AccessWay(way int, forceReplace bool) Random {
	checkWay(way, len(r.ways))
	if !forceReplace && r.ways[way].Valid {
		return r
	}
	next := Random{
		cache: r.fill(way),
		lfsr:  lfsr.Next(r.lfsr),
	}
	if debugging {
		assert(next.lfsr != 0, "register reached the zero state")
	}
	return next
}

// Reset returns an initial state with the same way count.
func (r Random) Reset() Random {
	return Random{
		cache: newCache(len(r.ways)),
		lfsr:  lfsr.Seed,
	}
}

// Equal reports whether both states are identical.
func (r Random) Equal(other Random) bool {
	return r.lfsr == other.lfsr && r.cache.equal(other.cache)
}

// String formats the register in binary, grouped by nibble,
// followed by the next victim.
func (r Random) String() string {
	var (
		digits = fmt.Sprintf("%016b", r.lfsr)
		b      strings.Builder
	)
	for i := 0; i < len(digits); i += 4 {
		if i > 0 {
			b.WriteByte('_')
		}
		b.WriteString(digits[i : i+4])
	}
	fmt.Fprintf(&b, " next=%d", r.WayToReplace())
	return b.String()
}
