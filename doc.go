// Package waypolicy models the way replacement policies of a
// set-associative hardware cache: random, true LRU and tree pseudo-LRU.
//
// Each policy is an immutable state value over a fixed number of ways.
// Transitions never modify their receiver; they return a new state,
// so any earlier state stays valid for replay or comparison.
// Concurrent readers may share states freely.
//
// Glossary and invariants:
//
//   - Way
//
//     One slot of a cache set. Empty until first filled;
//     afterwards it always holds a tag.
//
//   - Tag
//
//     Sequence number of the block held by a way.
//     Handed out from a per-state counter that only increases.
//
//   - Victim
//
//     The way [Policy.WayToReplace] predicts for the next replacement.
//     Predicting is read-only; a replacement is committed with
//     [Policy.AccessWay] and forceReplace set, or with [Replace].
//
// Policies:
//
//   - [Random]
//
//     A 16-bit Fibonacci LFSR (taps 16, 14, 13, 11; period 65535) selects the victim.
//     The low bits are used directly for power-of-two way counts.
//     Otherwise the low log2(n)+3 bits are partitioned into n buckets
//     that each receive floor(d/n) or ceil(d/n) of the d possible values.
//     Only replacements advance the register; hits leave the state as is.
//
//   - [TrueLRU]
//
//     One bit per pair of ways records which of the two is more recent.
//     The relation is a strict total order after every transition.
//     The victim is the lowest way that is not more recent than any higher way,
//     which is always the least recently used one.
//
//   - [TreePLRU]
//
//     A binary tree over the ways holds one bit per node,
//     n-1 bits in total. Accessing a way points every node above it
//     at the half that contains it; the victim search follows
//     the other half at each node from the root down.
//     For way counts that are not a power of two, nodes whose
//     right half would be empty are omitted.
//
// Way counts must lie within [MinWays, MaxWays].
// Way indices outside the set are a programming error and cause a panic.
//
// Building with the waypolicy_debug tag enables internal consistency
// assertions after transitions.
package waypolicy
