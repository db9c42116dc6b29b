// Package lfsr implements the 16-bit Fibonacci linear-feedback shift register
// used for random way replacement, and the partition function that maps its
// output onto a number of ways that is not a power of two.
package lfsr

// Seed is the initial register value.
const Seed uint16 = 1

// Period is the number of steps after which [Next] revisits a value.
// Every nonzero 16-bit value is visited exactly once per period.
const Period = 1<<16 - 1

// Next advances the register by one step.
// The feedback is the XOR of bits 0, 2, 3 and 5 (taps 16, 14, 13, 11),
// shifted in at bit 15.
// Zero maps to zero, so r must not be zero.
func Next(r uint16) uint16 {
	feedback := (r ^ r>>2 ^ r>>3 ^ r>>5) & 1
	return feedback<<15 | r>>1
}

// Extract selects an index in [0, n) from the register value r.
// Powers of two use the low bits of r directly.
// Otherwise the low bits of r selected by [Mask] are
// partitioned into n nearly equal buckets.
func Extract(n int, r uint16) int {
	if isPow2(n) {
		return int(r) & (n - 1)
	}
	var (
		mask = Mask(n)
		v    = int(r) & mask
		d    = mask + 1
	)
	for i := 0; ; i++ {
		if v < (i+1)*d/n {
			return i
		}
	}
}

// Mask returns the smallest value of the form 2^k - 1
// that is at least n*8.
func Mask(n int) int {
	mask := n << 3
	mask |= mask >> 1
	mask |= mask >> 2
	mask |= mask >> 4
	mask |= mask >> 8
	mask |= mask >> 16
	return mask
}

func isPow2(n int) bool { return n&(n-1) == 0 }
