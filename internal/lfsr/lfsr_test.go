package lfsr_test

import (
	"fmt"
	"math/bits"
	"testing"

	"github.com/djdv/go-waypolicy/internal/lfsr"
)

func TestLFSR(t *testing.T) {
	t.Run("period", period)
	t.Run("known steps", knownSteps)
}

func TestExtract(t *testing.T) {
	t.Run("in range", extractInRange)
	t.Run("power of two", extractPow2)
	t.Run("mask", mask)
	t.Run("partition", partition)
}

func period(t *testing.T) {
	t.Parallel()
	var (
		seen = make([]bool, 1<<16)
		r    = lfsr.Seed
	)
	for step := range lfsr.Period {
		if r == 0 {
			t.Fatalf("register reached zero after %d steps", step)
		}
		if seen[r] {
			t.Fatalf("value %#04x repeated after %d steps", r, step)
		}
		seen[r] = true
		r = lfsr.Next(r)
	}
	if r != lfsr.Seed {
		t.Fatalf(
			"register did not return to seed after full period"+
				"\n\tgot: %#04x"+
				"\n\twant: %#04x",
			r, lfsr.Seed)
	}
}

func knownSteps(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		in, want uint16
	}{
		{0x0001, 0x8000},
		{0x8000, 0x4000},
		{0x0004, 0x8002},
		{0x0002, 0x0001},
		{0x002D, 0x0016},
	} {
		if got := lfsr.Next(test.in); got != test.want {
			t.Errorf(
				"unexpected step from %#04x"+
					"\n\tgot: %#04x"+
					"\n\twant: %#04x",
				test.in, got, test.want)
		}
	}
}

func extractInRange(t *testing.T) {
	t.Parallel()
	for n := 2; n <= 32; n++ {
		for r := range 1 << 16 {
			if got := lfsr.Extract(n, uint16(r)); got < 0 || got >= n {
				t.Fatalf("Extract(%d, %#04x) = %d, out of range", n, r, got)
			}
		}
	}
}

func extractPow2(t *testing.T) {
	t.Parallel()
	for _, n := range []int{2, 4, 8, 16, 32} {
		for r := range 1 << 16 {
			var (
				got  = lfsr.Extract(n, uint16(r))
				want = r & (n - 1)
			)
			if got != want {
				t.Fatalf(
					"Extract(%d, %#04x) did not use the low bits"+
						"\n\tgot: %d"+
						"\n\twant: %d",
					n, r, got, want)
			}
		}
	}
}

func mask(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		n, want int
	}{
		{3, 31},
		{5, 63},
		{6, 63},
		{7, 63},
		{9, 127},
		{15, 127},
		{17, 255},
		{31, 255},
	} {
		if got := lfsr.Mask(test.n); got != test.want {
			t.Errorf(
				"unexpected mask for %d ways"+
					"\n\tgot: %d"+
					"\n\twant: %d",
				test.n, got, test.want)
		}
	}
	for n := 2; n <= 32; n++ {
		var (
			got  = lfsr.Mask(n)
			want = 1<<bits.Len(uint(n*8)) - 1
		)
		if got != want {
			t.Errorf("Mask(%d) = %d, want smallest 2^k-1 >= %d (%d)",
				n, got, n*8, want)
		}
	}
}

func partition(t *testing.T) {
	for n := 3; n <= 31; n++ {
		if n&(n-1) == 0 {
			continue
		}
		t.Run(fmt.Sprintf("%d", n), func(t *testing.T) {
			t.Parallel()
			var (
				mask   = lfsr.Mask(n)
				d      = mask + 1
				floor  = d / n
				ceil   = (d + n - 1) / n
				counts = make([]int, n)
			)
			for r := 0; r <= mask; r++ {
				counts[lfsr.Extract(n, uint16(r))]++
			}
			for bucket, count := range counts {
				if count != floor && count != ceil {
					t.Errorf(
						"bucket %d received %d values, want %d or %d",
						bucket, count, floor, ceil)
				}
			}
		})
	}
}

func ExampleExtract() {
	const ways = 3 // Mask is 31; 32 values over 3 buckets.
	for _, r := range []uint16{0, 9, 10, 20, 21, 31, 32} {
		fmt.Print(lfsr.Extract(ways, r), " ")
	}
	fmt.Println()
	// Output:
	// 0 0 1 1 2 2 0
}
