// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"testing"
)

type quantileCICase struct {
	n        int
	q, conf  float64
	lo, hi   int
	actual   float64
	ambig    bool
	fromSamp []float64 // if non-nil, the expected FromSample bounds
}

func checkQuantileCI(t *testing.T, cases []quantileCICase) {
	t.Helper()
	for _, c := range cases {
		res := QuantileCI(c.n, c.q, c.conf)
		if c.lo != res.LoOrder || c.hi != res.HiOrder || !aeq(c.actual, res.Confidence) || c.ambig != res.Ambiguous {
			t.Errorf("QuantileCI(%d, %v, %v): want [%v,%v]@%v/%v, got [%v,%v]@%v/%v",
				c.n, c.q, c.conf,
				c.lo, c.hi, c.actual, c.ambig,
				res.LoOrder, res.HiOrder, res.Confidence, res.Ambiguous)
		}
		if c.fromSamp == nil {
			continue
		}
		var s Sample
		for i := 1; i <= res.N; i++ {
			s.Xs = append(s.Xs, float64(i))
		}
		s.Sorted = true
		lo, hi := res.FromSample(s)
		if lo != c.fromSamp[0] || hi != c.fromSamp[1] {
			t.Errorf("QuantileCI(%d, %v, %v).FromSample: want [%v,%v], got [%v,%v]",
				c.n, c.q, c.conf, c.fromSamp[0], c.fromSamp[1], lo, hi)
		}
	}
}

// binomBuckets returns the PMF of B(n, p) at 0..n.
func binomBuckets(n int, p float64) []float64 {
	dist := BinomialDist{N: n, P: p}
	bs := make([]float64, n+1)
	for i := range bs {
		bs[i] = dist.PMF(float64(i))
	}
	return bs
}

// normBuckets returns the continuity-corrected normal approximation
// to B(n, p) at 0..n.
func normBuckets(n int, p float64) []float64 {
	norm := BinomialDist{N: n, P: p}.NormalApprox()
	bs := make([]float64, n+1)
	for i := range bs {
		bs[i] = norm.CDF(float64(i)+0.5) - norm.CDF(float64(i)-0.5)
	}
	return bs
}

func TestQuantileCIExact(t *testing.T) {
	checkQuantileCI(t, []quantileCICase{
		// Confidence so low the band is the quantile's bucket.
		{n: 4, q: 0.5, conf: 0.001, lo: 2, hi: 3, actual: 0.375, fromSamp: []float64{2, 3}},
		{n: 4, q: 0.25, conf: 0.001, lo: 1, hi: 2, actual: 0.421875, fromSamp: []float64{1, 2}},
		// Quantiles at or near 0 and 1.
		{n: 4, q: 0, conf: 0.001, lo: 0, hi: 1, actual: 1, fromSamp: []float64{-inf, 1}},
		{n: 4, q: 0.0001, conf: 0.001, lo: 0, hi: 1, actual: binomBuckets(4, 0.0001)[0]},
		{n: 4, q: 1, conf: 0.001, lo: 4, hi: 5, actual: 1, fromSamp: []float64{4, inf}},
		{n: 4, q: 0.999, conf: 0.001, lo: 4, hi: 5, actual: binomBuckets(4, 0.999)[4]},
		// Confidence exactly the PMF, then just beyond it, which
		// grows left first.
		{n: 4, q: 0.5, conf: 0.375, lo: 2, hi: 3, actual: 0.375},
		{n: 4, q: 0.5, conf: 0.3750001, lo: 1, hi: 3, actual: 0.375 + 0.25, ambig: true},
		// Confidence 1 or nearly 1.
		{n: 4, q: 0.5, conf: 1, lo: 0, hi: 5, actual: 1},
		{n: 4, q: 0.5, conf: 0.99, lo: 0, hi: 5, actual: 1},
		// Confidence low enough to trim one bucket, on the right.
		{n: 4, q: 0.5, conf: 0.99 - 0.0625, lo: 0, hi: 4, actual: 0.375 + 2*0.25 + 0.0625, ambig: true},

		// Odd sample sizes have two modes.
		{n: 5, q: 0.5, conf: 0.001, lo: 2, hi: 3, actual: 0.3125, ambig: true},
		{n: 5, q: 0.5, conf: 0.3125, lo: 2, hi: 3, actual: 0.3125, ambig: true},
		{n: 5, q: 0.5, conf: 0.3125001, lo: 2, hi: 4, actual: 0.3125 * 2},
		{n: 5, q: 0.5, conf: 1, lo: 0, hi: 6, actual: 1},
		{n: 5, q: 0.5, conf: 0.99, lo: 0, hi: 6, actual: 1},
		{n: 5, q: 0.5, conf: 0.99 - 0.03125, lo: 0, hi: 5, actual: 1 - 0.03125, ambig: true},
	})
}

func TestQuantileCIApprox(t *testing.T) {
	defer func(x int) { quantileCIApproxThreshold = x }(quantileCIApproxThreshold)
	quantileCIApproxThreshold = 0

	n4 := normBuckets(4, 0.5)
	n5 := normBuckets(5, 0.5)
	checkQuantileCI(t, []quantileCICase{
		{n: 4, q: 0.5, conf: 0.001, lo: 2, hi: 3, actual: n4[2]},
		{n: 4, q: 0.5, conf: n4[2], lo: 2, hi: 3, actual: n4[2]},
		{n: 4, q: 0.5, conf: n4[2] + 0.00001, lo: 1, hi: 3, actual: n4[1] + n4[2], ambig: true},
		{n: 4, q: 0.5, conf: 1, lo: 0, hi: 5, actual: 1},
		// The normal tails are thin, so 0.99 still spans the
		// whole sample.
		{n: 4, q: 0.5, conf: 0.99, lo: 0, hi: 5, actual: 1},
		{n: 4, q: 0.5, conf: 0.90, lo: 0, hi: 4, actual: n4[0] + n4[1] + n4[2] + n4[3], ambig: true},

		{n: 5, q: 0.5, conf: 0.001, lo: 2, hi: 3, actual: n5[2], ambig: true},
		{n: 5, q: 0.5, conf: n5[2], lo: 2, hi: 3, actual: n5[2], ambig: true},
		{n: 5, q: 0.5, conf: n5[2] + 0.00001, lo: 2, hi: 4, actual: n5[2] + n5[3]},

		// Degenerate quantiles.
		{n: 5, q: 0, conf: 0.95, lo: 0, hi: 1, actual: 1},
		{n: 5, q: 0.001, conf: 0.95, lo: 0, hi: 1, actual: 1},
		{n: 5, q: 1, conf: 0.95, lo: 5, hi: 6, actual: 1},
		{n: 5, q: 0.999, conf: 0.95, lo: 5, hi: 6, actual: 1},
	})
}

func BenchmarkQuantileCI(b *testing.B) {
	defer func(x int) { quantileCIApproxThreshold = x }(quantileCIApproxThreshold)
	for n := 5; n <= 100; n += 5 {
		for _, approx := range []bool{false, true} {
			if approx {
				quantileCIApproxThreshold = 0
			} else {
				quantileCIApproxThreshold = 1000
			}

			b.Run(fmt.Sprintf("n=%d/approx=%v", n, approx), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					QuantileCI(n, 0.5, 0.95)
				}
			})
		}
	}
}
