// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// QuantileCIResult is a distribution-free confidence interval for a
// quantile, expressed as a pair of order statistics of a sample.
type QuantileCIResult struct {
	// Quantile is the quantile the interval bounds.
	Quantile float64

	// N is the sample size.
	N int

	// Confidence is the achieved confidence level, which is at
	// least the requested level.
	Confidence float64

	// LoOrder and HiOrder are the 1-based order statistics that
	// bound the interval: Xs[LoOrder-1] to Xs[HiOrder-1] of the
	// sorted sample. An order of 0 or N+1 means the bound is
	// -Inf or +Inf.
	LoOrder, HiOrder int

	// Ambiguous reports whether the interval shifted right by
	// one order statistic has the same confidence.
	Ambiguous bool
}

// FromSample returns the bounds of q in terms of values of s. s must
// be unweighted and have exactly q.N values.
func (q QuantileCIResult) FromSample(s Sample) (lo, hi float64) {
	if s.Weights != nil {
		panic("stats: quantile CI of a weighted sample")
	}
	if len(s.Xs) != q.N {
		panic("stats: sample size differs from quantile CI size")
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	lo, hi = math.Inf(-1), math.Inf(1)
	if q.LoOrder >= 1 {
		lo = s.Xs[q.LoOrder-1]
	}
	if q.HiOrder <= len(s.Xs) {
		hi = s.Xs[q.HiOrder-1]
	}
	return
}

// quantileCIApproxThreshold is the sample size above which QuantileCI
// uses a normal approximation to the binomial. It is a variable so
// tests can force either path.
var quantileCIApproxThreshold = 30

// QuantileCI returns a confidence interval for the q'th quantile of a
// population given a sample of size n from it.
//
// The number of sample values below the population quantile is
// distributed BinomialDist{n, q}, so the interval is the narrowest
// band of that distribution holding at least the requested
// confidence. Ties between equally good bands go left.
func QuantileCI(n int, q, confidence float64) QuantileCIResult {
	res := QuantileCIResult{Quantile: q, N: n}
	var l, r int
	switch {
	case confidence >= 1:
		res.Confidence = 1
		l, r = 0, n+1
	case q <= 0:
		res.Confidence = 1
		l, r = 0, 1
	case q >= 1:
		res.Confidence = 1
		l, r = n, n+1
	case n <= quantileCIApproxThreshold:
		l, r = exactQuantileCI(&res, BinomialDist{N: n, P: q}, confidence)
	default:
		l, r = approxQuantileCI(&res, BinomialDist{N: n, P: q}, confidence)
	}
	res.LoOrder, res.HiOrder = max(l, 0), min(r, n+1)
	return res
}

// exactQuantileCI grows the band [l, r) outward from the lower mode
// of samp, taking the heavier neighbor each step, until it holds the
// requested confidence.
func exactQuantileCI(res *QuantileCIResult, samp BinomialDist, confidence float64) (l, r int) {
	pmf := func(k int) float64 { return samp.PMF(float64(k)) }

	mode := int(math.Ceil(float64(samp.N+1)*samp.P) - 1)
	l, r = mode, mode+1
	accum := pmf(mode)
	lp, rp := pmf(l-1), pmf(r)
	res.Ambiguous = rp == accum

	// Stop when nothing is left to add, in case rounding keeps
	// accum just under confidence.
	for accum < confidence && (lp > 0 || rp > 0) {
		res.Ambiguous = lp == rp
		if lp >= rp {
			accum += lp
			l--
			lp = pmf(l - 1)
		} else {
			accum += rp
			r++
			rp = pmf(r)
		}
	}
	res.Confidence = accum
	return l, r
}

// approxQuantileCI finds the band using samp's normal approximation
// with a continuity correction, preferring a left-shifted band when it
// still meets the confidence level.
func approxQuantileCI(res *QuantileCIResult, samp BinomialDist, confidence float64) (l, r int) {
	norm := samp.NormalApprox()
	lx := norm.InvCDF((1 - confidence) / 2)
	rx := 2*norm.Mu - lx

	// Binomial point k is the normal band [k-0.5, k+0.5]. Round
	// [lx, rx] out to those boundaries and recover [l, r).
	l = int(math.Floor(math.Floor(lx-0.5)+0.5)) + 1
	r = int(math.Floor(math.Ceil(rx-0.5)+0.5)) + 1

	band := func(l, r int) float64 {
		return norm.CDF(float64(r)-0.5) - norm.CDF(float64(l)-0.5)
	}
	res.Confidence = band(l, r)
	if c := band(l, r-1); c >= confidence && c < res.Confidence {
		res.Confidence, res.Ambiguous = c, true
		r--
	}
	if l <= 0 && r >= samp.N+1 {
		// The band covers the whole sample; the normal tails
		// just keep the computed confidence shy of 1.
		res.Confidence, res.Ambiguous = 1, false
	}
	return l, r
}
