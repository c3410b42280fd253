// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/combin"
)

// BinomialDist is a binomial distribution.
type BinomialDist struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

// Valid reports whether N >= 0 and 0 <= P <= 1.
func (d BinomialDist) Valid() bool {
	return d.N >= 0 && unitInterval(d.P)
}

// PMF is the probability of getting exactly int(k) successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) PMF(k float64) float64 {
	if !d.Valid() {
		return nan
	}
	ki := int(math.Floor(k))
	if ki < 0 || ki > d.N {
		return 0
	}
	kf := float64(ki)
	return choose(d.N, ki) * math.Pow(d.P, kf) * math.Pow(1-d.P, float64(d.N)-kf)
}

// choose returns the binomial coefficient (n k) for 0 <= k <= n. It
// is exact while the result fits in an int and symmetric in k and
// n-k beyond that.
func choose(n, k int) float64 {
	if k > n-k {
		k = n - k
	}
	if n <= 60 {
		return float64(combin.Binomial(n, k))
	}
	return math.Exp(combin.LogGeneralizedBinomial(float64(n), float64(k)))
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) CDF(k float64) float64 {
	if !d.Valid() {
		return nan
	}
	k = math.Floor(k)
	ki := int(k)
	if ki < 0 {
		return 0
	} else if ki >= d.N {
		return 1
	}

	switch d.P {
	case 0:
		return 1
	case 1:
		return 0
	}
	return mathext.RegIncBeta(float64(d.N-ki), k+1, 1-d.P)
}

// InvCDF returns the smallest k such that CDF(k) >= y.
func (d BinomialDist) InvCDF(y float64) float64 {
	if !d.Valid() || !unitInterval(y) {
		return nan
	}
	return discreteInvCDF(d, y)
}

func (d BinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

func (d BinomialDist) Step() float64 {
	return 1
}

func (d BinomialDist) Mean() float64 {
	if !d.Valid() {
		return nan
	}
	return float64(d.N) * d.P
}

func (d BinomialDist) Variance() float64 {
	if !d.Valid() {
		return nan
	}
	return float64(d.N) * d.P * (1 - d.P)
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d BinomialDist) NormalApprox() NormalDist {
	return NormalDist{Mu: d.Mean(), Sigma: math.Sqrt(d.Variance())}
}

// BernoulliDist is a Bernoulli distribution: 1 with probability P,
// otherwise 0.
type BernoulliDist struct {
	P float64
}

// Valid reports whether 0 <= P <= 1.
func (d BernoulliDist) Valid() bool {
	return unitInterval(d.P)
}

func (d BernoulliDist) PMF(k float64) float64 {
	if !d.Valid() {
		return nan
	}
	switch math.Floor(k) {
	case 0:
		return 1 - d.P
	case 1:
		return d.P
	}
	return 0
}

func (d BernoulliDist) CDF(k float64) float64 {
	if !d.Valid() {
		return nan
	}
	switch {
	case k < 0:
		return 0
	case k < 1:
		return 1 - d.P
	}
	return 1
}

// InvCDF returns 0 if y <= 1-P and 1 otherwise.
func (d BernoulliDist) InvCDF(y float64) float64 {
	if !d.Valid() || !unitInterval(y) {
		return nan
	}
	if y <= 1-d.P {
		return 0
	}
	return 1
}

func (d BernoulliDist) Bounds() (float64, float64) {
	return 0, 1
}

func (d BernoulliDist) Step() float64 {
	return 1
}

func (d BernoulliDist) Mean() float64 {
	if !d.Valid() {
		return nan
	}
	return d.P
}

func (d BernoulliDist) Variance() float64 {
	if !d.Valid() {
		return nan
	}
	return d.P * (1 - d.P)
}

// discreteInvCDF returns the smallest multiple k of d.Step() in
// d.Bounds() with d.CDF(k) >= y, scanning upward from the lower bound.
func discreteInvCDF(d DiscreteDist, y float64) float64 {
	lo, hi := d.Bounds()
	step := d.Step()
	k := lo
	for ; k < hi; k += step {
		if d.CDF(k) >= y {
			break
		}
	}
	return k
}
