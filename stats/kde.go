// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// KDE represents options for constructing a Gaussian kernel density
// estimate.
//
// Kernel density estimation is a method for constructing an estimate
// ƒ̂(x) of a unknown distribution ƒ(x) given a sample from that
// distribution. Unlike many techniques, kernel density estimation is
// non-parametric: in general, it doesn't assume any particular true
// distribution (note, however, that the resulting distribution
// depends deeply on the selected bandwidth, and many bandwidth
// estimation techniques assume normal reference rules).
//
// The default (zero) value of KDE is a reasonable default
// configuration.
type KDE struct {
	// Bandwidth is the standard deviation of the kernel placed at
	// each sample point. If this is zero, the bandwidth is
	// computed with BandwidthScott.
	Bandwidth float64

	// [Min, Max) is the support of the estimate. The density is
	// reflected at each finite bound. If both are 0 (their
	// default values), they are treated as -/+Inf.
	//
	// To specify a half-bounded support, set Min to math.Inf(-1)
	// or Max to math.Inf(1).
	Min, Max float64
}

// BandwidthSilverman is a bandwidth estimator implementing
// Silverman's Rule of Thumb. It's fast, but not very robust to
// outliers as it assumes data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(s Sample) float64 {
	return 1.06 * s.StdDev() * math.Pow(s.Weight(), -1.0/5)
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// This is generally robust to outliers: it chooses the minimum
// between the sample's standard deviation and an robust estimator of
// a Gaussian distribution's standard deviation. A zero interquartile
// range, as in most samples of a Bernoulli variate, is ignored.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(s Sample) float64 {
	iqr := s.Quantile(0.75) - s.Quantile(0.25)
	scale := s.StdDev()
	if iqr > 0 {
		scale = math.Min(scale, iqr/1.349)
	}
	return 1.06 * scale * math.Pow(s.Weight(), -1.0/5)
}

// From returns the kernel density estimate of s. If the chosen
// bandwidth is not positive, as for a sample of identical values, a
// bandwidth of 1 is used.
func (k KDE) From(s Sample) *KDEDist {
	if s.Weights != nil && len(s.Xs) != len(s.Weights) {
		panic("stats: len(xs) != len(weights)")
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	h := k.Bandwidth
	if h == 0 {
		h = BandwidthScott(s)
	}
	if !(h > 0) || math.IsInf(h, 1) {
		h = 1
	}

	min, max := k.Min, k.Max
	if min == 0 && max == 0 {
		min, max = -inf, inf
	}
	return &KDEDist{s: s, h: h, min: min, max: max, weight: s.Weight()}
}

// KDEDist is the density estimate returned by KDE.From.
type KDEDist struct {
	s        Sample
	h        float64
	min, max float64
	weight   float64
}

// Bandwidth returns the kernel standard deviation in use.
func (d *KDEDist) Bandwidth() float64 {
	return d.h
}

// eachKernel evaluates f at (x-xi)/h for every sample point xi and
// returns the weighted mean.
func (d *KDEDist) eachKernel(x float64, f func(z float64) float64) float64 {
	ys := make([]float64, len(d.s.Xs))
	for i, xi := range d.s.Xs {
		ys[i] = f((x - xi) / d.h)
	}
	if d.s.Weights == nil {
		return floats.Sum(ys) / d.weight
	}
	return floats.Dot(ys, d.s.Weights) / d.weight
}

func (d *KDEDist) pdf(x float64) float64 {
	if math.IsInf(x, 0) {
		return 0
	}
	return d.eachKernel(x, StdNormal.PDF) / d.h
}

func (d *KDEDist) cdf(x float64) float64 {
	if math.IsInf(x, 0) {
		if x < 0 {
			return 0
		}
		return 1
	}
	return d.eachKernel(x, StdNormal.CDF)
}

// PDF returns the estimated density at x. Mass that the kernels
// place outside a finite bound is reflected back across it.
func (d *KDEDist) PDF(x float64) float64 {
	if x < d.min || x >= d.max {
		return 0
	}
	return d.pdf(x) + d.pdf(2*d.min-x) + d.pdf(2*d.max-x)
}

// CDF returns the integral of PDF from Min to x.
func (d *KDEDist) CDF(x float64) float64 {
	if x < d.min {
		return 0
	} else if x >= d.max {
		return 1
	}
	return d.cdf(x) - d.cdf(2*d.min-x) + d.cdf(2*d.max-d.min) - d.cdf(2*d.max-x)
}

// Bounds returns a range covering the sample widened by three
// bandwidths on each side and clipped to the support.
func (d *KDEDist) Bounds() (low float64, high float64) {
	low, high = d.s.Bounds()
	low, high = low-3*d.h, high+3*d.h
	return math.Max(low, d.min), math.Min(high, d.max)
}
