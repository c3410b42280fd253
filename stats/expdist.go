// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/stat/distuv"

// ExponentialDist is an exponential distribution with rate Rate
// (mean 1/Rate).
type ExponentialDist struct {
	Rate float64
}

// Valid reports whether Rate is positive and finite.
func (d ExponentialDist) Valid() bool {
	return finite(d.Rate) && d.Rate > 0
}

func (d ExponentialDist) PDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	return distuv.Exponential{Rate: d.Rate}.Prob(x)
}

func (d ExponentialDist) CDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	return distuv.Exponential{Rate: d.Rate}.CDF(x)
}

func (d ExponentialDist) InvCDF(y float64) float64 {
	if !d.Valid() || !unitInterval(y) {
		return nan
	}
	return distuv.Exponential{Rate: d.Rate}.Quantile(y)
}

func (d ExponentialDist) Bounds() (float64, float64) {
	return 0, 8 / d.Rate
}

func (d ExponentialDist) Mean() float64 {
	if !d.Valid() {
		return nan
	}
	return 1 / d.Rate
}

func (d ExponentialDist) Variance() float64 {
	if !d.Valid() {
		return nan
	}
	return 1 / (d.Rate * d.Rate)
}
