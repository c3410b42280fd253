// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// CauchyDist is a Cauchy (Lorentz) distribution with location Mu and
// scale Sigma. It has no mean or variance.
type CauchyDist struct {
	Mu, Sigma float64
}

// Valid reports whether Mu is finite and Sigma is positive and
// finite.
func (d CauchyDist) Valid() bool {
	return finite(d.Mu) && finite(d.Sigma) && d.Sigma > 0
}

func (d CauchyDist) PDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	z := (x - d.Mu) / d.Sigma
	return 1 / (math.Pi * d.Sigma * (1 + z*z))
}

func (d CauchyDist) CDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	return 0.5 + math.Atan((x-d.Mu)/d.Sigma)/math.Pi
}

func (d CauchyDist) InvCDF(y float64) float64 {
	switch {
	case !d.Valid() || !unitInterval(y):
		return nan
	case y == 0:
		return math.Inf(-1)
	case y == 1:
		return inf
	}
	return d.Mu + d.Sigma*math.Tan(math.Pi*(y-0.5))
}

func (d CauchyDist) Bounds() (float64, float64) {
	const scales = 10
	return d.Mu - scales*d.Sigma, d.Mu + scales*d.Sigma
}

// Mean returns NaN; the Cauchy distribution has no mean.
func (d CauchyDist) Mean() float64 {
	return nan
}

// Variance returns NaN; the Cauchy distribution has no variance.
func (d CauchyDist) Variance() float64 {
	return nan
}
