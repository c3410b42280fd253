// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// GammaDist is a gamma distribution with shape Shape and rate Rate.
// Its mean is Shape/Rate.
type GammaDist struct {
	Shape, Rate float64
}

// Valid reports whether Shape and Rate are positive and finite.
func (d GammaDist) Valid() bool {
	return finite(d.Shape) && finite(d.Rate) && d.Shape > 0 && d.Rate > 0
}

func (d GammaDist) g() distuv.Gamma {
	return distuv.Gamma{Alpha: d.Shape, Beta: d.Rate}
}

func (d GammaDist) PDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	return d.g().Prob(x)
}

func (d GammaDist) CDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	return d.g().CDF(x)
}

func (d GammaDist) InvCDF(y float64) float64 {
	if !d.Valid() || !unitInterval(y) {
		return nan
	}
	return d.g().Quantile(y)
}

func (d GammaDist) Bounds() (float64, float64) {
	return 0, d.Mean() + 6*math.Sqrt(d.Variance())
}

func (d GammaDist) Mean() float64 {
	if !d.Valid() {
		return nan
	}
	return d.Shape / d.Rate
}

func (d GammaDist) Variance() float64 {
	if !d.Valid() {
		return nan
	}
	return d.Shape / (d.Rate * d.Rate)
}

// InvGammaDist is the distribution of 1/X where X is
// GammaDist{Shape, Rate}. Rate is therefore the scale of the inverse
// gamma distribution, and the mean is Rate/(Shape-1) for Shape > 1.
type InvGammaDist struct {
	Shape, Rate float64
}

// Valid reports whether Shape and Rate are positive and finite.
func (d InvGammaDist) Valid() bool {
	return GammaDist(d).Valid()
}

func (d InvGammaDist) g() distuv.InverseGamma {
	return distuv.InverseGamma{Alpha: d.Shape, Beta: d.Rate}
}

func (d InvGammaDist) PDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	return d.g().Prob(x)
}

func (d InvGammaDist) CDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	if x <= 0 {
		return 0
	}
	return d.g().CDF(x)
}

func (d InvGammaDist) InvCDF(y float64) float64 {
	if !d.Valid() || !unitInterval(y) {
		return nan
	}
	return d.g().Quantile(y)
}

func (d InvGammaDist) Bounds() (float64, float64) {
	return 0, d.InvCDF(0.99)
}

// Mean returns Rate/(Shape-1), or +Inf if Shape <= 1.
func (d InvGammaDist) Mean() float64 {
	if !d.Valid() {
		return nan
	}
	return d.g().Mean()
}

// Variance returns the variance of d, or +Inf if Shape <= 2.
func (d InvGammaDist) Variance() float64 {
	if !d.Valid() {
		return nan
	}
	if d.Shape <= 2 {
		return inf
	}
	a := d.Shape
	return d.Rate * d.Rate / ((a - 1) * (a - 1) * (a - 2))
}

// ChiSquaredDist is a chi-squared distribution with K degrees of
// freedom. It is GammaDist{K/2, 1/2}.
type ChiSquaredDist struct {
	K float64
}

// Valid reports whether K is positive and finite.
func (d ChiSquaredDist) Valid() bool {
	return finite(d.K) && d.K > 0
}

// Gamma returns the gamma distribution equal to d.
func (d ChiSquaredDist) Gamma() GammaDist {
	return GammaDist{Shape: d.K / 2, Rate: 0.5}
}

func (d ChiSquaredDist) PDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	return d.Gamma().PDF(x)
}

func (d ChiSquaredDist) CDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	if x <= 0 {
		return 0
	}
	return distuv.ChiSquared{K: d.K}.CDF(x)
}

func (d ChiSquaredDist) InvCDF(y float64) float64 {
	if !d.Valid() || !unitInterval(y) {
		return nan
	}
	return distuv.ChiSquared{K: d.K}.Quantile(y)
}

func (d ChiSquaredDist) Bounds() (float64, float64) {
	return d.Gamma().Bounds()
}

func (d ChiSquaredDist) Mean() float64 {
	if !d.Valid() {
		return nan
	}
	return d.K
}

func (d ChiSquaredDist) Variance() float64 {
	if !d.Valid() {
		return nan
	}
	return 2 * d.K
}
