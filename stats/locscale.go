// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// LogisticDist is a logistic distribution with location Mu and scale
// Sigma.
type LogisticDist struct {
	Mu, Sigma float64
}

// Valid reports whether Mu is finite and Sigma is positive and
// finite.
func (d LogisticDist) Valid() bool {
	return finite(d.Mu) && finite(d.Sigma) && d.Sigma > 0
}

func (d LogisticDist) l() distuv.Logistic {
	return distuv.Logistic{Mu: d.Mu, S: d.Sigma}
}

func (d LogisticDist) PDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	return d.l().Prob(x)
}

func (d LogisticDist) CDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	return d.l().CDF(x)
}

// InvCDF returns Mu + Sigma*log(y/(1-y)).
func (d LogisticDist) InvCDF(y float64) float64 {
	if !d.Valid() || !unitInterval(y) {
		return nan
	}
	return d.l().Quantile(y)
}

func (d LogisticDist) Bounds() (float64, float64) {
	const scales = 8
	return d.Mu - scales*d.Sigma, d.Mu + scales*d.Sigma
}

func (d LogisticDist) Mean() float64 {
	if !d.Valid() {
		return nan
	}
	return d.Mu
}

func (d LogisticDist) Variance() float64 {
	if !d.Valid() {
		return nan
	}
	return d.Sigma * d.Sigma * math.Pi * math.Pi / 3
}

// LaplaceDist is a Laplace (double exponential) distribution with
// location Mu and scale Sigma.
type LaplaceDist struct {
	Mu, Sigma float64
}

// Valid reports whether Mu is finite and Sigma is positive and
// finite.
func (d LaplaceDist) Valid() bool {
	return finite(d.Mu) && finite(d.Sigma) && d.Sigma > 0
}

func (d LaplaceDist) l() distuv.Laplace {
	return distuv.Laplace{Mu: d.Mu, Scale: d.Sigma}
}

func (d LaplaceDist) PDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	return d.l().Prob(x)
}

func (d LaplaceDist) CDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	return d.l().CDF(x)
}

func (d LaplaceDist) InvCDF(y float64) float64 {
	if !d.Valid() || !unitInterval(y) {
		return nan
	}
	return d.l().Quantile(y)
}

func (d LaplaceDist) Bounds() (float64, float64) {
	const scales = 8
	return d.Mu - scales*d.Sigma, d.Mu + scales*d.Sigma
}

func (d LaplaceDist) Mean() float64 {
	if !d.Valid() {
		return nan
	}
	return d.Mu
}

func (d LaplaceDist) Variance() float64 {
	if !d.Valid() {
		return nan
	}
	return 2 * d.Sigma * d.Sigma
}

// LogNormalDist is the distribution of exp(X) where X is
// NormalDist{Mu, Sigma}.
type LogNormalDist struct {
	Mu, Sigma float64
}

// Valid reports whether Mu is finite and Sigma is positive and
// finite.
func (d LogNormalDist) Valid() bool {
	return NormalDist(d).Valid()
}

func (d LogNormalDist) l() distuv.LogNormal {
	return distuv.LogNormal{Mu: d.Mu, Sigma: d.Sigma}
}

func (d LogNormalDist) PDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	if x <= 0 {
		return 0
	}
	return d.l().Prob(x)
}

func (d LogNormalDist) CDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	if x <= 0 {
		return 0
	}
	return d.l().CDF(x)
}

// InvCDF returns exp(NormalDist{Mu, Sigma}.InvCDF(y)).
func (d LogNormalDist) InvCDF(y float64) float64 {
	if !d.Valid() || !unitInterval(y) {
		return nan
	}
	return math.Exp(NormalDist(d).InvCDF(y))
}

func (d LogNormalDist) Bounds() (float64, float64) {
	return 0, d.InvCDF(0.99)
}

func (d LogNormalDist) Mean() float64 {
	if !d.Valid() {
		return nan
	}
	return d.l().Mean()
}

func (d LogNormalDist) Variance() float64 {
	if !d.Valid() {
		return nan
	}
	return d.l().Variance()
}

// WeibullDist is a Weibull distribution with shape K and scale
// Lambda.
type WeibullDist struct {
	K, Lambda float64
}

// Valid reports whether K and Lambda are positive and finite.
func (d WeibullDist) Valid() bool {
	return finite(d.K) && finite(d.Lambda) && d.K > 0 && d.Lambda > 0
}

func (d WeibullDist) w() distuv.Weibull {
	return distuv.Weibull{K: d.K, Lambda: d.Lambda}
}

func (d WeibullDist) PDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	if x < 0 {
		return 0
	}
	return d.w().Prob(x)
}

func (d WeibullDist) CDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	if x <= 0 {
		return 0
	}
	return d.w().CDF(x)
}

// InvCDF returns Lambda*(-log(1-y))^(1/K).
func (d WeibullDist) InvCDF(y float64) float64 {
	if !d.Valid() || !unitInterval(y) {
		return nan
	}
	return d.w().Quantile(y)
}

func (d WeibullDist) Bounds() (float64, float64) {
	return 0, d.InvCDF(0.999)
}

func (d WeibullDist) Mean() float64 {
	if !d.Valid() {
		return nan
	}
	return d.w().Mean()
}

func (d WeibullDist) Variance() float64 {
	if !d.Valid() {
		return nan
	}
	return d.w().Variance()
}
