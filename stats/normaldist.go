// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1)
var StdNormal = NormalDist{0, 1}

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

// Valid reports whether Mu is finite and Sigma is positive and
// finite.
func (n NormalDist) Valid() bool {
	return finite(n.Mu) && finite(n.Sigma) && n.Sigma > 0
}

func (n NormalDist) PDF(x float64) float64 {
	if !n.Valid() {
		return nan
	}
	z := x - n.Mu
	return math.Exp(-z*z/(2*n.Sigma*n.Sigma)) * invSqrt2Pi / n.Sigma
}

func (n NormalDist) CDF(x float64) float64 {
	if !n.Valid() {
		return nan
	}
	return (1 + math.Erf((x-n.Mu)/(n.Sigma*math.Sqrt2))) / 2
}

func (n NormalDist) InvCDF(y float64) float64 {
	if !n.Valid() || !unitInterval(y) {
		return nan
	}
	return n.Mu + n.Sigma*mathext.NormalQuantile(y)
}

func (n NormalDist) Bounds() (float64, float64) {
	const stddevs = 3
	return n.Mu - stddevs*n.Sigma, n.Mu + stddevs*n.Sigma
}

func (n NormalDist) Mean() float64 {
	if !n.Valid() {
		return nan
	}
	return n.Mu
}

func (n NormalDist) Variance() float64 {
	if !n.Valid() {
		return nan
	}
	return n.Sigma * n.Sigma
}
