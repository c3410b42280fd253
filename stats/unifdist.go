// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/stat/distuv"

// UniformDist is a continuous uniform distribution on [Lo, Hi].
type UniformDist struct {
	Lo, Hi float64
}

// Valid reports whether Lo and Hi are finite and Lo < Hi.
func (d UniformDist) Valid() bool {
	return finite(d.Lo) && finite(d.Hi) && d.Lo < d.Hi
}

func (d UniformDist) u() distuv.Uniform {
	return distuv.Uniform{Min: d.Lo, Max: d.Hi}
}

func (d UniformDist) PDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	return d.u().Prob(x)
}

func (d UniformDist) CDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	return d.u().CDF(x)
}

func (d UniformDist) InvCDF(y float64) float64 {
	if !d.Valid() || !unitInterval(y) {
		return nan
	}
	return d.u().Quantile(y)
}

func (d UniformDist) Bounds() (float64, float64) {
	return d.Lo, d.Hi
}

func (d UniformDist) Mean() float64 {
	if !d.Valid() {
		return nan
	}
	return (d.Lo + d.Hi) / 2
}

func (d UniformDist) Variance() float64 {
	if !d.Valid() {
		return nan
	}
	w := d.Hi - d.Lo
	return w * w / 12
}
