// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats evaluates probability distributions in closed form:
// densities and mass functions, CDFs, quantiles, moments and the
// parameter domain of each distribution.
//
// Every distribution has a Valid method that reports whether its
// parameters lie in the distribution's domain. Evaluating a
// distribution with invalid parameters returns NaN rather than
// panicking, so invalid input propagates through downstream
// arithmetic.
package stats // import "github.com/aclements/go-moredist/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()

// finite reports whether x is neither infinite nor NaN.
func finite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// unitInterval reports whether p is a probability.
func unitInterval(p float64) bool {
	return p >= 0 && p <= 1
}
