// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randvar

import (
	"math"

	"github.com/aclements/go-moredist/numeric"
	"github.com/aclements/go-moredist/rng"
)

// A Sampler draws variates of type T from a fixed distribution.
type Sampler[T numeric.Float] interface {
	// Valid reports whether the distribution's parameters are in
	// its domain.
	Valid() bool

	// Rand returns one variate drawn using r. If the parameters
	// are invalid, Rand returns NaN without calling r.
	Rand(r rng.Source) T
}

// A Kernel draws one float64 variate from r. Every Sampler[float64]'s
// Rand method is a Kernel, as is every promoted entry point with its
// parameters bound.
type Kernel func(r rng.Source) float64

// Seeded draws one variate from s using a fresh engine seeded with
// seed. The same sampler and seed always give the same result.
func Seeded[T numeric.Float](s Sampler[T], seed uint64) T {
	return s.Rand(rng.New(seed))
}

func nan[T numeric.Float]() T {
	return T(math.NaN())
}

// unit draws a uniform variate on (0, 1) at precision T and widens it
// for evaluation.
func unit[T numeric.Float](r rng.Source) float64 {
	return float64(rng.Unit[T](r))
}
