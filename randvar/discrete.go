// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randvar

import (
	"math"

	"github.com/aclements/go-moredist/numeric"
	"github.com/aclements/go-moredist/rng"
	"github.com/aclements/go-moredist/stats"
)

// Bernoulli is 1 with probability P and 0 otherwise.
type Bernoulli[T numeric.Float] struct {
	P T
}

func (d Bernoulli[T]) dist() stats.BernoulliDist {
	return stats.BernoulliDist{P: float64(d.P)}
}

func (d Bernoulli[T]) Valid() bool { return d.dist().Valid() }

// Rand draws u on (0, 1) and returns 1 if u < P.
func (d Bernoulli[T]) Rand(r rng.Source) T {
	if !d.Valid() {
		return nan[T]()
	}
	if rng.Unit[T](r) < d.P {
		return 1
	}
	return 0
}

// Binomial is the number of successes in N independent Bernoulli{P}
// trials.
type Binomial[T numeric.Float] struct {
	N int
	P T
}

func (d Binomial[T]) dist() stats.BinomialDist {
	return stats.BinomialDist{N: d.N, P: float64(d.P)}
}

func (d Binomial[T]) Valid() bool { return d.dist().Valid() }

// Rand counts the successes of N Bernoulli trials, consuming exactly N
// source values. Its cost is linear in N.
func (d Binomial[T]) Rand(r rng.Source) T {
	if !d.Valid() {
		return nan[T]()
	}
	// Count in an int: a float32 sum stops growing at 2^24.
	k := 0
	for i := 0; i < d.N; i++ {
		if rng.Unit[T](r) < d.P {
			k++
		}
	}
	return T(k)
}

// Poisson is the Poisson distribution with mean Lambda.
type Poisson[T numeric.Float] struct {
	Lambda T
}

func (d Poisson[T]) dist() stats.PoissonDist {
	return stats.PoissonDist{Lambda: float64(d.Lambda)}
}

func (d Poisson[T]) Valid() bool { return d.dist().Valid() }

// Rand counts unit-rate exponential arrivals before time Lambda,
// consuming k+1 source values for a result of k. Its expected cost is
// linear in Lambda.
func (d Poisson[T]) Rand(r rng.Source) T {
	if !d.Valid() {
		return nan[T]()
	}
	lambda := float64(d.Lambda)
	t, k := 0.0, 0
	for {
		t -= math.Log(unit[T](r))
		if t > lambda {
			return T(k)
		}
		k++
	}
}
