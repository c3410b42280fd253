// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rng provides the seedable pseudo-random engine threaded
// through every sampling call.
package rng // import "github.com/aclements/go-moredist/rng"

import (
	"unsafe"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"

	"github.com/aclements/go-moredist/numeric"
)

// A Source is a stream of uniformly distributed 64-bit values. Every
// call to Uint64 advances the stream by exactly one step.
//
// Samplers take a Source rather than an *Engine so that callers can
// supply their own bit streams.
type Source interface {
	Uint64() uint64
}

// An Engine is a 64-bit Mersenne Twister (MT19937-64).
//
// An Engine is not safe for concurrent use. Two goroutines that need
// random variates should each own an Engine; see Split.
type Engine struct {
	mt *prng.MT19937_64
}

var _ rand.Source = (*Engine)(nil)

// New returns an Engine deterministically seeded with seed. Engines
// created from the same seed produce the same stream.
func New(seed uint64) *Engine {
	e := &Engine{mt: prng.NewMT19937_64()}
	e.mt.Seed(seed)
	return e
}

// Seed resets e to the state New(seed) would produce.
func (e *Engine) Seed(seed uint64) {
	e.mt.Seed(seed)
}

// Uint64 returns the next 64 bits of the stream.
func (e *Engine) Uint64() uint64 {
	return e.mt.Uint64()
}

// Float64 returns a uniform draw from the open interval (0, 1) using
// one step of the stream.
func (e *Engine) Float64() float64 {
	return Unit[float64](e)
}

// Rand returns a golang.org/x/exp/rand generator backed by e. Draws
// made through it advance e.
func (e *Engine) Rand() *rand.Rand {
	return rand.New(e)
}

// Split returns n engines seeded from the next n values of e's
// stream. The result depends only on e's state, so a fixed master
// seed yields a fixed set of sub-engines. Split advances e by n.
func (e *Engine) Split(n int) []*Engine {
	subs := make([]*Engine, n)
	for i := range subs {
		subs[i] = New(e.Uint64())
	}
	return subs
}

// Unit returns a uniform draw from the open interval (0, 1) at the
// precision of T, consuming exactly one value from src.
//
// Results are odd multiples of 2^-53 for float64 and of 2^-24 for
// float32, so neither 0 nor 1 is ever returned and every result is
// exactly representable in T.
func Unit[T numeric.Float](src Source) T {
	x := src.Uint64()
	var t T
	if unsafe.Sizeof(t) == 4 {
		return T((float64(x>>41) + 0.5) / (1 << 23))
	}
	return T((float64(x>>12) + 0.5) / (1 << 52))
}
