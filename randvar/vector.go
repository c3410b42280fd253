// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randvar

import (
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/aclements/go-moredist/numeric"
	"github.com/aclements/go-moredist/rng"
)

// A Vector is a strided view of N elements of Data: element i is
// Data[i*Inc]. Its layout matches blas64.Vector.
type Vector[T numeric.Float] struct {
	N    int
	Inc  int
	Data []T
}

// VectorOf returns a unit-stride Vector over all of xs.
func VectorOf[T numeric.Float](xs []T) Vector[T] {
	return Vector[T]{N: len(xs), Inc: 1, Data: xs}
}

// FromBLAS returns a Vector sharing v's storage.
func FromBLAS(v blas64.Vector) Vector[float64] {
	return Vector[float64]{N: v.N, Inc: v.Inc, Data: v.Data}
}

// At returns element i of v.
func (v Vector[T]) At(i int) T {
	if i < 0 || i >= v.N {
		panic("randvar: vector index out of range")
	}
	return v.Data[i*v.Inc]
}

func (v Vector[T]) check() {
	switch {
	case v.N < 0:
		panic("randvar: negative vector length")
	case v.Inc <= 0:
		panic("randvar: non-positive vector increment")
	case v.N > 0 && (v.N-1)*v.Inc >= len(v.Data):
		panic("randvar: vector data too short")
	}
}

// FillFunc sets each element of dst, in index order, to k(r). It
// writes only the N strided elements of dst.Data and never reads
// them. FillFunc panics if dst's geometry does not fit its Data.
func FillFunc[T numeric.Float](dst Vector[T], k func(r rng.Source) T, r rng.Source) {
	dst.check()
	for i := 0; i < dst.N; i++ {
		dst.Data[i*dst.Inc] = k(r)
	}
}

// Fill sets each element of dst, in index order, to s.Rand(r). If s
// is invalid, every element is NaN and r is not advanced.
func Fill[T numeric.Float](dst Vector[T], s Sampler[T], r rng.Source) {
	FillFunc(dst, s.Rand, r)
}

func fillNaN[T numeric.Float](dst Vector[T]) {
	for i := 0; i < dst.N; i++ {
		dst.Data[i*dst.Inc] = nan[T]()
	}
}

// Broadcast1 fills dst from a per-element parameter sequence. Element
// i is drawn from mk(p[i%len(p)]), so a short p cycles. If p is empty
// there is no valid parameter set: every element is NaN and r is not
// advanced.
func Broadcast1[T numeric.Float, P any, S Sampler[T]](dst Vector[T], p []P, mk func(P) S, r rng.Source) {
	dst.check()
	if len(p) == 0 {
		fillNaN(dst)
		return
	}
	for i := 0; i < dst.N; i++ {
		dst.Data[i*dst.Inc] = mk(p[i%len(p)]).Rand(r)
	}
}

// Broadcast2 is Broadcast1 for two-parameter distributions. Element i
// is drawn from mk(p[i%len(p)], q[i%len(q)]).
func Broadcast2[T numeric.Float, P, Q any, S Sampler[T]](dst Vector[T], p []P, q []Q, mk func(P, Q) S, r rng.Source) {
	dst.check()
	if len(p) == 0 || len(q) == 0 {
		fillNaN(dst)
		return
	}
	for i := 0; i < dst.N; i++ {
		dst.Data[i*dst.Inc] = mk(p[i%len(p)], q[i%len(q)]).Rand(r)
	}
}
