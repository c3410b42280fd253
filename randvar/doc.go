// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randvar generates pseudo-random variates from the
// distributions in package stats.
//
// Each distribution has a generic kernel type, such as Beta[T], whose
// Rand method draws one variate of precision T from an rng.Source.
// Kernels check their parameters before touching the source: a
// kernel with parameters outside its distribution's domain returns
// NaN and leaves the source where it was.
//
// Each distribution also has promoted entry points that accept
// parameters of any numeric type and pick the working precision with
// numeric.Resolve:
//
//	RBeta(a, b, r)               // one draw from r
//	RBetaSeed(a, b, seed)        // one draw from a fresh engine
//	RBetaMatrix(m, n, a, b, r)   // an m×n matrix of draws
//
// Vector and matrix output is filled in index order (row-major for
// matrices) from a single source, so element i of a fill equals the
// i'th scalar draw from the same source state.
//
// Nothing in this package is safe for concurrent use with a shared
// source. Use rng.Engine.Split to give each goroutine its own engine.
package randvar // import "github.com/aclements/go-moredist/randvar"
