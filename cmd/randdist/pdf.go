// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/aclements/go-moredist/stats"
)

const (
	pdfRows  = 20
	pdfWidth = 50
)

type densityFunc interface {
	PDF(x float64) float64
	Bounds() (float64, float64)
}

// fprintPDF prints d's density at pdfRows points across its bounds as
// a horizontal bar chart.
func fprintPDF(w io.Writer, d densityFunc) {
	lo, hi := d.Bounds()
	xs := make([]float64, pdfRows)
	ys := make([]float64, pdfRows)
	peak := 0.0
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/(pdfRows-1)
		ys[i] = d.PDF(xs[i])
		peak = math.Max(peak, ys[i])
	}
	for i := range xs {
		n := 0
		if peak > 0 {
			n = int(math.Round(ys[i] / peak * pdfWidth))
		}
		fmt.Fprintf(w, "%12.6g %10.4g %s\n", xs[i], ys[i], strings.Repeat("*", n))
	}
}

// sampleKDE returns the density estimate of s, reflected at 0 if s
// has no negative values.
func sampleKDE(s stats.Sample) *stats.KDEDist {
	k := stats.KDE{}
	if lo, _ := s.Bounds(); lo >= 0 {
		k.Min, k.Max = 0, math.Inf(1)
	}
	return k.From(s)
}
