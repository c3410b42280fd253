// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const histBins = 40

// writeHistogram saves a normalized histogram of xs, overlaid with
// the density d, to path. The image format follows path's extension.
func writeHistogram(path, title string, xs []float64, d densityFunc) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "density"

	h, err := plotter.NewHist(plotter.Values(xs), histBins)
	if err != nil {
		return err
	}
	h.Normalize(1)
	p.Add(h)

	f := plotter.NewFunction(d.PDF)
	f.Color = color.RGBA{R: 196, G: 32, B: 32, A: 255}
	f.Width = vg.Points(1.5)
	p.Add(f)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
