// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// randdist draws variates from a named distribution and describes
// them, or prints them as a matrix.
//
// Usage:
//
//	randdist -dist beta -params 3,2 -n 10000 -seed 1776
//	randdist -dist norm -params 0,1 -rows 3 -cols 4
//	randdist -dist gamma -params 2,1 -kde -plot gamma.png
//	randdist -dist pois -params 4 -raw -n 20
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/op/go-logging"
	"gonum.org/v1/gonum/mat"

	"github.com/aclements/go-moredist/randvar"
	"github.com/aclements/go-moredist/rng"
	"github.com/aclements/go-moredist/stats"
)

var log = logging.MustGetLogger("randdist")

func startLogging(w io.Writer, verbose bool) {
	backend := logging.NewLogBackend(w, "randdist: ", 0)
	formatter := logging.MustStringFormatter("%{level:8s} %{shortfile} | %{message}")
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, formatter))
	leveled.SetLevel(logging.WARNING, "")
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	}
	logging.SetBackend(leveled)
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, "randdist:", err)
		os.Exit(2)
	}
	startLogging(os.Stderr, cfg.verbose)

	if err := run(cfg, os.Stdout); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(cfg *config, w io.Writer) error {
	fam, err := randvar.Lookup(cfg.dist)
	if err != nil {
		return err
	}
	k, err := fam.Kernel(cfg.prec == 32, cfg.params...)
	if err != nil {
		return err
	}
	log.Debugf("%s%v at %d-bit precision, seed %d", fam.Name, []float64(cfg.params), cfg.prec, cfg.seed)

	e := rng.New(cfg.seed)
	if cfg.matrix() {
		m, err := randvar.Matrix(cfg.rows, cfg.cols, k, e)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%v\n", mat.Formatted(m, mat.Squeeze()))
		return nil
	}

	xs := make([]float64, cfg.n)
	randvar.FillFunc[float64](randvar.VectorOf(xs), k, e)
	if cfg.raw {
		for _, x := range xs {
			fmt.Fprintf(w, "%.17g\n", x)
		}
		return nil
	}
	if math.IsNaN(xs[0]) {
		return errors.New(fam.String() + ": parameters out of domain")
	}
	s := stats.Sample{Xs: xs}
	s.Sort()
	summarize(w, s, cfg.conf)
	if !cfg.kde && cfg.plot == "" {
		return nil
	}

	kde := sampleKDE(s)
	log.Debugf("KDE bandwidth %.6g", kde.Bandwidth())
	if cfg.kde {
		fmt.Fprintln(w)
		fprintPDF(w, kde)
	}
	if cfg.plot != "" {
		title := fmt.Sprintf("%s%v, n=%d", fam.Name, []float64(cfg.params), len(xs))
		if err := writeHistogram(cfg.plot, title, s.Xs, kde); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.plot, err)
		}
		log.Infof("wrote %s", cfg.plot)
	}
	return nil
}

func summarize(w io.Writer, s stats.Sample, conf float64) {
	fmt.Fprintf(w, "N %d  sum %.6g  mean %.6g", len(s.Xs), s.Sum(), s.Mean())
	gmean := s.GeoMean()
	if !math.IsNaN(gmean) {
		fmt.Fprintf(w, "  gmean %.6g", gmean)
	}
	fmt.Fprintf(w, "  std dev %.6g  variance %.6g\n", s.StdDev(), s.Variance())
	fmt.Fprintln(w)

	// Quartiles and tails.
	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		fmt.Fprintf(w, "%8s %.6g\n", label, s.Percentile(float64(p)/100))
	}
	fmt.Fprintln(w)

	ci := stats.QuantileCI(len(s.Xs), 0.5, conf)
	lo, hi := ci.FromSample(s)
	fmt.Fprintf(w, "median %.6g  %.4g%% CI [%.6g, %.6g]\n", s.Quantile(0.5), 100*ci.Confidence, lo, hi)
	if len(s.Xs) > 1 {
		_, mlo, mhi := stats.MeanCI(s.Xs, conf)
		fmt.Fprintf(w, "mean   %.6g  %.4g%% CI [%.6g, %.6g]\n", s.Mean(), 100*conf, mlo, mhi)
	}
}
