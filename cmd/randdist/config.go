// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type config struct {
	dist    string
	params  floatList
	n       int
	seed    uint64
	rows    int
	cols    int
	prec    int
	conf    float64
	raw     bool
	kde     bool
	plot    string
	verbose bool
}

// matrix reports whether a matrix was requested instead of a sample.
func (c *config) matrix() bool {
	return c.rows != 0 || c.cols != 0
}

// floatList is a comma-separated list of numbers.
type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, x := range *l {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(s string) error {
	*l = (*l)[:0]
	if s == "" {
		return nil
	}
	for _, f := range strings.Split(s, ",") {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return err
		}
		*l = append(*l, x)
	}
	return nil
}

func parseFlags(args []string, out io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("randdist", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, "usage: randdist -dist name [-params p1,p2] [flags]\n\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.dist, "dist", "", "distribution `family`, such as norm or beta")
	fs.Var(&cfg.params, "params", "comma-separated distribution `parameters`")
	fs.IntVar(&cfg.n, "n", 1000, "number of variates to draw")
	fs.Uint64Var(&cfg.seed, "seed", 1, "engine seed")
	fs.IntVar(&cfg.rows, "rows", 0, "print a `rows`×cols matrix instead of a summary")
	fs.IntVar(&cfg.cols, "cols", 0, "matrix columns")
	fs.IntVar(&cfg.prec, "prec", 64, "kernel precision in bits, 32 or 64")
	fs.Float64Var(&cfg.conf, "conf", 0.95, "confidence level of the median interval")
	fs.BoolVar(&cfg.raw, "raw", false, "print each variate on its own line")
	fs.BoolVar(&cfg.kde, "kde", false, "print a kernel density estimate of the sample")
	fs.StringVar(&cfg.plot, "plot", "", "save a histogram of the sample to `file` (.png, .svg or .pdf)")
	fs.BoolVar(&cfg.verbose, "v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	switch {
	case cfg.dist == "":
		return nil, errors.New("-dist is required")
	case cfg.prec != 32 && cfg.prec != 64:
		return nil, fmt.Errorf("-prec must be 32 or 64, not %d", cfg.prec)
	case !cfg.matrix() && cfg.n <= 0:
		return nil, fmt.Errorf("-n must be positive, not %d", cfg.n)
	case !(cfg.conf > 0 && cfg.conf < 1):
		return nil, fmt.Errorf("-conf must be in (0, 1), not %v", cfg.conf)
	case cfg.matrix() && (cfg.raw || cfg.kde || cfg.plot != ""):
		return nil, errors.New("-raw, -kde and -plot cannot be combined with -rows or -cols")
	}
	return cfg, nil
}
