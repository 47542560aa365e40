// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command flowerplot walks through exploratory visualization of the
// flower measurement dataset, one SVG per section: a base scatter
// plot, layered grammar-of-graphics composition, statistical
// transforms, facet layering, and a per-species mean/sd summary plot.
//
// By default it plots the embedded dataset; -data substitutes any CSV
// file with the same schema.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/aclements/go-gg/table"

	"github.com/plotbook/go-plotbook/flowers"
	"github.com/plotbook/go-plotbook/summary"
)

var sections = []struct {
	file   string
	render func(io.Writer, []flowers.Flower) error
}{
	{"01-base-scatter.svg", baseScatter},
	{"02-layered-scatter.svg", layeredScatter},
	{"03-density.svg", densityBySpecies},
	{"04-ecdf.svg", ecdfBySpecies},
	{"05-facets.svg", facetedDensity},
	{"06-mean-sd.svg", meanSDPlot},
}

func main() {
	log.SetPrefix("flowerplot: ")
	log.SetFlags(0)

	var (
		flagOut   = flag.String("o", ".", "write SVG sections to `dir`")
		flagData  = flag.String("data", "", "read measurements from CSV `file` (default: embedded dataset)")
		flagTable = flag.Bool("table", false, "print the per-species summary table instead of plotting")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	fs, err := load(*flagData)
	if err != nil {
		log.Fatal(err)
	}

	if *flagTable {
		if err := printSummary(os.Stdout, fs); err != nil {
			log.Fatal(err)
		}
		return
	}

	for _, s := range sections {
		path := filepath.Join(*flagOut, s.file)
		f, err := os.Create(path)
		if err != nil {
			log.Fatal(err)
		}
		err = s.render(f, fs)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			log.Fatalf("%s: %v", path, err)
		}
	}
}

func load(path string) ([]flowers.Flower, error) {
	if path == "" {
		return flowers.Load()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return flowers.LoadFrom(f)
}

// printSummary computes the mean and sd tables separately and merges
// them on species, the joined output contract the plotting sections
// consume.
func printSummary(w io.Writer, fs []flowers.Flower) error {
	tab := flowers.Table(fs)
	mean, err := summary.MeanTable(tab, "species", "petal length")
	if err != nil {
		return err
	}
	sd, err := summary.SDTable(tab, "species", "petal length")
	if err != nil {
		return err
	}
	joined, err := summary.Join(mean, sd, "species")
	if err != nil {
		return err
	}
	table.Fprint(w, joined)
	return nil
}
