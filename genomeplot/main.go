// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command genomeplot plots a genomic annotation track two ways: a
// linear per-chromosome layered plot and a circular plot of the whole
// genome.
//
// The track is read from a BED file given with -bed, or an embedded
// sample track if the flag is omitted.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/plotbook/go-plotbook/genome"
)

func main() {
	log.SetPrefix("genomeplot: ")
	log.SetFlags(0)

	var (
		flagBED = flag.String("bed", "", "read annotations from BED `file` (default: embedded sample)")
		flagOut = flag.String("o", ".", "write SVG plots to `dir`")
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

	track, err := load(*flagBED)
	if err != nil {
		log.Fatal(err)
	}

	outputs := []struct {
		file   string
		render func(io.Writer, []genome.Region) error
	}{
		{"tracks.svg", linearPlot},
		{"circular.svg", circularPlot},
	}
	for _, out := range outputs {
		path := filepath.Join(*flagOut, out.file)
		f, err := os.Create(path)
		if err != nil {
			log.Fatal(err)
		}
		err = out.render(f, track)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			log.Fatalf("%s: %v", path, err)
		}
	}
}

func load(path string) ([]genome.Region, error) {
	if path == "" {
		return genome.Sample(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return genome.ParseBED(f)
}

// linearPlot draws each feature as a horizontal segment at its
// feature row, faceted by chromosome. Unpivoting start/end into a
// single position column gives the two endpoints of each segment.
func linearPlot(w io.Writer, track []genome.Region) error {
	tab := genome.Table(track)
	nrows := len(genome.Chroms(track))

	plot := gg.NewPlot(table.Unpivot(tab, "edge", "position", "start", "end"))
	plot.GroupBy("feature")
	plot.Add(gg.FacetY{Col: "chrom", SplitYScales: true})
	plot.Add(gg.LayerLines{
		X:     "position",
		Y:     "feature",
		Color: "strand",
	})
	plot.Add(gg.Title("annotation track by chromosome"))
	return plot.WriteSVG(w, 700, 160*nrows)
}

func circularPlot(w io.Writer, track []genome.Region) error {
	c := genome.Circular{Track: track, Size: 640}
	return c.WriteSVG(w)
}
