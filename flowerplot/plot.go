// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"
	"io"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"

	"github.com/plotbook/go-plotbook/flowers"
	"github.com/plotbook/go-plotbook/summary"
)

// layeredScatter rebuilds the base scatter in the grammar: one point
// layer, color bound to species through an ordinal scale.
func layeredScatter(w io.Writer, fs []flowers.Flower) error {
	plot := gg.NewPlot(flowers.Table(fs))
	plot.Add(gg.LayerPoints{
		X:     "sepal length",
		Y:     "petal length",
		Color: "species",
	})
	plot.Add(gg.Title("layered scatter by species"))
	return plot.WriteSVG(w, 600, 450)
}

// densityBySpecies applies a statistical transform: a kernel density
// estimate of petal length, computed per species and drawn as one
// path layer.
func densityBySpecies(w io.Writer, fs []flowers.Flower) error {
	plot := gg.NewPlot(flowers.Table(fs))
	plot.GroupBy("species")
	plot.Stat(ggstat.Density{X: "petal length"})
	plot.Add(gg.LayerPaths{
		X:     "petal length",
		Y:     "probability density",
		Color: "species",
	})
	plot.Add(gg.Title("petal length density by species"))
	return plot.WriteSVG(w, 600, 450)
}

// ecdfBySpecies draws the empirical CDF of sepal width per species.
func ecdfBySpecies(w io.Writer, fs []flowers.Flower) error {
	plot := gg.NewPlot(flowers.Table(fs))
	plot.GroupBy("species")
	plot.Stat(ggstat.ECDF{X: "sepal width"})
	plot.Add(gg.LayerSteps{LayerPaths: gg.LayerPaths{
		X:     "sepal width",
		Y:     "cumulative density",
		Color: "species",
	}})
	plot.Add(gg.Title("sepal width ECDF by species"))
	return plot.WriteSVG(w, 600, 450)
}

// facetedDensity splits the density section into one subplot per
// species instead of overlaying the curves.
func facetedDensity(w io.Writer, fs []flowers.Flower) error {
	plot := gg.NewPlot(flowers.Table(fs))
	plot.GroupBy("species")
	plot.Stat(ggstat.Density{X: "petal length"})
	plot.Add(gg.FacetX{Col: "species"})
	plot.Add(gg.LayerPaths{
		X: "petal length",
		Y: "probability density",
	})
	plot.Add(gg.Title("petal length density, faceted"))
	return plot.WriteSVG(w, 900, 350)
}

// meanSDPlot is the summary section: per-species mean and sample
// standard deviation of petal length, drawn as a band from mean-sd to
// mean+sd with the mean on top.
func meanSDPlot(w io.Writer, fs []flowers.Flower) error {
	sum, err := summary.Summarize(flowers.Table(fs), "species", "petal length")
	if err != nil {
		return err
	}

	means := sum.MustColumn("mean petal length").([]float64)
	sds := sum.MustColumn("sd petal length").([]float64)
	lo := make([]float64, len(means))
	hi := make([]float64, len(means))
	for i := range means {
		lo[i] = means[i] - sds[i]
		hi[i] = means[i] + sds[i]
	}
	tab := table.NewBuilder(sum).
		Add("mean-sd", lo).
		Add("mean+sd", hi).
		Done()

	plot := gg.NewPlot(tab)
	plot.SetScale("y", gg.NewLinearScaler().Include(0))
	plot.Add(gg.LayerArea{
		X:     "species",
		Upper: "mean+sd",
		Lower: "mean-sd",
		Fill:  plot.Const(color.Gray{192}),
	})
	plot.Add(gg.LayerLines{
		X: "species",
		Y: "mean petal length",
	})
	plot.Add(gg.LayerPoints{
		X: "species",
		Y: "mean petal length",
	})
	plot.Add(gg.Title("petal length mean and sd by species"))
	return plot.WriteSVG(w, 600, 450)
}
