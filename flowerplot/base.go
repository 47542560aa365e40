// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/plotbook/go-plotbook/flowers"
)

var speciesColors = []drawing.Color{
	chart.ColorBlue,
	chart.ColorGreen,
	chart.ColorOrange,
	chart.ColorRed,
}

func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

// baseScatter is the pre-grammar rung of the walk-through: a plain
// scatter of two measurements, one series per species.
func baseScatter(w io.Writer, fs []flowers.Flower) error {
	var series []chart.Series
	for i, sp := range flowers.Species(fs) {
		var xs, ys []float64
		for _, f := range fs {
			if f.Species != sp {
				continue
			}
			xs = append(xs, f.SepalLength)
			ys = append(ys, f.PetalLength)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    sp,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(speciesColors[i%len(speciesColors)]),
		})
	}

	ch := chart.Chart{
		Title:  "sepal length vs petal length",
		Width:  600,
		Height: 450,
		XAxis:  chart.XAxis{Name: "sepal length"},
		YAxis:  chart.YAxis{Name: "petal length"},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(chart.SVG, w)
}
