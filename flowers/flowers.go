// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flowers loads the flower measurement dataset used by the
// plotting walk-throughs.
//
// The dataset is 150 records of four measurements across three
// species. It ships embedded in the package; LoadFrom accepts the
// same CSV schema from any reader.
package flowers

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/go-gota/gota/dataframe"
)

//go:embed flowers.csv
var flowersCSV string

// Flower is a single measurement record. Species is never empty in a
// successfully loaded dataset.
type Flower struct {
	Species     string
	SepalLength float64
	SepalWidth  float64
	PetalLength float64
	PetalWidth  float64
}

// columns is the required CSV schema, in order.
var columns = []string{"species", "sepal_length", "sepal_width", "petal_length", "petal_width"}

// Load returns the embedded dataset.
func Load() ([]Flower, error) {
	return LoadFrom(strings.NewReader(flowersCSV))
}

// LoadFrom reads a dataset in the embedded CSV's schema from r: a
// header row naming at least the species, sepal_length, sepal_width,
// petal_length, and petal_width columns, then one record per row.
// Numeric fields that fail to parse become NaN; an empty species is
// an error.
func LoadFrom(r io.Reader) ([]Flower, error) {
	df := dataframe.ReadCSV(r)
	if df.Err != nil {
		return nil, df.Err
	}

	have := make(map[string]bool)
	for _, name := range df.Names() {
		have[name] = true
	}
	for _, name := range columns {
		if !have[name] {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	species := df.Col("species").Records()
	sl := df.Col("sepal_length").Float()
	sw := df.Col("sepal_width").Float()
	pl := df.Col("petal_length").Float()
	pw := df.Col("petal_width").Float()

	out := make([]Flower, df.Nrow())
	for i := range out {
		if species[i] == "" {
			return nil, fmt.Errorf("record %d: empty species", i+1)
		}
		out[i] = Flower{species[i], sl[i], sw[i], pl[i], pw[i]}
	}
	return out, nil
}

// Table converts records to a go-gg table with columns "species",
// "sepal length", "sepal width", "petal length", and "petal width".
func Table(fs []Flower) *table.Table {
	species := make([]string, len(fs))
	sl := make([]float64, len(fs))
	sw := make([]float64, len(fs))
	pl := make([]float64, len(fs))
	pw := make([]float64, len(fs))
	for i, f := range fs {
		species[i] = f.Species
		sl[i] = f.SepalLength
		sw[i] = f.SepalWidth
		pl[i] = f.PetalLength
		pw[i] = f.PetalWidth
	}

	return new(table.Builder).
		Add("species", species).
		Add("sepal length", sl).
		Add("sepal width", sw).
		Add("petal length", pl).
		Add("petal width", pw).
		Done()
}

// Species returns the distinct species in fs, in order of first
// appearance.
func Species(fs []Flower) []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range fs {
		if !seen[f.Species] {
			seen[f.Species] = true
			out = append(out, f.Species)
		}
	}
	return out
}
