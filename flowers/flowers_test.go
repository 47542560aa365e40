// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flowers

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	fs, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(fs) != 150 {
		t.Fatalf("want 150 records; got %d", len(fs))
	}
	for i, f := range fs {
		if f.Species == "" {
			t.Fatalf("record %d: empty species", i)
		}
		for _, v := range []float64{f.SepalLength, f.SepalWidth, f.PetalLength, f.PetalWidth} {
			if math.IsNaN(v) || v <= 0 {
				t.Fatalf("record %d: bad measurement %v", i, v)
			}
		}
	}
	if n := len(Species(fs)); n != 3 {
		t.Fatalf("want 3 species; got %d: %v", n, Species(fs))
	}
}

func TestLoadFrom(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
		ok    bool
	}{
		{"valid", `species,sepal_length,sepal_width,petal_length,petal_width
setosa,5.1,3.5,1.4,0.2
virginica,6.3,3.3,6.0,2.5`, true},
		{"missing column", `species,sepal_length,sepal_width,petal_length
setosa,5.1,3.5,1.4`, false},
		{"empty species", `species,sepal_length,sepal_width,petal_length,petal_width
,5.1,3.5,1.4,0.2`, false},
	} {
		fs, err := LoadFrom(strings.NewReader(test.input))
		if test.ok && err != nil {
			t.Errorf("%s: unexpected error %v", test.name, err)
		} else if !test.ok && err == nil {
			t.Errorf("%s: want error; got %v", test.name, fs)
		}
	}
}

func TestLoadFromBadNumber(t *testing.T) {
	// A measurement cell that fails to parse loads as NaN rather
	// than failing the whole dataset.
	fs, err := LoadFrom(strings.NewReader(`species,sepal_length,sepal_width,petal_length,petal_width
setosa,oops,3.5,1.4,0.2
virginica,6.3,3.3,6.0,2.5`))
	if err != nil {
		t.Fatal(err)
	}
	if len(fs) != 2 {
		t.Fatalf("want 2 records; got %d", len(fs))
	}
	if !math.IsNaN(fs[0].SepalLength) {
		t.Errorf("unparseable sepal length should be NaN; got %v", fs[0].SepalLength)
	}
	if fs[0].SepalWidth != 3.5 || fs[1].SepalLength != 6.3 {
		t.Errorf("parseable cells should be unaffected; got %+v", fs)
	}
}

func TestTable(t *testing.T) {
	fs := []Flower{
		{"setosa", 5.1, 3.5, 1.4, 0.2},
		{"virginica", 6.3, 3.3, 6.0, 2.5},
	}
	tab := Table(fs)

	want := []string{"species", "sepal length", "sepal width", "petal length", "petal width"}
	if !reflect.DeepEqual(want, tab.Columns()) {
		t.Errorf("columns should be %v; got %v", want, tab.Columns())
	}
	if tab.Len() != 2 {
		t.Errorf("want 2 rows; got %d", tab.Len())
	}
	if got := tab.MustColumn("species"); !reflect.DeepEqual([]string{"setosa", "virginica"}, got) {
		t.Errorf("species column should be [setosa virginica]; got %v", got)
	}
	if got := tab.MustColumn("petal length"); !reflect.DeepEqual([]float64{1.4, 6.0}, got) {
		t.Errorf("petal length column should be [1.4 6]; got %v", got)
	}
}
