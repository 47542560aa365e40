// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package genome

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestParseBED(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
		want  []Region
	}{
		{"minimal", "chr1\t10\t20", []Region{
			{"chr1", 10, 20, "", 0, None},
		}},
		{"full", "chr2\t5\t15\tgeX\t900\t-", []Region{
			{"chr2", 5, 15, "geX", 900, Minus},
		}},
		{"headers and comments", `track name=demo
browser position chr1
# a comment

chr1 10 20 geA 1 +`, []Region{
			{"chr1", 10, 20, "geA", 1, Plus},
		}},
		{"short line", "chr1\t10", nil},
		{"bad start", "chr1\tx\t20", nil},
		{"bad strand", "chr1\t10\t20\tg\t0\t*", nil},
		{"inverted interval", "chr1\t30\t20", nil},
		{"negative start", "chr1\t-5\t20", nil},
	} {
		got, err := ParseBED(strings.NewReader(test.input))
		if test.want == nil {
			if err == nil {
				t.Errorf("%s: want error; got %v", test.name, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error %v", test.name, err)
		} else if !reflect.DeepEqual(test.want, got) {
			t.Errorf("%s: want %v; got %v", test.name, test.want, got)
		}
	}
}

func TestSample(t *testing.T) {
	rs := Sample()
	if len(rs) == 0 {
		t.Fatal("embedded track is empty")
	}
	if want := []string{"chr1", "chr2", "chr3", "chr4", "chr5", "chr6"}; !reflect.DeepEqual(want, Chroms(rs)) {
		t.Errorf("chroms should be %v; got %v", want, Chroms(rs))
	}
}

func TestLengths(t *testing.T) {
	rs := []Region{
		{"chr1", 0, 100, "", 0, None},
		{"chr1", 50, 400, "", 0, None},
		{"chr2", 10, 30, "", 0, None},
	}
	want := map[string]int{"chr1": 400, "chr2": 30}
	if got := Lengths(rs); !reflect.DeepEqual(want, got) {
		t.Errorf("lengths should be %v; got %v", want, got)
	}
}

func TestTable(t *testing.T) {
	rs := []Region{
		{"chr1", 10, 30, "geA", 5, Plus},
		{"chr2", 0, 100, "geB", 7, Minus},
	}
	tab := Table(rs)

	want := []string{"chrom", "start", "end", "midpoint", "span", "feature", "strand"}
	if !reflect.DeepEqual(want, tab.Columns()) {
		t.Errorf("columns should be %v; got %v", want, tab.Columns())
	}
	if got := tab.MustColumn("midpoint"); !reflect.DeepEqual([]float64{20, 50}, got) {
		t.Errorf("midpoints should be [20 50]; got %v", got)
	}
	if got := tab.MustColumn("span"); !reflect.DeepEqual([]int{20, 100}, got) {
		t.Errorf("spans should be [20 100]; got %v", got)
	}
	if got := tab.MustColumn("strand"); !reflect.DeepEqual([]string{"+", "-"}, got) {
		t.Errorf("strands should be [+ -]; got %v", got)
	}
}

func TestCircularWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	c := Circular{Track: Sample(), Size: 400}
	if err := c.WriteSVG(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("output is not an SVG document:\n%.200s", out)
	}
	// One arc per reference plus one per feature.
	want := len(Chroms(Sample())) + len(Sample())
	if got := strings.Count(out, "<path"); got != want {
		t.Errorf("want %d paths; got %d", want, got)
	}
}

func TestCircularEmptyTrack(t *testing.T) {
	var buf bytes.Buffer
	if err := (Circular{}).WriteSVG(&buf); err == nil {
		t.Fatal("want error for empty track")
	}
}
