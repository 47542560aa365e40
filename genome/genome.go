// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package genome models genomic annotation tracks and renders them as
// linear or circular plots.
//
// A track is a sequence of half-open annotated regions on named
// references (chromosomes). Tracks are read from a minimal subset of
// the BED format; retrieving annotations from live services is out of
// scope.
package genome

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// Strand is the orientation of a region on its reference.
type Strand byte

const (
	Plus  Strand = '+'
	Minus Strand = '-'
	None  Strand = '.'
)

func (s Strand) String() string {
	return string(byte(s))
}

// Region is a half-open annotated interval [Start, End) in base pairs
// on a named reference.
type Region struct {
	// Chrom names the reference. It is never empty in a valid
	// Region.
	Chrom string

	// Start and End give the 0-based half-open extent of the
	// region. 0 <= Start < End.
	Start, End int

	// Name labels the annotated feature.
	Name string

	// Score is the BED score column, 0-1000.
	Score int

	// Strand is the feature orientation, or None if unknown.
	Strand Strand
}

func (r Region) String() string {
	return fmt.Sprintf("%s:%d-%d(%s)", r.Chrom, r.Start, r.End, r.Strand)
}

// Len returns the region's span in base pairs.
func (r Region) Len() int {
	return r.End - r.Start
}

// Mid returns the region's midpoint coordinate.
func (r Region) Mid() float64 {
	return float64(r.Start+r.End) / 2
}

func (r Region) check() error {
	if r.Chrom == "" {
		return fmt.Errorf("region %v: empty reference name", r)
	}
	if r.Start < 0 || r.Start >= r.End {
		return fmt.Errorf("region %v: bad interval [%d, %d)", r, r.Start, r.End)
	}
	return nil
}

//go:embed sample.bed
var sampleBED string

// Sample returns the embedded sample annotation track.
func Sample() []Region {
	rs, err := ParseBED(strings.NewReader(sampleBED))
	if err != nil {
		panic("genome: bad embedded track: " + err.Error())
	}
	return rs
}

// ParseBED reads an annotation track from r in a subset of the BED
// format: tab- or space-separated lines of chrom, start, end, and
// optionally name, score, and strand. Blank lines, comment lines, and
// track/browser header lines are skipped.
func ParseBED(r io.Reader) ([]Region, error) {
	var out []Region
	lineno := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") ||
			strings.HasPrefix(line, "track") || strings.HasPrefix(line, "browser") {
			continue
		}

		f := strings.Fields(line)
		if len(f) < 3 {
			return nil, fmt.Errorf("line %d: %d fields; need at least chrom, start, end", lineno, len(f))
		}
		start, err := strconv.Atoi(f[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad start %q", lineno, f[1])
		}
		end, err := strconv.Atoi(f[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad end %q", lineno, f[2])
		}

		reg := Region{Chrom: f[0], Start: start, End: end, Strand: None}
		if len(f) > 3 {
			reg.Name = f[3]
		}
		if len(f) > 4 {
			score, err := strconv.Atoi(f[4])
			if err != nil {
				return nil, fmt.Errorf("line %d: bad score %q", lineno, f[4])
			}
			reg.Score = score
		}
		if len(f) > 5 {
			switch f[5] {
			case "+":
				reg.Strand = Plus
			case "-":
				reg.Strand = Minus
			case ".":
				reg.Strand = None
			default:
				return nil, fmt.Errorf("line %d: bad strand %q", lineno, f[5])
			}
		}
		if err := reg.check(); err != nil {
			return nil, fmt.Errorf("line %d: %v", lineno, err)
		}
		out = append(out, reg)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Chroms returns the distinct reference names in rs, in order of
// first appearance.
func Chroms(rs []Region) []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range rs {
		if !seen[r.Chrom] {
			seen[r.Chrom] = true
			out = append(out, r.Chrom)
		}
	}
	return out
}

// Lengths returns, for each reference in rs, the largest end
// coordinate observed on it. It is a usable stand-in for true
// reference lengths when none are supplied.
func Lengths(rs []Region) map[string]int {
	out := make(map[string]int)
	for _, r := range rs {
		if r.End > out[r.Chrom] {
			out[r.Chrom] = r.End
		}
	}
	return out
}

// Table converts a track to a go-gg table with columns "chrom",
// "start", "end", "midpoint", "span", "feature", and "strand", one
// row per region.
func Table(rs []Region) *table.Table {
	chrom := make([]string, len(rs))
	start := make([]int, len(rs))
	end := make([]int, len(rs))
	mid := make([]float64, len(rs))
	span := make([]int, len(rs))
	feature := make([]string, len(rs))
	strand := make([]string, len(rs))
	for i, r := range rs {
		chrom[i] = r.Chrom
		start[i] = r.Start
		end[i] = r.End
		mid[i] = r.Mid()
		span[i] = r.Len()
		feature[i] = r.Name
		strand[i] = r.Strand.String()
	}

	return new(table.Builder).
		Add("chrom", chrom).
		Add("start", start).
		Add("end", end).
		Add("midpoint", mid).
		Add("span", span).
		Add("feature", feature).
		Add("strand", strand).
		Done()
}
