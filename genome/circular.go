// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package genome

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// Circular renders an annotation track as a circular plot: one arc
// per reference on an outer ring, one arc per feature on an inner
// ring, colored by strand.
//
// The geometry is a fixed polar placement of SVG arc paths. Each
// WriteSVG call is independent; a Circular holds no rendering state.
type Circular struct {
	// Track is the annotation track to render.
	Track []Region

	// Lengths optionally gives the length of each reference in
	// base pairs. References missing from Lengths (or all of them,
	// if Lengths is nil) use the largest end coordinate observed
	// in Track.
	Lengths map[string]int

	// Size is the width and height of the SVG in pixels. If zero,
	// it defaults to 640.
	Size int

	// Gap is the angular gap between reference arcs in radians.
	// If zero, it defaults to 0.04.
	Gap float64
}

var strandColors = map[Strand]string{
	Plus:  "#4682b4",
	Minus: "#e2872c",
	None:  "#9e9e9e",
}

// WriteSVG renders the plot as SVG to w.
func (c Circular) WriteSVG(w io.Writer) error {
	if len(c.Track) == 0 {
		return fmt.Errorf("empty annotation track")
	}

	size := c.Size
	if size == 0 {
		size = 640
	}
	gap := c.Gap
	if gap == 0 {
		gap = 0.04
	}

	chroms := Chroms(c.Track)
	lengths := Lengths(c.Track)
	total := 0
	for _, ch := range chroms {
		if n, ok := c.Lengths[ch]; ok && n > lengths[ch] {
			lengths[ch] = n
		}
		total += lengths[ch]
	}

	// Angular span of one base pair. Arcs start at 12 o'clock and
	// advance clockwise.
	scale := (2*math.Pi - gap*float64(len(chroms))) / float64(total)
	offsets := make(map[string]float64)
	angle := -math.Pi / 2
	for _, ch := range chroms {
		offsets[ch] = angle
		angle += scale*float64(lengths[ch]) + gap
	}

	cx, cy := size/2, size/2
	outerR := 0.46 * float64(size)
	chromW := 0.030 * float64(size)
	featR := outerR - chromW - 0.015*float64(size)
	featW := 0.045 * float64(size)

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(size, size)
	canvas.Gstyle("font-family:sans-serif")

	for _, ch := range chroms {
		a0 := offsets[ch]
		a1 := a0 + scale*float64(lengths[ch])
		canvas.Path(arcPath(float64(cx), float64(cy), outerR-chromW, outerR, a0, a1),
			"fill:#d7d7d7;stroke:#555;stroke-width:1")

		mid := (a0 + a1) / 2
		lx := float64(cx) + (outerR+0.02*float64(size))*math.Cos(mid)
		ly := float64(cy) + (outerR+0.02*float64(size))*math.Sin(mid)
		canvas.Text(round(lx), round(ly), ch,
			"text-anchor:middle;dominant-baseline:middle;font-size:12px")
	}

	for _, r := range c.Track {
		a0 := offsets[r.Chrom] + scale*float64(r.Start)
		a1 := offsets[r.Chrom] + scale*float64(r.End)
		canvas.Path(arcPath(float64(cx), float64(cy), featR-featW, featR, a0, a1),
			"fill:"+strandColors[r.Strand]+";stroke:none")
	}

	canvas.Gend()
	canvas.End()
	return ew.err
}

// arcPath returns the SVG path data for an annulus sector between
// radii r0 < r1 spanning angles a0 to a1 around (cx, cy).
func arcPath(cx, cy, r0, r1, a0, a1 float64) string {
	large := 0
	if a1-a0 > math.Pi {
		large = 1
	}
	x0, y0 := cx+r1*math.Cos(a0), cy+r1*math.Sin(a0)
	x1, y1 := cx+r1*math.Cos(a1), cy+r1*math.Sin(a1)
	x2, y2 := cx+r0*math.Cos(a1), cy+r0*math.Sin(a1)
	x3, y3 := cx+r0*math.Cos(a0), cy+r0*math.Sin(a0)
	return fmt.Sprintf("M%.2f,%.2f A%.2f,%.2f 0 %d,1 %.2f,%.2f L%.2f,%.2f A%.2f,%.2f 0 %d,0 %.2f,%.2f Z",
		x0, y0, r1, r1, large, x1, y1, x2, y2, r0, r0, large, x3, y3)
}

func round(x float64) int {
	return int(x + 0.5)
}

// errWriter keeps the first write error so a render over many svgo
// calls can report failure once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
