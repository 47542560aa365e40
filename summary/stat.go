// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package summary

import (
	"github.com/aclements/go-gg/table"
)

// Agg is a gg.Stat that replaces each table in a grouping with its
// per-group mean/sd summary, so summarization can be composed into a
// plot pipeline with Plot.Stat.
//
// Because gg.Stat has no error return, Agg panics on the errors
// Summarize reports, like table.Table.MustColumn does for unknown
// columns. Validate inputs with Summarize directly where a recoverable
// error is wanted.
type Agg struct {
	// X names the categorical column to group by.
	X string

	// Col names the numeric column to summarize.
	Col string
}

// F implements gg.Stat.
func (a Agg) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		s, err := Summarize(t, a.X, a.Col)
		if err != nil {
			panic(err)
		}
		return s
	})
}
