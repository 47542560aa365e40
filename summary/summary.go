// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package summary builds per-group summary tables from go-gg tables.
//
// The central operation is Summarize, which partitions a table by a
// categorical column and reports the arithmetic mean and the sample
// standard deviation (n-1 denominator) of a numeric column for each
// partition. The output is itself a go-gg table whose columns follow
// ggstat's aggregate naming convention ("mean x", "sd x"), so it can
// be handed directly to a plot.
//
// Groups appear in the output in order of first appearance in the
// input. A group with a single observation has an undefined sample
// standard deviation and is reported as NaN rather than an error.
package summary

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// ErrEmptyData is returned when the input table has no rows.
var ErrEmptyData = errors.New("empty data set")

// InvalidFieldError indicates that a requested column is absent from
// the input's schema or has an unusable type.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// JoinKeyMismatchError indicates that the key sets of the two tables
// passed to Join disagree. LeftOnly and RightOnly list the keys that
// appear on only one side, in order of first appearance.
type JoinKeyMismatchError struct {
	LeftOnly, RightOnly []string
}

func (e *JoinKeyMismatchError) Error() string {
	var parts []string
	if len(e.LeftOnly) > 0 {
		parts = append(parts, fmt.Sprintf("only in left table: %s", strings.Join(e.LeftOnly, ", ")))
	}
	if len(e.RightOnly) > 0 {
		parts = append(parts, fmt.Sprintf("only in right table: %s", strings.Join(e.RightOnly, ", ")))
	}
	return "join key mismatch: " + strings.Join(parts, "; ")
}

// Summarize partitions g by the groupField column and returns a table
// with one row per distinct group value, in order of first
// appearance, with columns groupField, "mean <valueField>", and
// "sd <valueField>".
//
// The standard deviation is the sample standard deviation (n-1
// denominator). A group with fewer than two observations gets a NaN
// standard deviation. If g spans multiple tables, Summarize operates
// on the concatenation of their rows.
func Summarize(g table.Grouping, groupField, valueField string) (*table.Table, error) {
	keys, parts, err := partition(g, groupField, valueField)
	if err != nil {
		return nil, err
	}

	means := make([]float64, len(keys))
	sds := make([]float64, len(keys))
	for i, k := range keys {
		xs := parts[k]
		means[i] = stats.Mean(xs)
		sds[i] = sd(xs)
	}

	return new(table.Builder).
		Add(groupField, keys).
		Add("mean "+valueField, means).
		Add("sd "+valueField, sds).
		Done(), nil
}

// MeanTable is like Summarize, but reports only the per-group mean,
// in a table with columns groupField and "mean <valueField>".
func MeanTable(g table.Grouping, groupField, valueField string) (*table.Table, error) {
	keys, parts, err := partition(g, groupField, valueField)
	if err != nil {
		return nil, err
	}
	means := make([]float64, len(keys))
	for i, k := range keys {
		means[i] = stats.Mean(parts[k])
	}
	return new(table.Builder).
		Add(groupField, keys).
		Add("mean "+valueField, means).
		Done(), nil
}

// SDTable is like Summarize, but reports only the per-group sample
// standard deviation, in a table with columns groupField and
// "sd <valueField>". Singleton groups are NaN, as in Summarize.
func SDTable(g table.Grouping, groupField, valueField string) (*table.Table, error) {
	keys, parts, err := partition(g, groupField, valueField)
	if err != nil {
		return nil, err
	}
	sds := make([]float64, len(keys))
	for i, k := range keys {
		sds[i] = sd(parts[k])
	}
	return new(table.Builder).
		Add(groupField, keys).
		Add("sd "+valueField, sds).
		Done(), nil
}

// Join merges two tables on the key column, which must be present in
// both and unique within each. The result has left's rows in order,
// left's remaining columns, then right's remaining columns reordered
// to match left's keys.
//
// Join is strict: if the two key sets differ, it fails with a
// *JoinKeyMismatchError rather than silently dropping unmatched rows.
func Join(left, right *table.Table, key string) (*table.Table, error) {
	lkeys, err := keyColumn(left, key)
	if err != nil {
		return nil, err
	}
	rkeys, err := keyColumn(right, key)
	if err != nil {
		return nil, err
	}

	rindex := make(map[string]int, len(rkeys))
	for i, k := range rkeys {
		rindex[k] = i
	}
	lindex := make(map[string]bool, len(lkeys))
	for _, k := range lkeys {
		lindex[k] = true
	}
	var mismatch JoinKeyMismatchError
	for _, k := range lkeys {
		if _, ok := rindex[k]; !ok {
			mismatch.LeftOnly = append(mismatch.LeftOnly, k)
		}
	}
	for _, k := range rkeys {
		if !lindex[k] {
			mismatch.RightOnly = append(mismatch.RightOnly, k)
		}
	}
	if len(mismatch.LeftOnly) > 0 || len(mismatch.RightOnly) > 0 {
		return nil, &mismatch
	}

	b := table.NewBuilder(left)
	perm := make([]int, len(lkeys))
	for i, k := range lkeys {
		perm[i] = rindex[k]
	}
	for _, col := range right.Columns() {
		if col == key {
			continue
		}
		b.Add(col, reorder(right.MustColumn(col), perm))
	}
	return b.Done(), nil
}

// keyColumn extracts the key column of t as strings and verifies that
// the keys are unique.
func keyColumn(t *table.Table, key string) ([]string, error) {
	col := t.Column(key)
	if col == nil {
		return nil, &InvalidFieldError{key, "no such column"}
	}
	keys := stringify(col)
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			return nil, &InvalidFieldError{key, fmt.Sprintf("duplicate key %q", k)}
		}
		seen[k] = true
	}
	return keys, nil
}

// reorder returns a copy of column col with row i taken from
// col[perm[i]].
func reorder(col table.Slice, perm []int) table.Slice {
	rv := reflect.ValueOf(col)
	out := reflect.MakeSlice(rv.Type(), len(perm), len(perm))
	for i, j := range perm {
		out.Index(i).Set(rv.Index(j))
	}
	return out.Interface()
}

// partition splits the valueField column of g by the groupField
// column. It returns the distinct group keys in order of first
// appearance and the values belonging to each key.
func partition(g table.Grouping, groupField, valueField string) ([]string, map[string][]float64, error) {
	if !hasColumn(g, groupField) {
		return nil, nil, &InvalidFieldError{groupField, "no such column"}
	}
	if !hasColumn(g, valueField) {
		return nil, nil, &InvalidFieldError{valueField, "no such column"}
	}

	var keys []string
	parts := make(map[string][]float64)
	rows := 0
	for _, gid := range g.Tables() {
		t := g.Table(gid)
		rows += t.Len()

		groups := stringify(t.MustColumn(groupField))
		vcol := t.MustColumn(valueField)
		if !convertible(vcol) {
			return nil, nil, &InvalidFieldError{valueField, fmt.Sprintf("cannot convert %T to float64", vcol)}
		}
		var vals []float64
		slice.Convert(&vals, vcol)

		for i, k := range groups {
			if _, ok := parts[k]; !ok {
				keys = append(keys, k)
			}
			parts[k] = append(parts[k], vals[i])
		}
	}
	if rows == 0 {
		return nil, nil, ErrEmptyData
	}
	return keys, parts, nil
}

// sd returns the sample standard deviation of xs, or NaN when fewer
// than two observations make it undefined.
func sd(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	return stats.Sample{Xs: xs}.StdDev()
}

func hasColumn(g table.Grouping, name string) bool {
	for _, col := range g.Columns() {
		if col == name {
			return true
		}
	}
	return false
}

// stringify returns column col as []string, formatting other element
// types with fmt.Sprint.
func stringify(col table.Slice) []string {
	if ss, ok := col.([]string); ok {
		return ss
	}
	rv := reflect.ValueOf(col)
	out := make([]string, rv.Len())
	for i := range out {
		out[i] = fmt.Sprint(rv.Index(i).Interface())
	}
	return out
}

// convertible reports whether col's elements can be converted to
// float64.
func convertible(col table.Slice) bool {
	et := reflect.TypeOf(col).Elem()
	switch et.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
