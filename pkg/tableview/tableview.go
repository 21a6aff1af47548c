// Package tableview implements the shared filter/search/sort pipeline behind
// every list screen. It is generic over the row type and never mutates its
// input.
package tableview

import (
	"sort"
	"strings"
	"time"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort names a sortable column and a direction.
type Sort struct {
	Key       string    `json:"key" form:"sort_by"`
	Direction Direction `json:"direction" form:"sort_order"`
}

// Toggle returns the sort that results from clicking a column header:
// clicking the active key flips the direction, clicking a new key resets to
// ascending on that key.
func Toggle(current *Sort, key string) Sort {
	if current != nil && current.Key == key && current.Direction == Asc {
		return Sort{Key: key, Direction: Desc}
	}
	return Sort{Key: key, Direction: Asc}
}

// Value is an orderable cell value: a number, a string, or a time.
type Value struct {
	kind int // 0 number, 1 text, 2 time
	num  float64
	str  string
	ts   time.Time
}

// Number wraps a numeric cell value.
func Number(n float64) Value { return Value{kind: 0, num: n} }

// Text wraps a string cell value.
func Text(s string) Value { return Value{kind: 1, str: s} }

// Time wraps a timestamp cell value.
func Time(t time.Time) Value { return Value{kind: 2, ts: t} }

// compare orders two values of the same kind; values of different kinds
// order by kind so the sort stays total.
func compare(a, b Value) int {
	if a.kind != b.kind {
		return a.kind - b.kind
	}
	switch a.kind {
	case 0:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	case 2:
		switch {
		case a.ts.Before(b.ts):
			return -1
		case a.ts.After(b.ts):
			return 1
		}
		return 0
	default:
		return strings.Compare(a.str, b.str)
	}
}

// Column extracts a sortable value from a row. The second return reports
// whether the row defines the column at all; undefined rows always sort after
// defined ones, whatever the direction.
type Column[T any] func(T) (Value, bool)

// Options configures one pass of the pipeline.
type Options[T any] struct {
	// Filters are ANDed; a row must pass every one.
	Filters []func(T) bool
	// Search is matched case-insensitively as a substring of any field
	// returned by SearchFields. Empty matches everything.
	Search       string
	SearchFields func(T) []string
	// Sort picks a column from Columns; nil leaves input order untouched.
	Sort    *Sort
	Columns map[string]Column[T]
}

// Apply runs filters, then search, then sort, in that order, over a copy of
// rows. Equal sort keys keep their input order (sort.SliceStable).
func Apply[T any](rows []T, opts Options[T]) []T {
	out := make([]T, 0, len(rows))

rowLoop:
	for _, row := range rows {
		for _, keep := range opts.Filters {
			if !keep(row) {
				continue rowLoop
			}
		}
		out = append(out, row)
	}

	if term := strings.ToLower(strings.TrimSpace(opts.Search)); term != "" && opts.SearchFields != nil {
		matched := out[:0:0]
		for _, row := range out {
			for _, field := range opts.SearchFields(row) {
				if strings.Contains(strings.ToLower(field), term) {
					matched = append(matched, row)
					break
				}
			}
		}
		out = matched
	}

	if opts.Sort != nil {
		if column, ok := opts.Columns[opts.Sort.Key]; ok {
			desc := opts.Sort.Direction == Desc
			sort.SliceStable(out, func(i, j int) bool {
				vi, iDefined := column(out[i])
				vj, jDefined := column(out[j])
				// Undefined cells sink to the bottom in both directions.
				if iDefined != jDefined {
					return iDefined
				}
				if !iDefined {
					return false
				}
				c := compare(vi, vj)
				if desc {
					return c > 0
				}
				return c < 0
			})
		}
	}

	return out
}
