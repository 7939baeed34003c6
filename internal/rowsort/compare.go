// Package rowsort orders table cells and rows.
//
// Values of the same family compare naturally: numbers numerically (any
// mix of Go integer and float kinds), strings lexicographically by byte,
// bools with false before true and times chronologically. Values from
// different families, nil values and NaN compare equal, so a stable sort
// leaves them in their input order.
package rowsort

import (
	"slices"
	"time"
)

// Compare returns -1 when a sorts before b, +1 when it sorts after, and 0
// when the two are equal or not comparable.
func Compare(a, b any) int {
	if ai, ok := asInt(a); ok {
		if bi, ok := asInt(b); ok {
			return order(ai < bi, ai > bi)
		}
	}

	if af, ok := asFloat(a); ok {
		if bf, ok := asFloat(b); ok {
			return order(af < bf, af > bf)
		}
		return 0
	}

	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return order(av < bv, av > bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			return order(!av && bv, av && !bv)
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	}

	return 0
}

// Directed applies the sort direction to a comparison result. Descending
// order flips the sign; it does not change the algorithm.
func Directed(result int, ascending bool) int {
	if ascending {
		return result
	}
	return -result
}

// Sort returns a stably sorted copy of rows keyed by value. The input
// slice is not modified.
func Sort[T any](rows []T, value func(T) any, ascending bool) []T {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return Directed(Compare(value(a), value(b)), ascending)
	})
	return sorted
}

func order(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	default:
		return 0
	}
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

func asFloat(v any) (float64, bool) {
	if i, ok := asInt(v); ok {
		return float64(i), true
	}

	switch n := v.(type) {
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
