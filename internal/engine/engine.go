// Package engine provides the grouping, ratio, ranking, and window
// primitives shared by every report builder. All functions are pure and
// operate on in-memory slices; none of them mutate their input.
package engine

import (
	"errors"
	"math"
)

// ErrNoSample is returned when a ratio is requested over an empty group.
// Builders normally apply MinSample before computing ratios; a caller that
// sees this error reached a group the filter should have removed.
var ErrNoSample = errors.New("no sample data: zero denominator")

// Round3 rounds to 3 decimal places, half away from zero.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Ratio returns part/total rounded to 3 decimal places.
func Ratio(part, total int) (float64, error) {
	if total == 0 {
		return 0, ErrNoSample
	}
	return Round3(float64(part) / float64(total)), nil
}

// Percent returns 100*part/total rounded to 3 decimal places.
func Percent(part, total int) (float64, error) {
	if total == 0 {
		return 0, ErrNoSample
	}
	return Round3(100 * float64(part) / float64(total)), nil
}

// CountWhere counts the rows satisfying pred.
func CountWhere[T any](rows []T, pred func(T) bool) int {
	n := 0
	for _, r := range rows {
		if pred(r) {
			n++
		}
	}
	return n
}

// Filter returns the rows satisfying pred, preserving order.
func Filter[T any](rows []T, pred func(T) bool) []T {
	var out []T
	for _, r := range rows {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// GroupBy partitions rows by key, preserving row order within each group.
func GroupBy[T any, K comparable](rows []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, r := range rows {
		k := key(r)
		groups[k] = append(groups[k], r)
	}
	return groups
}

// MinSample drops groups with fewer than min rows. It is a post-grouping
// filter: it sees each group's full count, never a pre-filtered subset.
func MinSample[K comparable, T any](groups map[K][]T, min int) map[K][]T {
	out := make(map[K][]T, len(groups))
	for k, rows := range groups {
		if len(rows) >= min {
			out[k] = rows
		}
	}
	return out
}
