package engine

import "sort"

// Ranked pairs a row with its 1-based rank within a partition.
type Ranked[T any] struct {
	Row  T
	Rank int
}

// RankWithinPartition splits rows into partitions, sorts each partition by
// less, and assigns ranks 1..N in sort order. less must define a strict
// total order (callers list their tie-break keys inside it) so ranks form
// a gapless permutation and re-runs are byte-identical.
func RankWithinPartition[T any, K comparable](rows []T, partition func(T) K, less func(a, b T) bool) map[K][]Ranked[T] {
	groups := GroupBy(rows, partition)
	out := make(map[K][]Ranked[T], len(groups))
	for k, g := range groups {
		sorted := make([]T, len(g))
		copy(sorted, g)
		sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
		ranked := make([]Ranked[T], len(sorted))
		for i, r := range sorted {
			ranked[i] = Ranked[T]{Row: r, Rank: i + 1}
		}
		out[k] = ranked
	}
	return out
}

// RunningAvg computes a trailing average over an ordered sequence. window is
// the number of rows in the frame including the current row (SQL's
// "N-1 PRECEDING AND CURRENT ROW"); window <= 0 means unbounded from the
// start. The current row is always included.
func RunningAvg(vals []float64, window int) []float64 {
	out := make([]float64, len(vals))
	var sum float64
	for i, v := range vals {
		sum += v
		lo := 0
		if window > 0 && i >= window {
			lo = i - window + 1
			sum -= vals[i-window]
		}
		out[i] = sum / float64(i-lo+1)
	}
	return out
}

// RunningMax computes a trailing maximum with the same window semantics as
// RunningAvg.
func RunningMax(vals []float64, window int) []float64 {
	out := make([]float64, len(vals))
	for i := range vals {
		lo := 0
		if window > 0 && i-window+1 > 0 {
			lo = i - window + 1
		}
		max := vals[lo]
		for j := lo + 1; j <= i; j++ {
			if vals[j] > max {
				max = vals[j]
			}
		}
		out[i] = max
	}
	return out
}

// RollupTotal is the sentinel label used for subtotal and grand-total rows,
// so they can never be confused with real group values.
const RollupTotal = "Total"

// RollupRow is one output row of Rollup. Keys has one entry per grouping
// key; subtotal rows fill the trailing keys with RollupTotal, and the grand
// total row is all-RollupTotal. Level is the number of concrete keys
// (len(Keys) for leaves, 0 for the grand total).
type RollupRow struct {
	Keys  []string
	Value int
	Level int
}

// Rollup aggregates value over every prefix of the grouping key list, SQL
// ROLLUP style: leaf rows first (sorted by key), each group's subtotal
// after its leaves, grand total last. Empty input yields an empty result.
func Rollup[T any](rows []T, value func(T) int, keys ...func(T) string) []RollupRow {
	if len(rows) == 0 || len(keys) == 0 {
		return nil
	}
	return rollup(rows, value, keys, nil)
}

func rollup[T any](rows []T, value func(T) int, keys []func(T) string, prefix []string) []RollupRow {
	total := 0
	for _, r := range rows {
		total += value(r)
	}

	totalKeys := make([]string, len(prefix), len(prefix)+len(keys))
	copy(totalKeys, prefix)
	for range keys {
		totalKeys = append(totalKeys, RollupTotal)
	}
	totalRow := RollupRow{Keys: totalKeys, Value: total, Level: len(prefix)}

	if len(keys) == 0 {
		return []RollupRow{totalRow}
	}

	groups := GroupBy(rows, keys[0])
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []RollupRow
	for _, name := range names {
		out = append(out, rollup(groups[name], value, keys[1:], append(append([]string{}, prefix...), name))...)
	}
	return append(out, totalRow)
}

// Pivot reshapes grouped counts into one column per entry of cols. Rows
// whose colKey is not in cols are excluded; listed columns with no data are
// zero-filled. The result maps each row key to counts aligned with cols.
func Pivot[T any, R comparable](rows []T, rowKey func(T) R, colKey func(T) string, cols []string) map[R][]int {
	colIdx := make(map[string]int, len(cols))
	for i, c := range cols {
		colIdx[c] = i
	}
	out := make(map[R][]int)
	for _, r := range rows {
		ci, ok := colIdx[colKey(r)]
		if !ok {
			continue
		}
		rk := rowKey(r)
		if out[rk] == nil {
			out[rk] = make([]int, len(cols))
		}
		out[rk][ci]++
	}
	return out
}
