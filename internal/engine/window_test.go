package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scored struct {
	group string
	name  string
	score int
}

func scoredLess(a, b scored) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	return a.name < b.name
}

func TestRankWithinPartition(t *testing.T) {
	rows := []scored{
		{"x", "a", 10},
		{"x", "b", 30},
		{"y", "c", 5},
		{"x", "d", 20},
		{"y", "e", 50},
	}
	ranked := RankWithinPartition(rows, func(r scored) string { return r.group }, scoredLess)

	require.Len(t, ranked, 2)
	x := ranked["x"]
	require.Len(t, x, 3)
	assert.Equal(t, "b", x[0].Row.name)
	assert.Equal(t, 1, x[0].Rank)
	assert.Equal(t, "d", x[1].Row.name)
	assert.Equal(t, 2, x[1].Rank)
	assert.Equal(t, "a", x[2].Row.name)
	assert.Equal(t, 3, x[2].Rank)

	y := ranked["y"]
	require.Len(t, y, 2)
	assert.Equal(t, "e", y[0].Row.name)
	assert.Equal(t, 1, y[0].Rank)
}

// Ranks must be gapless and independent of input order when the ordering
// is a strict total order.
func TestRankWithinPartitionPermutationStable(t *testing.T) {
	base := []scored{
		{"g", "a", 7}, {"g", "b", 7}, {"g", "c", 3}, {"g", "d", 9}, {"g", "e", 1},
	}

	reference := RankWithinPartition(base, func(r scored) string { return r.group }, scoredLess)["g"]

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		shuffled := append([]scored(nil), base...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := RankWithinPartition(shuffled, func(r scored) string { return r.group }, scoredLess)["g"]
		require.Len(t, got, len(reference))
		for i := range got {
			assert.Equal(t, i+1, got[i].Rank)
			assert.Equal(t, reference[i].Row, got[i].Row)
		}
	}
}

func TestRunningAvgWindowed(t *testing.T) {
	vals := []float64{10, 12, 8, 15, 20, 18}
	avg := RunningAvg(vals, 5)

	require.Len(t, avg, 6)
	assert.Equal(t, 10.0, avg[0])
	assert.Equal(t, 11.0, avg[1])
	assert.Equal(t, 10.0, avg[2])
	assert.Equal(t, 11.25, avg[3])
	assert.Equal(t, 13.0, avg[4])
	// Window of 5 at the last index covers 12,8,15,20,18.
	assert.Equal(t, 14.6, avg[5])
}

func TestRunningAvgUnbounded(t *testing.T) {
	avg := RunningAvg([]float64{2, 4, 6}, 0)
	assert.Equal(t, []float64{2, 3, 4}, avg)
}

func TestRunningMax(t *testing.T) {
	max := RunningMax([]float64{3, 1, 4, 1, 5, 2}, 0)
	assert.Equal(t, []float64{3, 3, 4, 4, 5, 5}, max)

	windowed := RunningMax([]float64{3, 1, 4, 1, 5, 2}, 2)
	assert.Equal(t, []float64{3, 3, 4, 4, 5, 5}, windowed)
}

type sale struct {
	region string
	rep    string
	units  int
}

func TestRollup(t *testing.T) {
	rows := []sale{
		{"north", "ann", 3},
		{"north", "bob", 2},
		{"south", "cid", 5},
	}
	out := Rollup(rows,
		func(s sale) int { return s.units },
		func(s sale) string { return s.region },
		func(s sale) string { return s.rep },
	)

	require.Len(t, out, 6)
	assert.Equal(t, RollupRow{Keys: []string{"north", "ann"}, Value: 3, Level: 2}, out[0])
	assert.Equal(t, RollupRow{Keys: []string{"north", "bob"}, Value: 2, Level: 2}, out[1])
	assert.Equal(t, RollupRow{Keys: []string{"north", RollupTotal}, Value: 5, Level: 1}, out[2])
	assert.Equal(t, RollupRow{Keys: []string{"south", "cid"}, Value: 5, Level: 2}, out[3])
	assert.Equal(t, RollupRow{Keys: []string{"south", RollupTotal}, Value: 5, Level: 1}, out[4])
	assert.Equal(t, RollupRow{Keys: []string{RollupTotal, RollupTotal}, Value: 10, Level: 0}, out[5])
}

// Every subtotal must equal the sum of its leaves, and the grand total the
// sum of everything.
func TestRollupSubtotalsConsistent(t *testing.T) {
	rows := []sale{
		{"a", "p", 1}, {"a", "q", 2}, {"b", "p", 4}, {"b", "r", 8}, {"a", "p", 16},
	}
	out := Rollup(rows,
		func(s sale) int { return s.units },
		func(s sale) string { return s.region },
		func(s sale) string { return s.rep },
	)

	leafSums := make(map[string]int)
	grand := 0
	for _, r := range out {
		switch r.Level {
		case 2:
			leafSums[r.Keys[0]] += r.Value
			grand += r.Value
		case 1:
			assert.Equal(t, leafSums[r.Keys[0]], r.Value, "subtotal for %s", r.Keys[0])
		case 0:
			assert.Equal(t, grand, r.Value, "grand total")
		}
	}
}

func TestRollupEmpty(t *testing.T) {
	assert.Nil(t, Rollup(nil, func(s sale) int { return s.units }, func(s sale) string { return s.region }))
}

func TestPivot(t *testing.T) {
	rows := []sale{
		{"north", "ann", 0},
		{"north", "bob", 0},
		{"south", "ann", 0},
		{"west", "ann", 0}, // region not in the column list
	}
	cols := []string{"north", "south", "east"}
	out := Pivot(rows, func(s sale) string { return s.rep }, func(s sale) string { return s.region }, cols)

	require.Len(t, out, 2)
	assert.Equal(t, []int{1, 1, 0}, out["ann"]) // east zero-filled, west dropped
	assert.Equal(t, []int{1, 0, 0}, out["bob"])
}
