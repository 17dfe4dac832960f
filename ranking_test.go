package visitorcast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func benchmarkRows() []AccuracyRow {
	return []AccuracyRow{
		{Model: "ARIMA", Set: SetTraining, RMSE: 10, MAPE: 3.0, MASE: 0.7},
		{Model: "ARIMA", Set: SetTest, RMSE: 30, MAPE: 8.0, MASE: 1.1},
		{Model: "ETS", Set: SetTraining, RMSE: 12, MAPE: 3.5, MASE: 0.8},
		{Model: "ETS", Set: SetTest, RMSE: 25, MAPE: 6.0, MASE: 0.9},
		{Model: "TBATS", Set: SetTraining, RMSE: 9, MAPE: 2.8, MASE: 0.6},
		{Model: "TBATS", Set: SetTest, RMSE: 28, MAPE: 6.0, MASE: 1.0},
		{Model: EnsembleName, Set: SetTest, RMSE: 22, MAPE: 5.0, MASE: math.NaN()},
	}
}

func TestRankExcludesTraining(t *testing.T) {
	ranked := Rank(benchmarkRows(), false)
	require.Len(t, ranked, 4)
	for _, row := range ranked {
		assert.NotEqual(t, SetTraining, row.Set)
	}
}

func TestRankIncludesTraining(t *testing.T) {
	ranked := Rank(benchmarkRows(), true)
	require.Len(t, ranked, 7)

	cnt := make(map[string]map[string]int)
	for _, row := range ranked {
		if cnt[row.Model] == nil {
			cnt[row.Model] = make(map[string]int)
		}
		cnt[row.Model][row.Set]++
	}
	for _, name := range []string{"ARIMA", "ETS", "TBATS"} {
		assert.Equal(t, 1, cnt[name][SetTraining])
		assert.Equal(t, 1, cnt[name][SetTest])
	}
	assert.Equal(t, 1, cnt[EnsembleName][SetTest])
	assert.Equal(t, 0, cnt[EnsembleName][SetTraining])
}

func TestRankOrdering(t *testing.T) {
	ranked := Rank(benchmarkRows(), true)
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].MAPE, ranked[i].MAPE)
	}
}

func TestRankStableTieBreak(t *testing.T) {
	ranked := Rank(benchmarkRows(), false)

	// ETS and TBATS tie at 6.0; first-computed ETS wins
	var tied []string
	for _, row := range ranked {
		if row.MAPE == 6.0 {
			tied = append(tied, row.Model)
		}
	}
	assert.Equal(t, []string{"ETS", "TBATS"}, tied)
}

func TestRankDoesNotMutateInput(t *testing.T) {
	rows := benchmarkRows()
	Rank(rows, false)
	assert.Equal(t, "ARIMA", rows[0].Model)
	assert.Equal(t, SetTraining, rows[0].Set)
}

func TestHeatBuckets(t *testing.T) {
	rows := []AccuracyRow{
		{Model: "A", Set: SetTest, RMSE: 0, MAPE: 10, MASE: 1},
		{Model: "B", Set: SetTest, RMSE: 50, MAPE: 20, MASE: 1},
		{Model: "C", Set: SetTest, RMSE: 100, MAPE: 30, MASE: math.NaN()},
	}

	heat := HeatBuckets(rows, 5)
	require.Len(t, heat, 3)

	// best value lands in bucket 0, worst in the last bucket
	assert.Equal(t, 0, heat[0].RMSE)
	assert.Equal(t, 2, heat[1].RMSE)
	assert.Equal(t, 4, heat[2].RMSE)

	assert.Equal(t, 0, heat[0].MAPE)
	assert.Equal(t, 4, heat[2].MAPE)

	// constant column collapses to bucket 0, undefined cells get -1
	assert.Equal(t, 0, heat[0].MASE)
	assert.Equal(t, 0, heat[1].MASE)
	assert.Equal(t, -1, heat[2].MASE)
}

func TestHeatBucketsEmpty(t *testing.T) {
	assert.Empty(t, HeatBuckets(nil, 5))
}
