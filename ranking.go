package visitorcast

import (
	"math"
	"sort"
)

// Rank filters and orders accuracy rows for presentation. Training-set rows
// are dropped unless includeTraining is set. Rows are ordered by ascending
// MAPE with ties keeping their input order, so the first-computed model wins.
func Rank(rows []AccuracyRow, includeTraining bool) []AccuracyRow {
	ranked := make([]AccuracyRow, 0, len(rows))
	for _, row := range rows {
		if !includeTraining && row.Set == SetTraining {
			continue
		}
		ranked = append(ranked, row)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MAPE < ranked[j].MAPE
	})
	return ranked
}

// RowHeat is the per-metric color bucket of one row, -1 where the metric is
// undefined.
type RowHeat struct {
	RMSE int
	MAPE int
	MASE int
}

// HeatBuckets min-max interpolates each numeric column independently into the
// given number of buckets for a low-to-high color scale. Bucket 0 is the best
// value in the column and buckets-1 the worst.
func HeatBuckets(rows []AccuracyRow, buckets int) []RowHeat {
	if buckets < 1 {
		buckets = 1
	}

	rmse := make([]float64, len(rows))
	mape := make([]float64, len(rows))
	mase := make([]float64, len(rows))
	for i, row := range rows {
		rmse[i] = row.RMSE
		mape[i] = row.MAPE
		mase[i] = row.MASE
	}

	rmseBuckets := bucketize(rmse, buckets)
	mapeBuckets := bucketize(mape, buckets)
	maseBuckets := bucketize(mase, buckets)

	heat := make([]RowHeat, len(rows))
	for i := range rows {
		heat[i] = RowHeat{
			RMSE: rmseBuckets[i],
			MAPE: mapeBuckets[i],
			MASE: maseBuckets[i],
		}
	}
	return heat
}

func bucketize(vals []float64, buckets int) []int {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	idx := make([]int, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) {
			idx[i] = -1
			continue
		}
		if hi == lo || math.IsInf(lo, 1) {
			idx[i] = 0
			continue
		}
		b := int(math.Floor((v - lo) / (hi - lo) * float64(buckets)))
		if b >= buckets {
			b = buckets - 1
		}
		idx[i] = b
	}
	return idx
}
