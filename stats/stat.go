// Package stats holds series diagnostics that sit outside the benchmark
// itself, currently Tukey-fence outlier detection used to warn about
// suspicious months in the input data.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/visitorcast/visitorcast/timedataset"
)

// DetectOutliers returns the indices of values outside the Tukey fences built
// from the given percentiles.
func DetectOutliers(y []float64, lowerPerc, upperPerc, tukeyFactor float64) []int {
	lowerPerc = math.Max(lowerPerc, 0.0)
	upperPerc = math.Min(upperPerc, 1.0)
	tukeyFactor = math.Max(tukeyFactor, 0.0)

	yCopy := make([]float64, len(y))
	copy(yCopy, y)
	sort.Float64s(yCopy)
	lowerIdx := int(math.Floor(float64(len(yCopy)-1) * lowerPerc))
	upperIdx := int(math.Ceil(float64(len(yCopy)-1) * upperPerc))

	lower := yCopy[lowerIdx]
	upper := yCopy[upperIdx]
	innerRange := upper - lower
	lower -= innerRange * tukeyFactor
	upper += innerRange * tukeyFactor

	var outlierIdx []int
	for i := 0; i < len(y); i++ {
		if y[i] >= upper || y[i] <= lower {
			outlierIdx = append(outlierIdx, i)
		}
	}
	return outlierIdx
}

// OutlierMonths flags months whose visitor counts fall outside the Tukey
// fences at the 10th/90th percentiles. Purely diagnostic; the benchmark uses
// the series as-is.
func OutlierMonths(td *timedataset.TimeDataset) []time.Time {
	idxs := DetectOutliers(td.Y, 0.1, 0.9, 1.5)
	months := make([]time.Time, 0, len(idxs))
	for _, idx := range idxs {
		months = append(months, td.T[idx])
	}
	return months
}
