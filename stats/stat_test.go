package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visitorcast/visitorcast/timedataset"
)

func TestDetectOutliers(t *testing.T) {
	y := []float64{10, 11, 9, 10, 11, 10, 9, 10, 500, 10, 11, 10}
	idxs := DetectOutliers(y, 0.1, 0.9, 1.5)
	assert.Contains(t, idxs, 8)
}

func TestDetectOutliersNone(t *testing.T) {
	y := []float64{10, 11, 9, 10, 11, 10, 9, 10, 12, 10, 11, 10}
	idxs := DetectOutliers(y, 0.0, 1.0, 3.0)
	assert.Empty(t, idxs)
}

func TestOutlierMonths(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	months := timedataset.GenerateMonths(start, 24)
	y := make([]float64, 24)
	for i := range y {
		y[i] = 1000
	}
	y[5] = 1001
	y[6] = 999
	y[10] = 50000

	td, err := timedataset.NewMonthlyDataset(months, y)
	require.NoError(t, err)

	flagged := OutlierMonths(td)
	require.NotEmpty(t, flagged)
	assert.Contains(t, flagged, time.Date(2020, 11, 1, 0, 0, 0, 0, time.UTC))
}
