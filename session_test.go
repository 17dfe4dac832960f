package visitorcast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visitorcast/visitorcast/models"
	"github.com/visitorcast/visitorcast/timedataset"
)

func testSession(t *testing.T) *Session {
	t.Helper()
	start := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	td, err := timedataset.GenerateVisitorDataset(start, 60, 0)
	require.NoError(t, err)
	session, err := NewSession(td, nil)
	require.NoError(t, err)
	return session
}

func TestSessionModelNames(t *testing.T) {
	session := testSession(t)
	assert.Equal(t, []string{"ARIMA", "ETS", "TBATS"}, session.ModelNames())
}

func TestSessionReforecast(t *testing.T) {
	session := testSession(t)

	for _, name := range session.ModelNames() {
		for _, horizon := range []int{1, 6, 12, 24} {
			res, err := session.Reforecast(name, horizon)
			require.NoError(t, err)
			assert.Equal(t, horizon, res.Horizon())
			require.NoError(t, res.Validate())
		}
	}
}

func TestSessionReforecastIdempotent(t *testing.T) {
	session := testSession(t)

	first, err := session.Reforecast("ETS", 12)
	require.NoError(t, err)
	second, err := session.Reforecast("ETS", 12)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// interleaving other horizons must not disturb the cached fits
	_, err = session.Reforecast("ETS", 24)
	require.NoError(t, err)
	third, err := session.Reforecast("ETS", 12)
	require.NoError(t, err)
	require.Equal(t, first, third)
}

func TestSessionReforecastUnknownModel(t *testing.T) {
	session := testSession(t)

	_, err := session.Reforecast("PROPHET", 12)
	assert.ErrorIs(t, err, ErrUnknownModel)
}

func TestSessionReforecastBadHorizon(t *testing.T) {
	session := testSession(t)

	_, err := session.Reforecast("ARIMA", 0)
	assert.ErrorIs(t, err, models.ErrBadHorizon)
}

func TestSessionReforecastEnsemble(t *testing.T) {
	session := testSession(t)

	ens, err := session.ReforecastEnsemble(12)
	require.NoError(t, err)
	assert.Equal(t, 12, ens.Horizon())

	// the ensemble is the elementwise mean of the three model forecasts
	var sums []float64
	for _, name := range session.ModelNames() {
		res, err := session.Reforecast(name, 12)
		require.NoError(t, err)
		if sums == nil {
			sums = make([]float64, len(res.Point))
		}
		for i, v := range res.Point {
			sums[i] += v
		}
	}
	for i := range sums {
		assert.InDelta(t, sums[i]/3.0, ens.Point[i], 1e-9)
	}
}

func TestSessionHistoryIsolated(t *testing.T) {
	session := testSession(t)

	history := session.History()
	history.Y[0] = -1

	again := session.History()
	assert.GreaterOrEqual(t, again.Y[0], 0.0)
}

func TestSessionFitFailure(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	td, err := timedataset.GenerateVisitorDataset(start, 12, 0)
	require.NoError(t, err)

	_, err = NewSession(td, nil)
	require.ErrorIs(t, err, models.ErrFit)
}
