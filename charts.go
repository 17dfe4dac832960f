package visitorcast

import (
	"fmt"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/visitorcast/visitorcast/forecast"
	"github.com/visitorcast/visitorcast/timedataset"
)

const chartTimeLayout = "2006-01"

func chartXAxis(history []time.Time, horizon []time.Time) []string {
	x := make([]string, 0, len(history)+len(horizon))
	for _, ts := range history {
		x = append(x, ts.Format(chartTimeLayout))
	}
	for _, ts := range horizon {
		x = append(x, ts.Format(chartTimeLayout))
	}
	return x
}

// padded prefixes a forecast-side series with empty points covering the
// historical region so it lines up on the shared month axis.
func padded(pad int, vals []float64) []opts.LineData {
	data := make([]opts.LineData, 0, pad+len(vals))
	for i := 0; i < pad; i++ {
		data = append(data, opts.LineData{})
	}
	for _, v := range vals {
		data = append(data, opts.LineData{Value: v})
	}
	return data
}

func actualData(history *timedataset.TimeDataset, horizon int) []opts.LineData {
	data := make([]opts.LineData, 0, history.Len()+horizon)
	for _, v := range history.Y {
		data = append(data, opts.LineData{Value: v})
	}
	for i := 0; i < horizon; i++ {
		data = append(data, opts.LineData{})
	}
	return data
}

// LineModelForecast generates an echart line chart for one model's forecast
// plotting the historical actuals along with the point forecast and the 80%
// and 95% interval bounds.
func LineModelForecast(title string, history *timedataset.TimeDataset, res *forecast.Result) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	pad := history.Len()
	line.SetXAxis(chartXAxis(history.T, res.T)).
		AddSeries("Actual", actualData(history, res.Horizon())).
		AddSeries("Forecast", padded(pad, res.Point)).
		AddSeries("Upper 95", padded(pad, res.Band95.Upper)).
		AddSeries("Upper 80", padded(pad, res.Band80.Upper)).
		AddSeries("Lower 80", padded(pad, res.Band80.Lower)).
		AddSeries("Lower 95", padded(pad, res.Band95.Lower))
	return line
}

// LineEnsembleForecast generates an echart line chart for the combination
// forecast. The ensemble carries no interval bands.
func LineEnsembleForecast(title string, history *timedataset.TimeDataset, ens *forecast.Ensemble) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	pad := history.Len()
	line.SetXAxis(chartXAxis(history.T, ens.T)).
		AddSeries("Actual", actualData(history, ens.Horizon())).
		AddSeries("Forecast", padded(pad, ens.Point))
	return line
}

// DashboardPage assembles the forecast charts for every session model plus
// the ensemble at the requested horizon into one echarts page.
func DashboardPage(session *Session, horizon int) (*components.Page, error) {
	history := session.History()

	page := components.NewPage()
	for _, name := range session.ModelNames() {
		res, err := session.Reforecast(name, horizon)
		if err != nil {
			return nil, fmt.Errorf("unable to reforecast %s, %w", name, err)
		}
		page.AddCharts(LineModelForecast(fmt.Sprintf("%s (h=%d)", name, horizon), history, res))
	}

	ens, err := session.ReforecastEnsemble(horizon)
	if err != nil {
		return nil, fmt.Errorf("unable to reforecast ensemble, %w", err)
	}
	page.AddCharts(LineEnsembleForecast(fmt.Sprintf("%s (h=%d)", EnsembleName, horizon), history, ens))

	return page, nil
}
