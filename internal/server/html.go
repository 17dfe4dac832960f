package server

import (
	"fmt"
	"html/template"
	"math"
	"net/http"
	"strings"

	"go.uber.org/zap"

	visitorcast "github.com/visitorcast/visitorcast"
	"github.com/visitorcast/visitorcast/event"
)

const heatBucketCnt = 5

// heatPalette runs low (good) to high (bad) for the accuracy table cells.
var heatPalette = []string{"#63be7b", "#a8d08d", "#ffeb84", "#f8a35c", "#f8696b"}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>Visitor Forecast Benchmark</title></head>
<body>
<h1>Visitor Forecast Benchmark</h1>
<form>
  <label>Forecast horizon (months):
    <input type="number" id="horizon" min="1" value="{{.Horizon}}">
  </label>
  <label>
    <input type="checkbox" id="training"> include training-set rows
  </label>
</form>
{{if .HolidayMonths}}<p>Holiday months in range: {{.HolidayMonths}}</p>{{end}}
<iframe id="table" src="/table" width="100%" height="320" frameborder="0"></iframe>
<iframe id="charts" src="/charts?h={{.Horizon}}" width="100%" height="3200" frameborder="0"></iframe>
<script>
const horizon = document.getElementById("horizon");
const training = document.getElementById("training");
horizon.addEventListener("change", () => {
  document.getElementById("charts").src = "/charts?h=" + horizon.value;
});
training.addEventListener("change", () => {
  document.getElementById("table").src = "/table?training=" + training.checked;
});
</script>
</body>
</html>
`))

type indexData struct {
	Horizon       int
	HolidayMonths string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	history := s.session.History()
	marks, err := event.HolidayMonths(history.StartTime(), history.EndTime().AddDate(0, holidayLookahead, 0))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	seen := make(map[string]struct{})
	var months []string
	for _, mark := range marks {
		month := mark.Month.Format("2006-01")
		if _, exists := seen[month]; exists {
			continue
		}
		seen[month] = struct{}{}
		months = append(months, month)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = indexTmpl.Execute(w, indexData{
		Horizon:       s.cfg.Benchmark.DefaultHorizon,
		HolidayMonths: strings.Join(months, ", "),
	})
	if err != nil {
		s.logger.Warn("unable to render index", zap.Error(err))
	}
}

func heatColor(bucket int) string {
	if bucket < 0 {
		return "#ffffff"
	}
	if bucket >= len(heatPalette) {
		bucket = len(heatPalette) - 1
	}
	return heatPalette[bucket]
}

func formatMetric(v float64) string {
	if math.IsNaN(v) {
		return "&mdash;"
	}
	return fmt.Sprintf("%.3f", v)
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	ranked := visitorcast.Rank(s.report.Rows, trainingParam(r))
	heat := visitorcast.HeatBuckets(ranked, heatBucketCnt)

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><body><table border="1" cellpadding="6" cellspacing="0">`)
	b.WriteString("<tr><th>Model</th><th>Set</th><th>RMSE</th><th>MAPE</th><th>MASE</th></tr>")
	for i, row := range ranked {
		fmt.Fprintf(&b,
			`<tr><td>%s</td><td>%s</td><td bgcolor="%s">%s</td><td bgcolor="%s">%s</td><td bgcolor="%s">%s</td></tr>`,
			template.HTMLEscapeString(row.Model),
			template.HTMLEscapeString(row.Set),
			heatColor(heat[i].RMSE), formatMetric(row.RMSE),
			heatColor(heat[i].MAPE), formatMetric(row.MAPE),
			heatColor(heat[i].MASE), formatMetric(row.MASE),
		)
	}
	b.WriteString("</table></body></html>")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(b.String())); err != nil {
		s.logger.Warn("unable to write table", zap.Error(err))
	}
}
