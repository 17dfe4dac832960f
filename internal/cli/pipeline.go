package cli

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	visitorcast "github.com/visitorcast/visitorcast"
	"github.com/visitorcast/visitorcast/internal/config"
	"github.com/visitorcast/visitorcast/stats"
	"github.com/visitorcast/visitorcast/timedataset"
)

// demoStart anchors the synthetic demo series so its calendar is stable.
var demoStart = time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC)

const demoNoiseScale = 40.0

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableCaller = true

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("unparseable log level %q, %w", level, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

func loadDataset(cfg *config.Config) (*timedataset.TimeDataset, error) {
	if cfg.Data.CSVPath != "" {
		return timedataset.LoadCSV(cfg.Data.CSVPath)
	}
	return timedataset.GenerateVisitorDataset(demoStart, cfg.Data.DemoMonths, demoNoiseScale)
}

// runPipeline is the one-shot startup sequence: load the series, split it,
// run the benchmark, and fit the full-series session models. Any error here
// is fatal to the caller; the dashboard never serves partial results.
func runPipeline(cfg *config.Config, logger *zap.Logger) (*timedataset.TimeDataset, *visitorcast.Report, *visitorcast.Session, error) {
	td, err := loadDataset(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("unable to load series, %w", err)
	}
	logger.Info("series loaded",
		zap.Int("observations", td.Len()),
		zap.Time("start", td.StartTime()),
		zap.Time("end", td.EndTime()),
	)

	if outliers := stats.OutlierMonths(td); len(outliers) > 0 {
		logger.Warn("months with outlier visitor counts", zap.Times("months", outliers))
	}

	split, err := timedataset.NewSplit(td, cfg.Benchmark.TrainFraction)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("unable to split series, %w", err)
	}
	logger.Info("series split",
		zap.Int("training", split.Training.Len()),
		zap.Int("test", split.Test.Len()),
	)

	report, err := visitorcast.NewEvaluator(nil).Run(split)
	if err != nil {
		return nil, nil, nil, err
	}
	session, err := visitorcast.NewSession(td, nil)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("unable to fit session models, %w", err)
	}

	return td, report, session, nil
}
