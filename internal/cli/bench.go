package cli

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	visitorcast "github.com/visitorcast/visitorcast"
	"github.com/visitorcast/visitorcast/internal/config"
)

var benchTraining bool

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the one-shot evaluation and print the ranked accuracy table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg.Logging.Level)
		if err != nil {
			return err
		}
		defer func() {
			_ = logger.Sync()
		}()

		_, report, _, err := runPipeline(cfg, logger)
		if err != nil {
			logger.Error("evaluation failed", zap.Error(err))
			return err
		}

		ranked := visitorcast.Rank(report.Rows, benchTraining)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MODEL\tSET\tRMSE\tMAPE\tMASE")
		for _, row := range ranked {
			mase := "-"
			if !math.IsNaN(row.MASE) {
				mase = fmt.Sprintf("%.3f", row.MASE)
			}
			fmt.Fprintf(w, "%s\t%s\t%.3f\t%.3f\t%s\n", row.Model, row.Set, row.RMSE, row.MAPE, mase)
		}
		return w.Flush()
	},
}

func init() {
	benchCmd.Flags().BoolVar(&benchTraining, "training", false, "include training-set rows")
	rootCmd.AddCommand(benchCmd)
}
