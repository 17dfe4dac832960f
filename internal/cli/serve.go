package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/visitorcast/visitorcast/internal/config"
	"github.com/visitorcast/visitorcast/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the benchmark and serve the interactive dashboard",
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

		_, report, session, err := runPipeline(cfg, logger)
		if err != nil {
			logger.Error("startup evaluation failed", zap.Error(err))
			return err
		}

		srv := server.New(cfg, logger, session, report)

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-sigCh:
			logger.Info("shutting down", zap.String("signal", sig.String()))
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
