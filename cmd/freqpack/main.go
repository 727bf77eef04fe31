package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/freqpack/freqpack/internal/config"
	"github.com/freqpack/freqpack/internal/database"
	"github.com/freqpack/freqpack/internal/observability"
	"github.com/freqpack/freqpack/internal/pipeline"
)

const (
	AppName    = "freqpack"
	AppVersion = "0.1.0"
)

func main() {
	var configPath = flag.String("config", "", "Path to configuration file")
	flag.Parse()

	os.Exit(run(*configPath))
}

func run(configPath string) int {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	logger, err := observability.NewLogger(cfg.Observability.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Debug("Starting freqpack", zap.String("version", AppVersion))

	ctx := context.Background()
	opts := []pipeline.Option{pipeline.WithLogger(logger)}

	if cfg.Observability.MetricsEnabled {
		meterProvider, metricsShutdown, err := observability.InitMetricsProvider(ctx, cfg.Observability.OTELendpoint, AppName, AppVersion)
		if err != nil {
			logger.Error("Failed to initialize metrics provider", zap.Error(err))
			return 1
		}
		defer func() {
			if err := metricsShutdown(); err != nil {
				logger.Error("Failed to shutdown metrics provider", zap.Error(err))
			}
		}()

		metrics, err := observability.NewMetrics(meterProvider, AppName)
		if err != nil {
			logger.Error("Failed to initialize metrics", zap.Error(err))
			return 1
		}
		opts = append(opts, pipeline.WithMetrics(metrics))
	}

	if cfg.Observability.TracingEnabled {
		tp, shutdown, err := observability.InitTracing(ctx, cfg.Observability.OTELendpoint, AppName, AppVersion)
		if err != nil {
			logger.Error("Failed to initialize tracing", zap.Error(err))
			return 1
		}
		defer func() {
			if err := shutdown(); err != nil {
				logger.Error("Failed to shutdown tracing", zap.Error(err))
			}
		}()
		opts = append(opts, pipeline.WithTracerProvider(tp))
	}

	if historyPath := cfg.GetHistoryPath(); historyPath != "" {
		db, err := database.NewDB(historyPath)
		if err != nil {
			logger.Error("Failed to open run history", zap.Error(err), zap.String("path", historyPath))
			return 1
		}
		defer db.Close()
		opts = append(opts, pipeline.WithHistory(db))
	}

	p := pipeline.New(cfg, opts...)
	report, err := p.Run(ctx)
	if report != nil {
		if printErr := report.Print(os.Stdout); printErr != nil {
			logger.Error("Failed to print report", zap.Error(printErr))
			return 1
		}
	}
	if err != nil {
		logger.Error("Run failed", zap.Error(err))
		return 1
	}

	logHistory(logger, p)
	return 0
}

// logHistory lists the recent recorded runs at debug level
func logHistory(logger *observability.Logger, p *pipeline.Pipeline) {
	runs, err := p.History()
	if err != nil {
		logger.Warn("Failed to list run history", zap.Error(err))
		return
	}
	for _, run := range runs {
		logger.Debug("Recorded run",
			zap.String("run_id", run.RunID),
			zap.Time("started_at", run.StartedAt),
			zap.String("algorithm", run.Algorithm),
			zap.String("mode", run.VerifyMode),
			zap.Bool("success", run.Success))
	}
}
