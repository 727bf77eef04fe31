// Package pipeline runs the frequency, bit mapping and compression round trip
// over the configured artifacts.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/c2h5oh/datasize"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/freqpack/freqpack/internal/analysis"
	"github.com/freqpack/freqpack/internal/compression"
	"github.com/freqpack/freqpack/internal/config"
	"github.com/freqpack/freqpack/internal/database"
	"github.com/freqpack/freqpack/internal/observability"
	"github.com/freqpack/freqpack/internal/verify"
)

// Stage names, used in errors, logs, spans and metric attributes
const (
	StageReadInput         = "read input"
	StageAnalyze           = "analyze"
	StageWriteCompressed   = "write compressed artifact"
	StageReadCompressed    = "read compressed artifact"
	StageWriteDecompressed = "write decompressed artifact"
	StageStatArtifacts     = "stat artifacts"
	StageVerify            = "verify"
	StageRecordHistory     = "record history"
)

const (
	instrumentationName     = "github.com/freqpack/freqpack/internal/pipeline"
	defaultHistoryListLimit = 10
)

// Pipeline executes single-shot, fail-fast runs over one configuration
type Pipeline struct {
	cfg     *config.Config
	logger  *observability.Logger
	metrics *observability.Metrics
	tracer  trace.Tracer
	history *database.DB
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithLogger sets the logger; the default discards everything
func WithLogger(logger *observability.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithMetrics enables metric recording
func WithMetrics(metrics *observability.Metrics) Option {
	return func(p *Pipeline) {
		p.metrics = metrics
	}
}

// WithTracerProvider sets the provider spans are created from
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *Pipeline) {
		p.tracer = tp.Tracer(instrumentationName)
	}
}

// WithHistory records every completed run in db
func WithHistory(db *database.DB) Option {
	return func(p *Pipeline) {
		p.history = db
	}
}

// New creates a pipeline for cfg
func New(cfg *config.Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:    cfg,
		logger: observability.NewNopLogger(),
		tracer: otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run reads the input artifact, counts its characters, maps it to bits,
// compresses and decompresses the bits through the artifact files and
// verifies the round trip. Any I/O or codec failure aborts the run.
//
// A failed verdict is not an error unless the pipeline is strict; the
// report is returned in both cases.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	runID := newRunID()
	started := time.Now()
	logger := p.logger.WithRunID(runID)

	ctx, span := p.tracer.Start(ctx, "freqpack.run", trace.WithAttributes(
		attribute.String("run_id", runID),
		attribute.String("algorithm", p.cfg.Compression.Algorithm),
	))
	defer span.End()

	report := &Report{
		RunID:     runID,
		Algorithm: p.cfg.Compression.Algorithm,
		Packing:   p.cfg.Pipeline.Packing,
	}

	inputPath := p.cfg.GetInputPath()
	compressedPath := p.cfg.GetCompressedPath()
	decompressedPath := p.cfg.GetDecompressedPath()

	var text string
	err := p.stage(ctx, logger, StageReadInput, func(ctx context.Context) error {
		var err error
		text, err = readText(inputPath)
		return err
	})
	if err != nil {
		return nil, p.fail(span, err)
	}

	pairs := analysis.NewPairSpec(p.cfg.Pairs.First, p.cfg.Pairs.Second)
	err = p.stage(ctx, logger, StageAnalyze, func(ctx context.Context) error {
		report.Frequencies = analysis.CountFrequencies(text)
		report.Bits = analysis.MapBits(text, pairs)

		if p.cfg.Pipeline.Packing == config.PackingBits {
			packed, err := analysis.PackBits(report.Bits)
			if err != nil {
				return err
			}
			report.Payload = packed
		} else {
			report.Payload = report.Bits.Bytes()
		}
		return nil
	})
	if err != nil {
		return nil, p.fail(span, err)
	}

	logger.Debug("Input analyzed",
		zap.Uint64("characters", report.Frequencies.Total()),
		zap.Int("distinct", report.Frequencies.Len()),
		zap.Int("ones", report.Bits.Ones()),
		zap.String("first_set", pairs.First.String()),
		zap.String("second_set", pairs.Second.String()))

	compressor, err := compression.NewCompressor(p.cfg.Compression.Algorithm, p.cfg.Compression.Level)
	if err != nil {
		return nil, p.fail(span, fmt.Errorf("%s: %w", StageWriteCompressed, err))
	}
	defer func() {
		if err := compression.Close(compressor); err != nil {
			logger.Debug("Failed to close compressor", zap.Error(err))
		}
	}()

	err = p.stage(ctx, logger, StageWriteCompressed, func(ctx context.Context) error {
		result, err := compression.WriteArtifact(compressor, report.Payload, compressedPath)
		if err != nil {
			return err
		}
		report.CompressionRatio = result.CompressionRatio
		return nil
	})
	if err != nil {
		return nil, p.fail(span, err)
	}

	err = p.stage(ctx, logger, StageReadCompressed, func(ctx context.Context) error {
		var err error
		report.Decompressed, err = compression.ReadArtifact(compressor, compressedPath)
		return err
	})
	if err != nil {
		return nil, p.fail(span, err)
	}

	err = p.stage(ctx, logger, StageWriteDecompressed, func(ctx context.Context) error {
		return writeFile(decompressedPath, report.Decompressed)
	})
	if err != nil {
		return nil, p.fail(span, err)
	}

	var sizes verify.SizeTriple
	err = p.stage(ctx, logger, StageStatArtifacts, func(ctx context.Context) error {
		var err error
		if sizes.Input, err = fileSize(inputPath); err != nil {
			return err
		}
		if sizes.Compressed, err = fileSize(compressedPath); err != nil {
			return err
		}
		sizes.Decompressed, err = fileSize(decompressedPath)
		return err
	})
	if err != nil {
		return nil, p.fail(span, err)
	}

	err = p.stage(ctx, logger, StageVerify, func(ctx context.Context) error {
		if p.cfg.Verify.Mode == verify.ModeContent {
			var err error
			report.Verdict, err = verify.VerifyContent(sizes, report.Payload, decompressedPath)
			return err
		}
		report.Verdict = verify.VerifySizes(sizes)
		return nil
	})
	if err != nil {
		return nil, p.fail(span, err)
	}

	if p.history != nil {
		err = p.stage(ctx, logger, StageRecordHistory, func(ctx context.Context) error {
			return p.recordHistory(report, inputPath, started)
		})
		if err != nil {
			return nil, p.fail(span, err)
		}
	}

	p.recordRun(ctx, report)
	span.SetAttributes(attribute.Bool("success", report.Verdict.Success))

	logger.Info("Run complete",
		zap.Bool("success", report.Verdict.Success),
		zap.String("mode", report.Verdict.Mode),
		zap.Int64("input_size", sizes.Input),
		zap.Int64("compressed_size", sizes.Compressed),
		zap.Int64("decompressed_size", sizes.Decompressed),
		zap.String("input_human", datasize.ByteSize(sizes.Input).HumanReadable()),
		zap.String("compressed_human", datasize.ByteSize(sizes.Compressed).HumanReadable()),
		zap.Float64("ratio", report.CompressionRatio),
		zap.Duration("elapsed", time.Since(started)))

	if p.cfg.Pipeline.Strict {
		if err := report.Verdict.Err(); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return report, err
		}
	}

	return report, nil
}

// History returns the most recent recorded runs, or nil when history is disabled
func (p *Pipeline) History() ([]*database.RunRecord, error) {
	if p.history == nil {
		return nil, nil
	}
	return p.history.ListRuns(defaultHistoryListLimit)
}

// stage runs fn as one named step: it stops early on a cancelled context,
// opens a child span, times the step and wraps a failure with the stage name.
func (p *Pipeline) stage(ctx context.Context, logger *observability.Logger, name string, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	logger = logger.WithStage(name)
	ctx, span := p.tracer.Start(ctx, name)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)

	stageAttr := metric.WithAttributes(attribute.String("stage", name))
	if p.metrics != nil {
		p.metrics.StageDuration.Record(ctx, elapsed.Seconds(), stageAttr)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if p.metrics != nil {
			p.metrics.ErrorsTotal.Add(ctx, 1, stageAttr)
		}
		logger.Error("Stage failed", zap.Error(err))
		return fmt.Errorf("%s: %w", name, err)
	}

	logger.Debug("Stage complete", zap.Duration("elapsed", elapsed))
	return nil
}

func (p *Pipeline) fail(span trace.Span, err error) error {
	span.SetStatus(codes.Error, err.Error())
	return err
}

func (p *Pipeline) recordRun(ctx context.Context, report *Report) {
	if p.metrics == nil {
		return
	}
	sizes := report.Sizes()
	p.metrics.RunsTotal.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", report.Verdict.Success)))
	p.metrics.InputBytes.Add(ctx, sizes.Input)
	p.metrics.CompressedBytes.Add(ctx, sizes.Compressed)
	p.metrics.CompressionRatio.Record(ctx, report.CompressionRatio,
		metric.WithAttributes(attribute.String("algorithm", report.Algorithm)))
}

func (p *Pipeline) recordHistory(report *Report, inputPath string, started time.Time) error {
	sizes := report.Sizes()
	run := &database.RunRecord{
		RunID:            report.RunID,
		StartedAt:        started,
		InputPath:        inputPath,
		Algorithm:        report.Algorithm,
		VerifyMode:       report.Verdict.Mode,
		InputSize:        sizes.Input,
		CompressedSize:   sizes.Compressed,
		DecompressedSize: sizes.Decompressed,
		Characters:       int64(report.Frequencies.Total()),
		Ones:             int64(report.Bits.Ones()),
		Success:          report.Verdict.Success,
	}
	if report.Verdict.PayloadDigest != "" {
		digest := report.Verdict.PayloadDigest
		run.PayloadDigest = &digest
	}

	_, err := p.history.RecordRun(run)
	return err
}

// newRunID uses hostname + timestamp for uniqueness
func newRunID() string {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return fmt.Sprintf("%s-%d", hostname, time.Now().UnixNano())
}
