package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aretw0/tbx"
	"github.com/aretw0/tbx/internal/config"
	"github.com/aretw0/tbx/internal/logging"
	"github.com/aretw0/tbx/internal/presentation/report"
	"github.com/aretw0/tbx/internal/presentation/tui"
	"github.com/aretw0/tbx/pkg/domain"
	"github.com/aretw0/tbx/pkg/observability"
)

// Streams are the output destinations of a run.
// Reports go to Out; progress, logs and metrics go to Err.
type Streams struct {
	Out io.Writer
	Err io.Writer
}

// Run executes tool with the fully resolved configuration.
// Nothing is written to Out unless every input file was scanned.
func Run(tool Tool, cfg config.Config, s Streams) error {
	if len(cfg.Files) == 0 || (tool.NeedsTier && cfg.Tier == "") {
		return fmt.Errorf("%s: %w", tool.Name, domain.ErrUsage)
	}

	var err error
	if cfg.Glob {
		if cfg, err = cfg.ExpandGlobs(); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	logger := createLogger(cfg.Debug, s.Err).With("run_id", uuid.NewString(), "tool", tool.Name)
	progress := tui.NewProgress(s.Err, cfg.Color, cfg.Quiet)
	metrics := observability.NewMetrics()

	eng, err := createEngine(cfg, logger, progress, metrics)
	if err != nil {
		return err
	}

	logger.Debug("Run started", "tier", cfg.Tier, "files", len(cfg.Files), "format", string(format))
	err = tool.run(eng, cfg, report.New(s.Out, format))
	if err != nil {
		logger.Debug("Run failed", "error", err)
	} else {
		logger.Debug("Run finished")
	}

	if cfg.Metrics {
		if mErr := metrics.WriteText(s.Err); mErr != nil && err == nil {
			err = mErr
		}
	}
	return err
}

// createEngine initializes a tbx engine with standard CLI conventions.
func createEngine(cfg config.Config, logger *slog.Logger, progress *tui.Progress, metrics *observability.Metrics) (*tbx.Engine, error) {
	eng, err := tbx.New(
		tbx.WithEncoding(cfg.Encoding),
		tbx.WithLogger(logger),
		tbx.WithMetrics(metrics),
		tbx.WithProgress(progress.File),
	)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return eng, nil
}

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout reports).
func createLogger(debug bool, w io.Writer) *slog.Logger {
	if debug {
		return logging.New(w, slog.LevelDebug)
	}
	return logging.NewNop()
}
