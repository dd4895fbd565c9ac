package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/image-inventory/internal/collect"
	"github.com/joseph-ayodele/image-inventory/internal/common"
	"github.com/joseph-ayodele/image-inventory/internal/sheet"
	"github.com/joseph-ayodele/image-inventory/internal/thumbnail"
)

// Summary reports the outcome of one inventory run.
type Summary struct {
	RunID uuid.UUID
	// OutputPath is the resolved absolute path of the written workbook.
	OutputPath string
	// FilesProcessed counts collected files, successes and failures alike.
	FilesProcessed int
	// Failed counts files that became placeholder rows.
	Failed int
}

// Service runs the collect -> render -> build -> write pipeline once.
type Service struct {
	collector *collect.Collector
	renderer  *thumbnail.Renderer
	builder   *sheet.Builder
	logger    *slog.Logger
}

func NewService(c *collect.Collector, r *thumbnail.Renderer, b *sheet.Builder, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{collector: c, renderer: r, builder: b, logger: logger}
}

// Run executes the pipeline for cfg. Collection and write failures abort
// the run; per-file render failures become placeholder rows and never do.
func (s *Service) Run(ctx context.Context, cfg *common.Config) (*Summary, error) {
	runID := uuid.New()
	start := time.Now()
	logger := s.logger.With("run_id", runID)

	files, stats, err := s.collector.ListImages(cfg.InputDir, cfg.Recursive)
	if err != nil {
		return nil, err
	}
	logger.Info("collection complete",
		"dir", cfg.InputDir,
		"recursive", cfg.Recursive,
		"scanned", stats.Scanned,
		"matched", stats.Matched)

	if len(files) == 0 {
		logger.Warn("no supported image files found", "dir", cfg.InputDir)
	}

	rows := make([]sheet.Row, 0, len(files))
	failed := 0
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		asset, err := s.renderer.Render(f.Path)
		if err != nil {
			// per-file containment: record the failure as a row and move on
			logger.Warn("image unreadable", "path", f.Path, "error", err)
			rows = append(rows, sheet.Row{Name: fmt.Sprintf("[ERROR reading image] %s", filepath.Base(f.Path))})
			failed++
			continue
		}
		rows = append(rows, sheet.Row{Thumb: asset, Name: f.Stem})
	}

	doc, err := s.builder.Build(rows)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			logger.Warn("close workbook", "error", cerr)
		}
	}()

	outPath := ResolveOutputPath(cfg.OutputPath, cfg.Timestamped, time.Now())
	if err := ensureParentDir(outPath); err != nil {
		return nil, err
	}
	if err := doc.SaveAs(outPath); err != nil {
		return nil, common.WrapError(err, "write workbook "+outPath)
	}

	abs, err := filepath.Abs(outPath)
	if err != nil {
		abs = outPath
	}

	logger.Info("inventory run complete",
		"output", abs,
		"files", len(files),
		"failed", failed,
		"elapsed_ms", time.Since(start).Milliseconds())

	return &Summary{
		RunID:          runID,
		OutputPath:     abs,
		FilesProcessed: len(files),
		Failed:         failed,
	}, nil
}
