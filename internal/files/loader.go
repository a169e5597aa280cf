package files

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/OvictorVieira/exchange.airdrop.analyzer/internal/errors"
	"github.com/OvictorVieira/exchange.airdrop.analyzer/pkg/contracts/domain"
)

// DefaultLoadConcurrency caps how many files are read at once.
const DefaultLoadConcurrency = 4

// Loader reads export file contents concurrently. One unreadable file never
// stops the rest of the batch: it is reported as an error FileParseResult and
// the remaining files still load.
type Loader struct {
	concurrency int
	logger      *slog.Logger
}

// NewLoader creates a loader. A non-positive concurrency falls back to the
// default.
func NewLoader(concurrency int, logger *slog.Logger) *Loader {
	if concurrency <= 0 {
		concurrency = DefaultLoadConcurrency
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{concurrency: concurrency, logger: logger}
}

// Load reads every path into a SourceFile, preserving input order. Files that
// cannot be read come back separately as error parse results keyed by their
// base name.
func (l *Loader) Load(ctx context.Context, paths []string) ([]domain.SourceFile, []domain.FileParseResult) {
	type slot struct {
		source domain.SourceFile
		failed *domain.FileParseResult
	}

	slots := make([]slot, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(l.concurrency)

	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			name := filepath.Base(path)
			content, err := os.ReadFile(path)
			if err != nil {
				l.logger.WarnContext(groupCtx, "failed to read export file",
					slog.String("path", path),
					slog.String("error", err.Error()))
				slots[i].failed = &domain.FileParseResult{
					SourceFile: name,
					Status:     domain.FileStatusError,
					Errors:     apperrors.Render([]apperrors.Diagnostic{apperrors.FileRead(err)}),
				}
				return nil
			}

			slots[i].source = domain.SourceFile{Name: name, Content: string(content)}
			return nil
		})
	}

	// Read failures are data, not errors; only cancellation ends the group
	// early and the stale result is discarded by the caller anyway.
	_ = group.Wait()

	var sources []domain.SourceFile
	var failures []domain.FileParseResult
	for _, s := range slots {
		switch {
		case s.failed != nil:
			failures = append(failures, *s.failed)
		case s.source.Name != "":
			sources = append(sources, s.source)
		}
	}
	return sources, failures
}
