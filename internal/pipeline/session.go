// Package pipeline wires file acquisition, exchange parsing and the
// analytics engine together. It owns the orchestration concerns the pure
// stages must not know about: adapter dispatch, per-run trace identifiers and
// last-call-wins supersession when a new analysis starts before the previous
// one finished.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/OvictorVieira/exchange.airdrop.analyzer/internal/analyzer"
	"github.com/OvictorVieira/exchange.airdrop.analyzer/internal/exchange"
	"github.com/OvictorVieira/exchange.airdrop.analyzer/pkg/contracts/domain"
)

// ErrSuperseded reports that a newer analysis started while this one was
// running; its result must be discarded and never surface.
var ErrSuperseded = errors.New("analysis superseded by a newer request")

// Request is one full analysis invocation.
type Request struct {
	ExchangeID string
	Sources    []domain.SourceFile
	// LoadFailures carries files that could not be read at the acquisition
	// boundary; they are reported alongside the parse diagnostics.
	LoadFailures []domain.FileParseResult
	Inputs       domain.AnalyzerInputs
}

// Result is the complete outcome of one analysis run. Output is nil when the
// inputs were invalid; Violations then explains why. Parse diagnostics are
// always present so the import status can be shown regardless.
type Result struct {
	Parse      domain.ExchangeParseResult
	Output     *domain.AnalyzerOutput
	Diagnosis  domain.FarmDiagnosis
	Violations []string
}

// Session runs analyses with last-call-wins semantics: results of runs that
// were superseded by a newer call are discarded.
type Session struct {
	registry   *exchange.Registry
	engine     *analyzer.Engine
	logger     *slog.Logger
	generation atomic.Uint64
}

// NewSession creates an analysis session.
func NewSession(registry *exchange.Registry, engine *analyzer.Engine, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{registry: registry, engine: engine, logger: logger}
}

// Analyze parses the request's files with the selected exchange adapter and
// computes the analyzer output. If another Analyze call starts before this
// one returns, this run finishes but reports ErrSuperseded instead of a
// result.
func (s *Session) Analyze(ctx context.Context, req Request) (*Result, error) {
	generation := s.generation.Add(1)
	runID := uuid.NewString()

	logger := s.logger.With(slog.String("run_id", runID))
	logger.InfoContext(ctx, "starting analysis",
		slog.String("exchange", req.ExchangeID),
		slog.Int("files", len(req.Sources)),
		slog.Int("load_failures", len(req.LoadFailures)))

	adapter, ok := s.registry.Get(req.ExchangeID)
	if !ok {
		return nil, fmt.Errorf("unknown exchange %q", req.ExchangeID)
	}

	parse := adapter.ParseFiles(ctx, req.Sources)
	if len(req.LoadFailures) > 0 {
		merged := make([]domain.FileParseResult, 0, len(req.LoadFailures)+len(parse.Files))
		merged = append(merged, req.LoadFailures...)
		merged = append(merged, parse.Files...)
		parse.Files = merged
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.generation.Load() != generation {
		logger.InfoContext(ctx, "discarding superseded analysis")
		return nil, ErrSuperseded
	}

	result := &Result{
		Parse:     parse,
		Diagnosis: domain.FarmDiagnosis{Health: domain.FarmHealthUnknown},
	}

	output, err := s.engine.Compute(ctx, parse, req.Inputs)
	switch {
	case err == nil:
		result.Output = output
		result.Diagnosis = analyzer.EvaluateFarmHealth(*output)
	default:
		var validationErr *analyzer.InputValidationError
		if !errors.As(err, &validationErr) {
			return nil, fmt.Errorf("compute analysis: %w", err)
		}
		result.Violations = validationErr.Violations
	}

	if s.generation.Load() != generation {
		logger.InfoContext(ctx, "discarding superseded analysis")
		return nil, ErrSuperseded
	}

	logger.InfoContext(ctx, "analysis finished",
		slog.Int("rows", len(parse.Rows)),
		slog.Int("input_violations", len(result.Violations)),
		slog.String("farm_health", string(result.Diagnosis.Health)))

	return result, nil
}
