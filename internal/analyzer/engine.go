package analyzer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/OvictorVieira/exchange.airdrop.analyzer/pkg/contracts/domain"
)

// InputValidationError reports that the analyzer inputs failed validation.
// Computation is blocked rather than producing partial output.
type InputValidationError struct {
	Violations []string
}

func (e *InputValidationError) Error() string {
	return "invalid analyzer inputs: " + strings.Join(e.Violations, "; ")
}

// Engine runs the full analysis over a parsed dataset and user inputs.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates an analysis engine.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Compute validates the inputs and assembles the complete AnalyzerOutput.
// The output is rebuilt from scratch on every call; nothing is mutated in
// place, so callers may invoke it as often as the dataset or inputs change.
func (e *Engine) Compute(ctx context.Context, dataset domain.ExchangeParseResult, inputs domain.AnalyzerInputs) (*domain.AnalyzerOutput, error) {
	if violations := ValidateInputs(inputs); len(violations) > 0 {
		e.logger.WarnContext(ctx, "analyzer inputs rejected",
			slog.Int("violations", len(violations)))
		return nil, &InputValidationError{Violations: violations}
	}

	trading := ComputeTradingTotals(dataset.Rows)
	tokens := ComputeTokenEstimates(inputs)
	metrics := ComputeMetrics(trading, tokens, inputs.TokenPrice)
	sellPlans := ComputeSellPlans(tokens.TokensTotal, inputs.TokenPrice, metrics.CostUsd)

	e.logger.InfoContext(ctx, "analysis computed",
		slog.String("exchange", dataset.ExchangeID),
		slog.Int("rows", len(dataset.Rows)),
		slog.Float64("volume_total_usd", trading.VolumeTotalUsd),
		slog.Float64("cost_usd", metrics.CostUsd),
		slog.Float64("value_usd", metrics.ValueUsd))

	return &domain.AnalyzerOutput{
		Trading:   trading,
		Tokens:    tokens,
		Metrics:   metrics,
		SellPlans: sellPlans,
	}, nil
}
