package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OvictorVieira/exchange.airdrop.analyzer/pkg/contracts/domain"
)

func healthOutput(tokensTotal, valueUsd float64, breakEven *float64) domain.AnalyzerOutput {
	return domain.AnalyzerOutput{
		Tokens:  domain.TokenEstimates{TokensTotal: tokensTotal},
		Metrics: domain.AnalyzerMetrics{ValueUsd: valueUsd, BreakEvenPrice: breakEven},
	}
}

func TestEvaluateFarmHealthUnknown(t *testing.T) {
	tests := []struct {
		name   string
		output domain.AnalyzerOutput
	}{
		{name: "zero_tokens", output: healthOutput(0, 100, fptr(1))},
		{name: "negative_tokens", output: healthOutput(-5, 100, fptr(1))},
		{name: "nil_break_even", output: healthOutput(100, 100, nil)},
		{name: "zero_break_even", output: healthOutput(100, 100, fptr(0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diagnosis := EvaluateFarmHealth(tt.output)
			assert.Equal(t, domain.FarmHealthUnknown, diagnosis.Health)
			assert.Nil(t, diagnosis.GapToZero)
		})
	}
}

func TestEvaluateFarmHealthBands(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		breakEven float64
		expected domain.FarmHealth
		gap      float64
	}{
		{name: "strong_above_20pct", current: 1.25, breakEven: 1.0, expected: domain.FarmHealthStrong, gap: 0.25},
		{name: "strong_at_exact_20pct", current: 1.2, breakEven: 1.0, expected: domain.FarmHealthStrong, gap: 0.2},
		{name: "ok_at_break_even", current: 1.0, breakEven: 1.0, expected: domain.FarmHealthOK, gap: 0},
		{name: "ok_slightly_above", current: 1.1, breakEven: 1.0, expected: domain.FarmHealthOK, gap: 0.1},
		{name: "attention_within_20pct_below", current: 0.9, breakEven: 1.0, expected: domain.FarmHealthAttention, gap: -0.1},
		{name: "attention_at_exact_minus_20pct", current: 0.8, breakEven: 1.0, expected: domain.FarmHealthAttention, gap: -0.2},
		{name: "critical_below", current: 0.5, breakEven: 1.0, expected: domain.FarmHealthCritical, gap: -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// valueUsd = currentPrice * tokensTotal, with 100 tokens.
			output := healthOutput(100, tt.current*100, fptr(tt.breakEven))

			diagnosis := EvaluateFarmHealth(output)
			assert.Equal(t, tt.expected, diagnosis.Health)
			require.NotNil(t, diagnosis.GapToZero)
			assert.InDelta(t, tt.gap, *diagnosis.GapToZero, 1e-9)
		})
	}
}
