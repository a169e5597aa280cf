package analyzer

import (
	"github.com/OvictorVieira/exchange.airdrop.analyzer/pkg/contracts/domain"
)

// Health band thresholds on the gap between current price and break-even.
// Bands are inclusive on their lower bound.
const (
	healthStrongGap    = 0.2
	healthAttentionGap = -0.2
)

// EvaluateFarmHealth classifies the current token price against the
// break-even price. Without tokens or a positive break-even there is nothing
// to compare and the health is unknown.
func EvaluateFarmHealth(output domain.AnalyzerOutput) domain.FarmDiagnosis {
	if output.Tokens.TokensTotal <= 0 {
		return domain.FarmDiagnosis{Health: domain.FarmHealthUnknown}
	}

	breakEven := output.Metrics.BreakEvenPrice
	if breakEven == nil || *breakEven <= 0 {
		return domain.FarmDiagnosis{Health: domain.FarmHealthUnknown}
	}

	currentPrice := output.Metrics.ValueUsd / output.Tokens.TokensTotal
	gap := currentPrice / *breakEven - 1

	switch {
	case gap >= healthStrongGap:
		return domain.FarmDiagnosis{Health: domain.FarmHealthStrong, GapToZero: fptr(gap)}
	case gap >= 0:
		return domain.FarmDiagnosis{Health: domain.FarmHealthOK, GapToZero: fptr(gap)}
	case gap >= healthAttentionGap:
		return domain.FarmDiagnosis{Health: domain.FarmHealthAttention, GapToZero: fptr(gap)}
	default:
		return domain.FarmDiagnosis{Health: domain.FarmHealthCritical, GapToZero: fptr(gap)}
	}
}
