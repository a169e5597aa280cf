package analyzer

import (
	"math"

	"github.com/OvictorVieira/exchange.airdrop.analyzer/pkg/contracts/domain"
)

// ComputeTokenEstimates converts the user's point balances into token
// amounts at the configured point-to-token rate.
func ComputeTokenEstimates(inputs domain.AnalyzerInputs) domain.TokenEstimates {
	pointsTotal := inputs.PointsOwn + inputs.PointsFree
	tokensTotal := pointsTotal * inputs.PointToToken
	tokensFree := inputs.PointsFree * inputs.PointToToken

	return domain.TokenEstimates{
		PointsTotal: pointsTotal,
		TokensTotal: tokensTotal,
		TokensFree:  tokensFree,
		TokensPaid:  math.Max(tokensTotal-tokensFree, 0),
	}
}

// ComputeMetrics derives cost, valuation and efficiency figures. Cost counts
// only net realized losses: a profitable trading history never produces a
// negative cost. Ratios with a zero denominator come back nil.
func ComputeMetrics(trading domain.TradingTotals, tokens domain.TokenEstimates, tokenPrice float64) domain.AnalyzerMetrics {
	costUsd := math.Max(-trading.PnlTotalUsd, 0)
	valueUsd := tokens.TokensTotal * tokenPrice

	metrics := domain.AnalyzerMetrics{
		CostUsd:      costUsd,
		ValueUsd:     valueUsd,
		NetProfitUsd: valueUsd - costUsd,
	}

	if costUsd > 0 {
		metrics.Roi = fptr(metrics.NetProfitUsd / costUsd)
	}
	if tokens.TokensTotal > 0 {
		metrics.CostPerTokenTotal = fptr(costUsd / tokens.TokensTotal)
		metrics.BreakEvenPrice = fptr(costUsd / tokens.TokensTotal)
	}
	if tokens.TokensPaid > 0 {
		metrics.CostPerTokenPaid = fptr(costUsd / tokens.TokensPaid)
	}
	if trading.VolumeTotalUsd > 0 {
		metrics.PointsPer1mVolume = fptr(tokens.PointsTotal / trading.VolumeTotalUsd * 1_000_000)
	}

	return metrics
}

func fptr(v float64) *float64 {
	return &v
}
